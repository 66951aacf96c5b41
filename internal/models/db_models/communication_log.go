package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CommunicationType string

const CommunicationEmail CommunicationType = "email"

type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
	// DeliveryPartial only appears on the log as a whole.
	DeliveryPartial DeliveryStatus = "partial"
	DeliverySending DeliveryStatus = "sending"
)

// Recipient filters for bulk mail. Any other value is matched against the
// photographer's package type.
const (
	RecipientsAll      = "all"
	RecipientsActive   = "active"
	RecipientsInactive = "inactive"
)

type CommunicationRecipient struct {
	PhotographerID uuid.UUID      `json:"photographerId"`
	Email          string         `json:"email"`
	Status         DeliveryStatus `json:"status"`
}

// CommunicationLog records one bulk message sent by a superadmin and the
// outcome for every recipient.
type CommunicationLog struct {
	BaseModel
	Type           CommunicationType                           `gorm:"type:varchar(16);index;not null" json:"type"`
	Subject        string                                      `json:"subject"`
	Message        string                                      `gorm:"not null" json:"message"`
	Filter         string                                      `gorm:"default:all" json:"filter"`
	RecipientCount int                                         `json:"recipientCount"`
	Recipients     datatypes.JSONSlice[CommunicationRecipient] `json:"recipients"`
	SentBy         uuid.UUID                                   `gorm:"type:uuid;not null" json:"sentBy"`
	SentAt         time.Time                                   `gorm:"index" json:"sentAt"`
	Status         DeliveryStatus                              `gorm:"type:varchar(16);default:sending" json:"status"`
}

func (l *CommunicationLog) BeforeSave(tx *gorm.DB) error {
	l.SentAt = l.SentAt.UTC()
	return nil
}

// Settle derives the overall status from the recipients.
func (l *CommunicationLog) Settle() (sent, failed int) {
	for _, r := range l.Recipients {
		switch r.Status {
		case DeliverySent:
			sent++
		case DeliveryFailed:
			failed++
		}
	}
	switch {
	case failed == 0:
		l.Status = DeliverySent
	case sent == 0:
		l.Status = DeliveryFailed
	default:
		l.Status = DeliveryPartial
	}
	return sent, failed
}
