package db_models

import "github.com/google/uuid"

type NotificationType string

const (
	NotificationPhotoSelection NotificationType = "PHOTO_SELECTION"
	NotificationNewAppointment NotificationType = "NEW_APPOINTMENT"
	NotificationUpcomingShoot  NotificationType = "UPCOMING_SHOOT"
)

type Notification struct {
	BaseModel
	Type       NotificationType `gorm:"type:varchar(32);not null" json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	UserID     uuid.UUID        `gorm:"type:uuid;index;not null" json:"userId"`
	CustomerID *uuid.UUID       `gorm:"type:uuid" json:"customerId,omitempty"`
	RelatedID  *uuid.UUID       `gorm:"type:uuid" json:"relatedId,omitempty"`
	IsRead     bool             `gorm:"default:false;index" json:"isRead"`
}
