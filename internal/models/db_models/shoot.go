package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shoot struct {
	BaseModel
	PhotographerID uuid.UUID `gorm:"type:uuid;index;not null" json:"photographerId"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	Customer       *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`

	Date        time.Time   `gorm:"index;not null" json:"date"`
	Time        string      `json:"time"`
	Type        ShootType   `gorm:"type:varchar(16);default:wedding" json:"type"`
	Location    string      `json:"location"`
	City        string      `json:"city"`
	PackageName string      `json:"packageName"`
	ContractID  string      `json:"contractId,omitempty"`
	AgreedPrice *float64    `json:"agreedPrice"`
	Deposit     *float64    `json:"deposit"`
	Notes       string      `json:"notes"`
	Status      ShootStatus `gorm:"type:varchar(16);default:planned;index" json:"status"`
}

// Price is the agreed price with a missing value counted as zero.
func (s *Shoot) Price() float64 {
	if s.AgreedPrice == nil {
		return 0
	}
	return *s.AgreedPrice
}

func (s *Shoot) BeforeSave(tx *gorm.DB) error {
	s.Date = s.Date.UTC()
	return nil
}
