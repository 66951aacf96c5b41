package db_models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PhotoSelectionType string

const (
	SelectionAlbum  PhotoSelectionType = "album"
	SelectionCover  PhotoSelectionType = "cover"
	SelectionPoster PhotoSelectionType = "poster"
)

func (t PhotoSelectionType) Valid() bool {
	switch t {
	case SelectionAlbum, SelectionCover, SelectionPoster:
		return true
	}
	return false
}

type Photo struct {
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type SelectedPhoto struct {
	URL      string             `json:"url"`
	Filename string             `json:"filename"`
	Type     PhotoSelectionType `json:"type"`
}

type SelectionLimits struct {
	Album  int `json:"album"`
	Cover  int `json:"cover"`
	Poster int `json:"poster"`
}

func DefaultSelectionLimits() SelectionLimits {
	return SelectionLimits{Album: 22, Cover: 1, Poster: 1}
}

// NewSelectionLimits wraps caps for the customer column. A zero value is a
// real cap that closes the selection type.
func NewSelectionLimits(l SelectionLimits) datatypes.JSONType[*SelectionLimits] {
	return datatypes.NewJSONType(&l)
}

// Limit returns the cap for one selection type.
func (l SelectionLimits) Limit(t PhotoSelectionType) int {
	switch t {
	case SelectionAlbum:
		return l.Album
	case SelectionCover:
		return l.Cover
	case SelectionPoster:
		return l.Poster
	}
	return 0
}

type Customer struct {
	BaseModel
	PhotographerID uuid.UUID  `gorm:"type:uuid;index;not null" json:"photographerId"`
	UserID         *uuid.UUID `gorm:"type:uuid" json:"userId,omitempty"`

	BrideName   string     `gorm:"not null" json:"brideName"`
	GroomName   string     `json:"groomName"`
	Phone       string     `json:"phone"`
	Email       string     `gorm:"index" json:"email"`
	TcID        string     `json:"tcId"`
	WeddingDate *time.Time `json:"weddingDate,omitempty"`
	Notes       string     `json:"notes"`
	ContractID  string     `json:"contractId,omitempty"`

	Status            CustomerStatus    `gorm:"type:varchar(16);default:active;index" json:"status"`
	AppointmentStatus AppointmentStatus `gorm:"type:varchar(32);default:cekim_yapilmadi;index" json:"appointmentStatus"`
	AlbumStatus       AlbumStatus       `gorm:"type:varchar(32);default:islem_yapilmadi" json:"albumStatus"`

	Photos              datatypes.JSONSlice[Photo]           `json:"photos"`
	SelectedPhotos      datatypes.JSONSlice[SelectedPhoto]   `json:"selectedPhotos"`
	SelectionLimits     datatypes.JSONType[*SelectionLimits] `json:"selectionLimits"`
	SelectionCompleted  bool                                 `gorm:"default:false" json:"selectionCompleted"`
	SelectionApprovedAt *time.Time                           `json:"selectionApprovedAt"`
	DeliveredAt         *time.Time                           `json:"deliveredAt"`
	CanDownload         bool                                 `gorm:"default:false" json:"canDownload"`
	LastLoginAt         *time.Time                           `json:"lastLoginAt,omitempty"`
}

// DisplayName joins bride and groom names the way the panel shows couples.
func (c *Customer) DisplayName() string {
	bride := strings.TrimSpace(c.BrideName)
	groom := strings.TrimSpace(c.GroomName)
	switch {
	case bride != "" && groom != "":
		return bride + " & " + groom
	case bride != "":
		return bride
	default:
		return groom
	}
}

// Limits returns the stored caps. Defaults apply only when no caps were stored.
func (c *Customer) Limits() SelectionLimits {
	if l := c.SelectionLimits.Data(); l != nil {
		return *l
	}
	return DefaultSelectionLimits()
}

func (c *Customer) BeforeSave(tx *gorm.DB) error {
	c.SelectionApprovedAt = utcPtr(c.SelectionApprovedAt)
	c.DeliveredAt = utcPtr(c.DeliveredAt)
	c.WeddingDate = utcPtr(c.WeddingDate)
	return nil
}
