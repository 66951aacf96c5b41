package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleCouple     Role = "couple"
)

// DefaultStorageLimit is 20 GiB.
const DefaultStorageLimit int64 = 21474836480

// Account is a login: a photographer (tenant), a couple using the selection
// portal, or a platform superadmin.
type Account struct {
	BaseModel
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `gorm:"type:varchar(16);index" json:"role"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index" json:"customerId,omitempty"`

	// Photographer fields
	StudioName         string     `json:"studioName,omitempty"`
	Slug               string     `gorm:"index" json:"slug,omitempty"`
	StorageUsage       int64      `gorm:"default:0" json:"storageUsage"`
	StorageLimit       int64      `gorm:"default:21474836480" json:"storageLimit"`
	PackageType        string     `gorm:"default:trial" json:"packageType"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry,omitempty"`
}
