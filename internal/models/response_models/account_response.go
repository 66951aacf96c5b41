package response_models

import (
	"time"

	"github.com/google/uuid"
)

// LinkedLogin is the couple account attached to a customer.
type LinkedLogin struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Credentials are returned once, when a customer login is created or reset.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PhotographerPlanResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Email              string     `json:"email"`
	StudioName         string     `json:"studioName"`
	PackageType        string     `json:"packageType"`
	StorageLimit       int64      `json:"storageLimit"`
	StorageUsage       int64      `json:"storageUsage"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry,omitempty"`
}

type LoginResponse struct {
	Token      string     `json:"token"`
	UserID     uuid.UUID  `json:"userId"`
	Role       string     `json:"role"`
	CustomerID *uuid.UUID `json:"customerId,omitempty"`
}
