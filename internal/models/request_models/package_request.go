package request_models

import "time"

// SavePackageRequest replaces a package record as a whole.
type SavePackageRequest struct {
	ID          string   `json:"id" binding:"required,max=64"`
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Storage     *float64 `json:"storage" binding:"required,gte=0"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
	Description string   `json:"description"`
}

type AssignPackageRequest struct {
	PackageID          string     `json:"packageId" binding:"required"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry"`
}
