package request_models

import (
	"time"

	"github.com/google/uuid"
)

type CreateShootRequest struct {
	CustomerID  uuid.UUID `json:"customerId" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	City        string    `json:"city"`
	PackageName string    `json:"packageName"`
	ContractID  string    `json:"contractId"`
	AgreedPrice *float64  `json:"agreedPrice" binding:"omitempty,gte=0"`
	Deposit     *float64  `json:"deposit" binding:"omitempty,gte=0"`
	Notes       string    `json:"notes"`
}

type UpdateShootRequest struct {
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	Type        *string    `json:"type"`
	Location    *string    `json:"location"`
	City        *string    `json:"city"`
	PackageName *string    `json:"packageName"`
	ContractID  *string    `json:"contractId"`
	AgreedPrice *float64   `json:"agreedPrice" binding:"omitempty,gte=0"`
	Deposit     *float64   `json:"deposit" binding:"omitempty,gte=0"`
	Notes       *string    `json:"notes"`
	Status      *string    `json:"status"`

	// CustomerData is applied to the linked customer through the regular
	// customer update path.
	CustomerData *UpdateCustomerRequest `json:"customerData"`
}

type ListShootsQuery struct {
	Start      *time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End        *time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
	CustomerID string     `form:"customerId" binding:"omitempty,uuid"`
}
