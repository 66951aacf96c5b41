package request_models

import (
	"time"

	"fotopanel/internal/models/db_models"
)

// SourceCustomer marks an update sent from the couple's selection portal.
const SourceCustomer = "customer"

type CreateCustomerRequest struct {
	BrideName       string                     `json:"brideName" binding:"required"`
	GroomName       string                     `json:"groomName"`
	Phone           string                     `json:"phone" binding:"required"`
	Email           string                     `json:"email" binding:"omitempty,email"`
	TcID            string                     `json:"tcId"`
	WeddingDate     *time.Time                 `json:"weddingDate"`
	Notes           string                     `json:"notes"`
	SelectionLimits *db_models.SelectionLimits `json:"selectionLimits"`
}

// UpdateCustomerRequest is a partial update; nil fields are left untouched.
type UpdateCustomerRequest struct {
	BrideName   *string    `json:"brideName"`
	GroomName   *string    `json:"groomName"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	TcID        *string    `json:"tcId"`
	WeddingDate *time.Time `json:"weddingDate"`
	Notes       *string    `json:"notes"`
	ContractID  *string    `json:"contractId"`

	Status            *string `json:"status"`
	AppointmentStatus *string `json:"appointmentStatus"`
	AlbumStatus       *string `json:"albumStatus"`

	SelectionLimits    *db_models.SelectionLimits `json:"selectionLimits"`
	SelectedPhotos     *[]db_models.SelectedPhoto `json:"selectedPhotos"`
	SelectionCompleted *bool                      `json:"selectionCompleted"`
	CanDownload        *bool                      `json:"canDownload"`

	// Linked login
	Username *string `json:"username"`
	Password *string `json:"password" binding:"omitempty,min=4"`

	// Source is "customer" when the couple submits from the portal.
	Source string `json:"source"`
}

// FromCustomer reports whether the update declares a customer origin.
func (r *UpdateCustomerRequest) FromCustomer() bool {
	return r.Source == SourceCustomer
}

// OnlySelectionFields reports whether the request touches nothing but the
// photo selection, which is all a couple may change.
func (r *UpdateCustomerRequest) OnlySelectionFields() bool {
	return r.BrideName == nil && r.GroomName == nil && r.Phone == nil && r.Email == nil &&
		r.TcID == nil && r.WeddingDate == nil && r.Notes == nil && r.ContractID == nil &&
		r.Status == nil && r.AppointmentStatus == nil && r.AlbumStatus == nil &&
		r.SelectionLimits == nil && r.CanDownload == nil &&
		r.Username == nil && r.Password == nil
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=4"`
}
