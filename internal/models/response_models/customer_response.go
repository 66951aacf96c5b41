package response_models

import "fotopanel/internal/models/db_models"

type CustomerDetail struct {
	db_models.Customer
	User             *LinkedLogin `json:"user,omitempty"`
	PhotographerSlug string       `json:"photographerSlug,omitempty"`
}

type CreatedCustomer struct {
	Customer    db_models.Customer `json:"customer"`
	Credentials Credentials        `json:"credentials"`
}
