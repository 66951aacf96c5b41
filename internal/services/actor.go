package services

import (
	"github.com/google/uuid"

	"fotopanel/internal/models/db_models"
)

// Actor is the authenticated caller, passed explicitly into every
// tenant-scoped operation.
type Actor struct {
	UserID     uuid.UUID
	Role       db_models.Role
	CustomerID *uuid.UUID
}

func (a Actor) IsAdmin() bool      { return a.Role == db_models.RoleAdmin }
func (a Actor) IsCouple() bool     { return a.Role == db_models.RoleCouple }
func (a Actor) IsSuperAdmin() bool { return a.Role == db_models.RoleSuperAdmin }

// owns reports whether the actor's tenant owns a record.
func (a Actor) owns(photographerID uuid.UUID) bool {
	return a.IsAdmin() && a.UserID == photographerID
}

// isCustomer reports whether the actor is the couple behind customerID.
func (a Actor) isCustomer(customerID uuid.UUID) bool {
	return a.IsCouple() && a.CustomerID != nil && *a.CustomerID == customerID
}
