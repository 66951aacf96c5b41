package services

import (
	"context"
	"fmt"
	"time"

	"fotopanel/internal/config"
	"fotopanel/internal/models/db_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

var statusTitles = map[StatusField]string{
	FieldAppointmentStatus: "Randevu Durumu",
	FieldAlbumStatus:       "Albüm Durumu",
}

// SideEffects holds the best-effort reactions to domain events.
type SideEffects struct {
	templates     EmailTemplateServiceInterface
	notifications NotificationServiceInterface
	accounts      repositories.AccountRepository
	loc           *time.Location
}

func NewSideEffects(
	templates EmailTemplateServiceInterface,
	notifications NotificationServiceInterface,
	accounts repositories.AccountRepository,
	cfg *config.Config,
) *SideEffects {
	loc := cfg.DashboardLocation
	if loc == nil {
		loc = time.UTC
	}
	return &SideEffects{
		templates:     templates,
		notifications: notifications,
		accounts:      accounts,
		loc:           loc,
	}
}

// Register subscribes every handler on d.
func (s *SideEffects) Register(d *EventDispatcher) {
	d.Subscribe(EventCustomerStatusChanged, s.SendStatusEmail)
	d.Subscribe(EventCustomerSelectionCompleted, s.NotifySelection)
	d.Subscribe(EventShootCreated, s.NotifyNewAppointment)
}

func (s *SideEffects) SendStatusEmail(ctx context.Context, ev DomainEvent) error {
	e, ok := ev.(CustomerStatusChanged)
	if !ok {
		return fmt.Errorf("unexpected event %T", ev)
	}
	if e.CustomerEmail == "" {
		return nil
	}

	photographer, err := s.accounts.FindById(ctx, e.PhotographerID)
	if err != nil {
		return fmt.Errorf("load photographer: %w", err)
	}
	if photographer == nil {
		return nil
	}
	studio := "Stüdyo"
	switch {
	case photographer.StudioName != "":
		studio = photographer.StudioName
	case photographer.Name != "":
		studio = photographer.Name
	}

	return s.templates.Send(ctx, &e.PhotographerID, db_models.TemplateCustomerStatusUpdate, e.CustomerEmail, map[string]string{
		"customerName": e.CustomerName,
		"studioName":   studio,
		"statusTitle":  statusTitles[e.Field],
		"statusValue":  e.Label,
	})
}

func (s *SideEffects) NotifySelection(ctx context.Context, ev DomainEvent) error {
	e, ok := ev.(CustomerSelectionCompleted)
	if !ok {
		return fmt.Errorf("unexpected event %T", ev)
	}
	return s.notifications.NotifyPhotoSelection(ctx, e.PhotographerID, e.CustomerID, e.CustomerName)
}

func (s *SideEffects) NotifyNewAppointment(ctx context.Context, ev DomainEvent) error {
	e, ok := ev.(ShootCreated)
	if !ok {
		return fmt.Errorf("unexpected event %T", ev)
	}
	return s.notifications.NotifyNewAppointment(ctx, e.PhotographerID, e.CustomerID, e.ShootID,
		e.CustomerName, utils.FormatDateTR(e.Date, s.loc), db_models.ShootType(e.Type).Label())
}
