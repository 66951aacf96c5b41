package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/response_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

const notificationListLimit = 50

type NotificationServiceInterface interface {
	NotifyPhotoSelection(ctx context.Context, photographerID, customerID uuid.UUID, customerName string) error
	NotifyNewAppointment(ctx context.Context, photographerID, customerID, shootID uuid.UUID, customerName, dateLabel, typeLabel string) error

	List(ctx context.Context, actor Actor) ([]db_models.Notification, error)
	UnreadCount(ctx context.Context, actor Actor) (*response_models.UnreadCount, error)
	MarkRead(ctx context.Context, actor Actor, id uuid.UUID) error
	MarkAllRead(ctx context.Context, actor Actor) (*response_models.MarkedRead, error)
}

type NotificationService struct {
	repo repositories.NotificationRepository
}

func NewNotificationService(repo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) NotifyPhotoSelection(ctx context.Context, photographerID, customerID uuid.UUID, customerName string) error {
	return s.create(ctx, &db_models.Notification{
		Type:       db_models.NotificationPhotoSelection,
		Title:      "Fotoğraf Seçimi Tamamlandı",
		Message:    fmt.Sprintf("%s fotoğraf seçimini tamamladı ve onayladı.", customerName),
		UserID:     photographerID,
		CustomerID: &customerID,
	})
}

func (s *NotificationService) NotifyNewAppointment(ctx context.Context, photographerID, customerID, shootID uuid.UUID, customerName, dateLabel, typeLabel string) error {
	if dateLabel == "" {
		dateLabel = "Belirtilmemiş"
	}
	msg := fmt.Sprintf("%s için %s tarihinde yeni randevu oluşturuldu", customerName, dateLabel)
	if typeLabel != "" {
		msg += " (" + typeLabel + ")"
	}
	return s.create(ctx, &db_models.Notification{
		Type:       db_models.NotificationNewAppointment,
		Title:      "Yeni Randevu Oluşturuldu",
		Message:    msg + ".",
		UserID:     photographerID,
		CustomerID: &customerID,
		RelatedID:  &shootID,
	})
}

func (s *NotificationService) create(ctx context.Context, n *db_models.Notification) error {
	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("create %s notification: %w", n.Type, err)
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, actor Actor) ([]db_models.Notification, error) {
	if !actor.IsAdmin() {
		return nil, utils.ErrForbidden
	}
	items, err := s.repo.ListByUser(ctx, actor.UserID, notificationListLimit)
	if err != nil {
		return nil, dbErr(err)
	}
	if items == nil {
		items = []db_models.Notification{}
	}
	return items, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, actor Actor) (*response_models.UnreadCount, error) {
	if !actor.IsAdmin() {
		return nil, utils.ErrForbidden
	}
	n, err := s.repo.CountUnread(ctx, actor.UserID)
	if err != nil {
		return nil, dbErr(err)
	}
	return &response_models.UnreadCount{Count: n}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return utils.ErrForbidden
	}
	ok, err := s.repo.MarkRead(ctx, actor.UserID, id)
	if err != nil {
		return dbErr(err)
	}
	if !ok {
		return utils.ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, actor Actor) (*response_models.MarkedRead, error) {
	if !actor.IsAdmin() {
		return nil, utils.ErrForbidden
	}
	n, err := s.repo.MarkAllRead(ctx, actor.UserID)
	if err != nil {
		return nil, dbErr(err)
	}
	return &response_models.MarkedRead{Updated: n}, nil
}
