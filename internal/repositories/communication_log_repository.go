package repositories

import (
	"context"

	"gorm.io/gorm"

	"fotopanel/internal/models/db_models"
)

type CommunicationLogRepository interface {
	Create(ctx context.Context, log *db_models.CommunicationLog) error
	Save(ctx context.Context, log *db_models.CommunicationLog) error
	// ListRecent returns the newest logs first. An empty kind lists every type.
	ListRecent(ctx context.Context, kind db_models.CommunicationType, limit int) ([]db_models.CommunicationLog, error)
}

type communicationLogRepository struct {
	db *gorm.DB
}

func NewCommunicationLogRepository(db *gorm.DB) CommunicationLogRepository {
	return &communicationLogRepository{db: db}
}

func (r *communicationLogRepository) Create(ctx context.Context, log *db_models.CommunicationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *communicationLogRepository) Save(ctx context.Context, log *db_models.CommunicationLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *communicationLogRepository) ListRecent(ctx context.Context, kind db_models.CommunicationType, limit int) ([]db_models.CommunicationLog, error) {
	q := r.db.WithContext(ctx)
	if kind != "" {
		q = q.Where("type = ?", kind)
	}

	var out []db_models.CommunicationLog
	err := q.Order("sent_at DESC").Limit(limit).Find(&out).Error
	return out, err
}
