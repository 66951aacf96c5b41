package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fotopanel/internal/models/db_models"
)

type ShootFilter struct {
	PhotographerID *uuid.UUID
	CustomerID     *uuid.UUID
	Start          *time.Time
	End            *time.Time
}

type ShootRepository interface {
	List(ctx context.Context, filter ShootFilter) ([]db_models.Shoot, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Shoot, error)
	Create(ctx context.Context, shoot *db_models.Shoot) error
	Save(ctx context.Context, shoot *db_models.Shoot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shootRepository struct {
	db *gorm.DB
}

func NewShootRepository(db *gorm.DB) ShootRepository {
	return &shootRepository{db: db}
}

func (r *shootRepository) List(ctx context.Context, filter ShootFilter) ([]db_models.Shoot, error) {
	q := r.db.WithContext(ctx).Preload("Customer").Order("date ASC")

	if filter.PhotographerID != nil {
		q = q.Where("photographer_id = ?", *filter.PhotographerID)
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Start != nil {
		q = q.Where("date >= ?", filter.Start.UTC())
	}
	if filter.End != nil {
		q = q.Where("date <= ?", filter.End.UTC())
	}

	var shoots []db_models.Shoot
	if err := q.Find(&shoots).Error; err != nil {
		return nil, err
	}
	return shoots, nil
}

func (r *shootRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Shoot, error) {
	var shoot db_models.Shoot
	err := r.db.WithContext(ctx).Preload("Customer").First(&shoot, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &shoot, nil
}

func (r *shootRepository) Create(ctx context.Context, shoot *db_models.Shoot) error {
	return r.db.WithContext(ctx).Omit("Customer").Create(shoot).Error
}

func (r *shootRepository) Save(ctx context.Context, shoot *db_models.Shoot) error {
	return r.db.WithContext(ctx).
		Model(shoot).
		Select("*").
		Omit("id", "created_at", "deleted_at", "Customer").
		Updates(shoot).Error
}

func (r *shootRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&db_models.Shoot{}, "id = ?", id).Error
}
