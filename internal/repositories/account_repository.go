package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fotopanel/internal/models/db_models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	// EmailTakenByOther reports whether email belongs to an account other than exceptID.
	EmailTakenByOther(ctx context.Context, email string, exceptID *uuid.UUID) (bool, error)
	UpdateSubscription(ctx context.Context, id uuid.UUID, packageType string, storageLimit int64, expiry *time.Time) error
	ListPhotographers(ctx context.Context, filter PhotographerFilter) ([]db_models.Account, error)
}

// PhotographerFilter narrows tenant listings. Active compares the
// subscription expiry with Now; an account without an expiry is active.
type PhotographerFilter struct {
	PackageType string
	Active      *bool
	Now         time.Time
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Create(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "LOWER(email) = LOWER(?)", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) EmailTakenByOther(ctx context.Context, email string, exceptID *uuid.UUID) (bool, error) {
	q := a.db.WithContext(ctx).Model(&db_models.Account{}).Where("LOWER(email) = LOWER(?)", email)
	if exceptID != nil {
		q = q.Where("id <> ?", *exceptID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (a *accountRepository) UpdateSubscription(ctx context.Context, id uuid.UUID, packageType string, storageLimit int64, expiry *time.Time) error {
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"package_type":        packageType,
			"storage_limit":       storageLimit,
			"subscription_expiry": expiry,
			"updated_at":          time.Now().Unix(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *accountRepository) ListPhotographers(ctx context.Context, filter PhotographerFilter) ([]db_models.Account, error) {
	q := a.db.WithContext(ctx).Where("role = ?", db_models.RoleAdmin)
	if filter.PackageType != "" {
		q = q.Where("package_type = ?", filter.PackageType)
	}
	if filter.Active != nil {
		now := filter.Now.UTC()
		if *filter.Active {
			q = q.Where("(subscription_expiry IS NULL OR subscription_expiry > ?)", now)
		} else {
			q = q.Where("subscription_expiry IS NOT NULL AND subscription_expiry <= ?", now)
		}
	}

	var out []db_models.Account
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}
