package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fotopanel/internal/models/db_models"
)

type EmailTemplateRepository interface {
	// Find returns the active override for owner, where a nil owner is the system-wide row.
	Find(ctx context.Context, owner *uuid.UUID, t db_models.EmailTemplateType) (*db_models.EmailTemplate, error)
	ListByOwner(ctx context.Context, owner *uuid.UUID) ([]db_models.EmailTemplate, error)
	Upsert(ctx context.Context, tpl *db_models.EmailTemplate) error
	Delete(ctx context.Context, owner *uuid.UUID, t db_models.EmailTemplateType) error
}

type emailTemplateRepository struct {
	db *gorm.DB
}

func NewEmailTemplateRepository(db *gorm.DB) EmailTemplateRepository {
	return &emailTemplateRepository{db: db}
}

func ownerScope(owner *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if owner == nil {
			return db.Where("photographer_id IS NULL")
		}
		return db.Where("photographer_id = ?", *owner)
	}
}

func (r *emailTemplateRepository) Find(ctx context.Context, owner *uuid.UUID, t db_models.EmailTemplateType) (*db_models.EmailTemplate, error) {
	var tpl db_models.EmailTemplate
	err := r.db.WithContext(ctx).
		Scopes(ownerScope(owner)).
		Where("template_type = ? AND is_active = ?", t, true).
		First(&tpl).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *emailTemplateRepository) ListByOwner(ctx context.Context, owner *uuid.UUID) ([]db_models.EmailTemplate, error) {
	var out []db_models.EmailTemplate
	err := r.db.WithContext(ctx).
		Scopes(ownerScope(owner)).
		Order("template_type ASC").
		Find(&out).Error
	return out, err
}

func (r *emailTemplateRepository) Upsert(ctx context.Context, tpl *db_models.EmailTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.EmailTemplate
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(ownerScope(tpl.PhotographerID)).
			Where("template_type = ?", tpl.TemplateType).
			First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(tpl).Error
		case err != nil:
			return err
		}

		tpl.ID = existing.ID
		tpl.CreatedAt = existing.CreatedAt
		return tx.Model(tpl).
			Select("customization", "is_active", "updated_at").
			Updates(tpl).Error
	})
}

func (r *emailTemplateRepository) Delete(ctx context.Context, owner *uuid.UUID, t db_models.EmailTemplateType) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Scopes(ownerScope(owner)).
		Where("template_type = ?", t).
		Delete(&db_models.EmailTemplate{}).Error
}
