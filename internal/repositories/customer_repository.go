package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fotopanel/internal/models/db_models"
)

// AccountChange is the part of a linked login that follows customer edits.
type AccountChange struct {
	AccountID    uuid.UUID
	Email        *string
	PasswordHash *string
}

func (c *AccountChange) empty() bool {
	return c == nil || (c.Email == nil && c.PasswordHash == nil)
}

type CustomerRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Customer, error)
	ListByPhotographer(ctx context.Context, photographerID uuid.UUID, search string) ([]db_models.Customer, error)
	// EmailTakenByOther reports whether another customer already uses email.
	EmailTakenByOther(ctx context.Context, email string, exceptID uuid.UUID) (bool, error)
	CreateWithAccount(ctx context.Context, customer *db_models.Customer, account *db_models.Account) error
	// SaveWithAccount writes the whole customer row and the linked login
	// change in one transaction.
	SaveWithAccount(ctx context.Context, customer *db_models.Customer, change *AccountChange) error
	DeleteWithAccount(ctx context.Context, customer *db_models.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Customer, error) {
	var customer db_models.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepository) ListByPhotographer(ctx context.Context, photographerID uuid.UUID, search string) ([]db_models.Customer, error) {
	q := r.db.WithContext(ctx).
		Where("photographer_id = ?", photographerID).
		Order("created_at DESC")

	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(bride_name) LIKE ? OR LOWER(groom_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like, like)
	}

	var customers []db_models.Customer
	if err := q.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) EmailTakenByOther(ctx context.Context, email string, exceptID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Customer{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, exceptID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *customerRepository) CreateWithAccount(ctx context.Context, customer *db_models.Customer, account *db_models.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if customer.ID == uuid.Nil {
			customer.ID = uuid.New()
		}
		if account != nil {
			if account.ID == uuid.Nil {
				account.ID = uuid.New()
			}
			account.CustomerID = &customer.ID
			customer.UserID = &account.ID
		}

		if err := tx.Create(customer).Error; err != nil {
			return err
		}
		if account != nil {
			if err := tx.Create(account).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *customerRepository) SaveWithAccount(ctx context.Context, customer *db_models.Customer, change *AccountChange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(customer).Select("*").Omit("id", "created_at", "deleted_at").Updates(customer)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if change.empty() {
			return nil
		}

		updates := map[string]interface{}{}
		if change.Email != nil {
			updates["email"] = *change.Email
		}
		if change.PasswordHash != nil {
			updates["password_hash"] = *change.PasswordHash
		}
		return tx.Model(&db_models.Account{}).Where("id = ?", change.AccountID).Updates(updates).Error
	})
}

func (r *customerRepository) DeleteWithAccount(ctx context.Context, customer *db_models.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if customer.UserID != nil {
			if err := tx.Unscoped().Delete(&db_models.Account{}, "id = ?", *customer.UserID).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Delete(&db_models.Shoot{}, "customer_id = ?", customer.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&db_models.Customer{}, "id = ?", customer.ID).Error
	})
}
