package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fotopanel/internal/config"
	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/models/response_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

const tempPasswordLength = 6

type CustomerServiceInterface interface {
	ListCustomers(ctx context.Context, actor Actor, search string) ([]db_models.Customer, error)
	CreateCustomer(ctx context.Context, actor Actor, req request_models.CreateCustomerRequest) (*response_models.CreatedCustomer, error)
	GetCustomer(ctx context.Context, actor Actor, id uuid.UUID) (*response_models.CustomerDetail, error)
	UpdateCustomer(ctx context.Context, actor Actor, id uuid.UUID, req request_models.UpdateCustomerRequest) (*db_models.Customer, error)
	DeleteCustomer(ctx context.Context, actor Actor, id uuid.UUID) error
	ResetCustomerPassword(ctx context.Context, actor Actor, id uuid.UUID, password string) (*response_models.Credentials, error)
}

type CustomerService struct {
	customers   repositories.CustomerRepository
	accounts    repositories.AccountRepository
	events      EventPublisher
	loginDomain string
	now         func() time.Time
}

func NewCustomerService(
	customers repositories.CustomerRepository,
	accounts repositories.AccountRepository,
	events EventPublisher,
	cfg *config.Config,
) CustomerServiceInterface {
	return &CustomerService{
		customers:   customers,
		accounts:    accounts,
		events:      events,
		loginDomain: cfg.LoginEmailDomain,
		now:         time.Now,
	}
}

func dbErr(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}

func (s *CustomerService) ListCustomers(ctx context.Context, actor Actor, search string) ([]db_models.Customer, error) {
	if !actor.IsAdmin() {
		return nil, utils.ErrForbidden
	}
	customers, err := s.customers.ListByPhotographer(ctx, actor.UserID, search)
	if err != nil {
		return nil, dbErr(err)
	}
	return customers, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, actor Actor, req request_models.CreateCustomerRequest) (*response_models.CreatedCustomer, error) {
	if !actor.IsAdmin() {
		return nil, utils.ErrForbidden
	}

	verr := utils.NewValidationError()
	if strings.TrimSpace(req.BrideName) == "" {
		verr.Add("brideName", "Gelin adı zorunludur")
	}
	limits := db_models.DefaultSelectionLimits()
	if req.SelectionLimits != nil {
		limits = *req.SelectionLimits
		if limits.Album < 0 || limits.Cover < 0 || limits.Poster < 0 {
			verr.Add("selectionLimits", "Seçim limitleri negatif olamaz")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" {
		if err := s.ensureEmailFree(ctx, email, uuid.Nil, nil); err != nil {
			return nil, err
		}
	}

	username, err := s.freeUsername(ctx, utils.CustomerUsername(req.BrideName, req.GroomName))
	if err != nil {
		return nil, err
	}
	password, err := utils.GenerateOtpCode(tempPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customer := &db_models.Customer{
		PhotographerID:    actor.UserID,
		BrideName:         strings.TrimSpace(req.BrideName),
		GroomName:         strings.TrimSpace(req.GroomName),
		Phone:             strings.TrimSpace(req.Phone),
		Email:             email,
		TcID:              strings.TrimSpace(req.TcID),
		WeddingDate:       req.WeddingDate,
		Notes:             req.Notes,
		Status:            db_models.CustomerActive,
		AppointmentStatus: db_models.AppointmentNotShot,
		AlbumStatus:       db_models.AlbumNotStarted,
		Photos:            datatypes.JSONSlice[db_models.Photo]{},
		SelectedPhotos:    datatypes.JSONSlice[db_models.SelectedPhoto]{},
		SelectionLimits:   db_models.NewSelectionLimits(limits),
	}
	loginEmail := utils.LoginEmail(username, s.loginDomain)
	account := &db_models.Account{
		Name:         customer.DisplayName(),
		Email:        loginEmail,
		PasswordHash: hash,
		Role:         db_models.RoleCouple,
	}

	if err := s.customers.CreateWithAccount(ctx, customer, account); err != nil {
		return nil, dbErr(err)
	}

	return &response_models.CreatedCustomer{
		Customer: *customer,
		Credentials: response_models.Credentials{
			Username: username,
			Email:    loginEmail,
			Password: password,
		},
	}, nil
}

// freeUsername appends a counter to base until the login address is unused.
func (s *CustomerService) freeUsername(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "musteri"
	}
	for i := 1; i <= 50; i++ {
		candidate := base
		if i > 1 {
			candidate = base + strconv.Itoa(i)
		}
		taken, err := s.accounts.EmailTakenByOther(ctx, utils.LoginEmail(candidate, s.loginDomain), nil)
		if err != nil {
			return "", dbErr(err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", utils.ErrUsernameInUse
}

func (s *CustomerService) GetCustomer(ctx context.Context, actor Actor, id uuid.UUID) (*response_models.CustomerDetail, error) {
	customer, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(customer.PhotographerID) && !actor.isCustomer(customer.ID) {
		return nil, utils.ErrForbidden
	}

	detail := &response_models.CustomerDetail{Customer: *customer}

	if customer.UserID != nil {
		login, err := s.accounts.FindById(ctx, *customer.UserID)
		if err != nil {
			return nil, dbErr(err)
		}
		if login != nil {
			detail.User = &response_models.LinkedLogin{
				Email:    login.Email,
				Username: utils.UsernameFromEmail(login.Email),
			}
		}
	}

	photographer, err := s.accounts.FindById(ctx, customer.PhotographerID)
	if err != nil {
		return nil, dbErr(err)
	}
	if photographer != nil {
		detail.PhotographerSlug = photographer.Slug
	}

	return detail, nil
}

// UpdateCustomer runs every check before the single transactional write, so
// a rejected update leaves both the customer and its login untouched. Side
// effects are published only after the write succeeds.
func (s *CustomerService) UpdateCustomer(ctx context.Context, actor Actor, id uuid.UUID, req request_models.UpdateCustomerRequest) (*db_models.Customer, error) {
	prev, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.owns(prev.PhotographerID):
	case actor.isCustomer(prev.ID) && req.OnlySelectionFields():
	default:
		return nil, utils.ErrForbidden
	}

	next, events, err := ApplyCustomerUpdate(prev, &req, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if next.Email != "" && !strings.EqualFold(next.Email, prev.Email) {
		if err := s.ensureEmailFree(ctx, next.Email, prev.ID, prev.UserID); err != nil {
			return nil, err
		}
	}

	change, err := s.accountChange(ctx, prev, &req)
	if err != nil {
		return nil, err
	}

	if err := s.customers.SaveWithAccount(ctx, next, change); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrCustomerNotFound
		}
		return nil, dbErr(err)
	}

	s.events.Publish(ctx, events...)
	return next, nil
}

// ensureEmailFree rejects an address held by another customer or by any
// login other than the customer's own.
func (s *CustomerService) ensureEmailFree(ctx context.Context, email string, customerID uuid.UUID, accountID *uuid.UUID) error {
	taken, err := s.customers.EmailTakenByOther(ctx, email, customerID)
	if err != nil {
		return dbErr(err)
	}
	if taken {
		return utils.ErrEmailInUse
	}

	taken, err = s.accounts.EmailTakenByOther(ctx, email, accountID)
	if err != nil {
		return dbErr(err)
	}
	if taken {
		return utils.ErrEmailInUse
	}
	return nil
}

func (s *CustomerService) accountChange(ctx context.Context, prev *db_models.Customer, req *request_models.UpdateCustomerRequest) (*repositories.AccountChange, error) {
	if req.Username == nil && req.Password == nil {
		return nil, nil
	}
	if prev.UserID == nil {
		verr := utils.NewValidationError()
		verr.Add("username", "Müşterinin kullanıcı hesabı yok")
		return nil, verr
	}

	change := &repositories.AccountChange{AccountID: *prev.UserID}

	if req.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*req.Username))
		if username == "" || utils.Slugify(username) != username {
			verr := utils.NewValidationError()
			verr.Add("username", "Kullanıcı adı yalnızca harf ve rakam içerebilir")
			return nil, verr
		}
		login := utils.LoginEmail(username, s.loginDomain)
		taken, err := s.accounts.EmailTakenByOther(ctx, login, prev.UserID)
		if err != nil {
			return nil, dbErr(err)
		}
		if taken {
			return nil, utils.ErrUsernameInUse
		}
		change.Email = &login
	}

	if req.Password != nil {
		if len(*req.Password) < 4 {
			verr := utils.NewValidationError()
			verr.Add("password", "Şifre en az 4 karakter olmalıdır")
			return nil, verr
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		change.PasswordHash = &hash
	}

	return change, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, actor Actor, id uuid.UUID) error {
	customer, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !actor.owns(customer.PhotographerID) {
		return utils.ErrForbidden
	}
	if err := s.customers.DeleteWithAccount(ctx, customer); err != nil {
		return dbErr(err)
	}
	return nil
}

func (s *CustomerService) ResetCustomerPassword(ctx context.Context, actor Actor, id uuid.UUID, password string) (*response_models.Credentials, error) {
	customer, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(customer.PhotographerID) {
		return nil, utils.ErrForbidden
	}

	change, err := s.accountChange(ctx, customer, &request_models.UpdateCustomerRequest{Password: &password})
	if err != nil {
		return nil, err
	}
	if err := s.customers.SaveWithAccount(ctx, customer, change); err != nil {
		return nil, dbErr(err)
	}

	login, err := s.accounts.FindById(ctx, *customer.UserID)
	if err != nil {
		return nil, dbErr(err)
	}
	creds := &response_models.Credentials{Password: password}
	if login != nil {
		creds.Email = login.Email
		creds.Username = utils.UsernameFromEmail(login.Email)
	}
	return creds, nil
}

func (s *CustomerService) load(ctx context.Context, id uuid.UUID) (*db_models.Customer, error) {
	customer, err := s.customers.FindById(ctx, id)
	if err != nil {
		return nil, dbErr(err)
	}
	if customer == nil {
		return nil, utils.ErrCustomerNotFound
	}
	return customer, nil
}
