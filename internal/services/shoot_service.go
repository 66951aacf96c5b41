package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

type ShootServiceInterface interface {
	ListShoots(ctx context.Context, actor Actor, q request_models.ListShootsQuery) ([]db_models.Shoot, error)
	CreateShoot(ctx context.Context, actor Actor, req request_models.CreateShootRequest) (*db_models.Shoot, error)
	GetShoot(ctx context.Context, actor Actor, id uuid.UUID) (*db_models.Shoot, error)
	UpdateShoot(ctx context.Context, actor Actor, id uuid.UUID, req request_models.UpdateShootRequest) (*db_models.Shoot, error)
	DeleteShoot(ctx context.Context, actor Actor, id uuid.UUID) error
}

type ShootService struct {
	shoots    repositories.ShootRepository
	customers repositories.CustomerRepository
	customer  CustomerServiceInterface
	events    EventPublisher
}

func NewShootService(
	shoots repositories.ShootRepository,
	customers repositories.CustomerRepository,
	customer CustomerServiceInterface,
	events EventPublisher,
) ShootServiceInterface {
	return &ShootService{
		shoots:    shoots,
		customers: customers,
		customer:  customer,
		events:    events,
	}
}

func (s *ShootService) ListShoots(ctx context.Context, actor Actor, q request_models.ListShootsQuery) ([]db_models.Shoot, error) {
	filter := repositories.ShootFilter{Start: q.Start, End: q.End}

	var requested *uuid.UUID
	if q.CustomerID != "" {
		id, err := uuid.Parse(q.CustomerID)
		if err != nil {
			verr := utils.NewValidationError()
			verr.Add("customerId", "Geçersiz müşteri kimliği")
			return nil, verr
		}
		requested = &id
	}

	switch {
	case actor.IsAdmin():
		pid := actor.UserID
		filter.PhotographerID = &pid
		filter.CustomerID = requested
	case actor.IsCouple() && actor.CustomerID != nil:
		if requested != nil && *requested != *actor.CustomerID {
			return nil, utils.ErrForbidden
		}
		cid := *actor.CustomerID
		filter.CustomerID = &cid
	default:
		return nil, utils.ErrForbidden
	}

	shoots, err := s.shoots.List(ctx, filter)
	if err != nil {
		return nil, dbErr(err)
	}
	if shoots == nil {
		shoots = []db_models.Shoot{}
	}
	return shoots, nil
}

func (s *ShootService) CreateShoot(ctx context.Context, actor Actor, req request_models.CreateShootRequest) (*db_models.Shoot, error) {
	if !actor.IsAdmin() {
		return nil, utils.ErrForbidden
	}

	customer, err := s.customers.FindById(ctx, req.CustomerID)
	if err != nil {
		return nil, dbErr(err)
	}
	if customer == nil {
		return nil, utils.ErrCustomerNotFound
	}
	if !actor.owns(customer.PhotographerID) {
		return nil, utils.ErrForbidden
	}

	shootType := db_models.ShootWedding
	if req.Type != "" {
		shootType = db_models.ShootType(req.Type)
	}
	if !shootType.Valid() {
		verr := utils.NewValidationError()
		verr.Add("type", "Geçersiz çekim türü")
		return nil, verr
	}

	shoot := &db_models.Shoot{
		PhotographerID: actor.UserID,
		CustomerID:     customer.ID,
		Date:           req.Date,
		Time:           strings.TrimSpace(req.Time),
		Type:           shootType,
		Location:       strings.TrimSpace(req.Location),
		City:           strings.TrimSpace(req.City),
		PackageName:    strings.TrimSpace(req.PackageName),
		ContractID:     strings.TrimSpace(req.ContractID),
		AgreedPrice:    req.AgreedPrice,
		Deposit:        req.Deposit,
		Notes:          req.Notes,
		Status:         db_models.ShootPlanned,
	}
	if err := s.shoots.Create(ctx, shoot); err != nil {
		return nil, dbErr(err)
	}
	shoot.Customer = customer

	s.events.Publish(ctx, ShootCreated{
		ShootID:        shoot.ID,
		CustomerID:     customer.ID,
		PhotographerID: shoot.PhotographerID,
		CustomerName:   customer.DisplayName(),
		Date:           shoot.Date,
		Type:           string(shoot.Type),
	})
	return shoot, nil
}

func (s *ShootService) GetShoot(ctx context.Context, actor Actor, id uuid.UUID) (*db_models.Shoot, error) {
	shoot, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(shoot.PhotographerID) && !actor.isCustomer(shoot.CustomerID) {
		return nil, utils.ErrForbidden
	}
	return shoot, nil
}

// UpdateShoot applies shoot fields and, when customerData is present, runs
// it through the customer update path with the same actor.
func (s *ShootService) UpdateShoot(ctx context.Context, actor Actor, id uuid.UUID, req request_models.UpdateShootRequest) (*db_models.Shoot, error) {
	shoot, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(shoot.PhotographerID) {
		return nil, utils.ErrForbidden
	}

	verr := utils.NewValidationError()
	if req.Date != nil {
		shoot.Date = *req.Date
	}
	if req.Time != nil {
		shoot.Time = strings.TrimSpace(*req.Time)
	}
	if req.Type != nil {
		t := db_models.ShootType(*req.Type)
		if !t.Valid() {
			verr.Add("type", "Geçersiz çekim türü")
		}
		shoot.Type = t
	}
	if req.Location != nil {
		shoot.Location = strings.TrimSpace(*req.Location)
	}
	if req.City != nil {
		shoot.City = strings.TrimSpace(*req.City)
	}
	if req.PackageName != nil {
		shoot.PackageName = strings.TrimSpace(*req.PackageName)
	}
	if req.ContractID != nil {
		shoot.ContractID = strings.TrimSpace(*req.ContractID)
	}
	if req.AgreedPrice != nil {
		shoot.AgreedPrice = req.AgreedPrice
	}
	if req.Deposit != nil {
		shoot.Deposit = req.Deposit
	}
	if req.Notes != nil {
		shoot.Notes = *req.Notes
	}
	if req.Status != nil {
		st := db_models.ShootStatus(*req.Status)
		if !st.Valid() {
			verr.Add("status", "Geçersiz çekim durumu")
		}
		shoot.Status = st
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if req.CustomerData != nil {
		if _, err := s.customer.UpdateCustomer(ctx, actor, shoot.CustomerID, *req.CustomerData); err != nil {
			return nil, err
		}
	}

	if err := s.shoots.Save(ctx, shoot); err != nil {
		return nil, dbErr(err)
	}
	return s.load(ctx, id)
}

func (s *ShootService) DeleteShoot(ctx context.Context, actor Actor, id uuid.UUID) error {
	shoot, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !actor.owns(shoot.PhotographerID) {
		return utils.ErrForbidden
	}
	if err := s.shoots.Delete(ctx, id); err != nil {
		return dbErr(err)
	}
	return nil
}

func (s *ShootService) load(ctx context.Context, id uuid.UUID) (*db_models.Shoot, error) {
	shoot, err := s.shoots.FindById(ctx, id)
	if err != nil {
		return nil, dbErr(err)
	}
	if shoot == nil {
		return nil, utils.ErrShootNotFound
	}
	return shoot, nil
}
