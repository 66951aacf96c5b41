package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

func newShootService(t *testing.T) (*customerFixture, ShootServiceInterface) {
	t.Helper()
	f := newCustomerFixture(t)
	svc := NewShootService(
		repositories.NewShootRepository(f.db),
		repositories.NewCustomerRepository(f.db),
		f.svc,
		f.events,
	)
	return f, svc
}

func TestShootService_CreateAndList(t *testing.T) {
	f, svc := newShootService(t)
	ctx := context.Background()
	admin := adminActor(f.studio)
	c := f.createCustomer(t, "ayse@example.com")

	june := time.Date(2025, 6, 20, 14, 0, 0, 0, time.UTC)
	shoot, err := svc.CreateShoot(ctx, admin, request_models.CreateShootRequest{
		CustomerID:  c.customer.ID,
		Date:        june,
		Time:        " 14:00 ",
		Location:    "Kordon",
		AgreedPrice: ptr(15000.0),
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.ShootWedding, shoot.Type)
	assert.Equal(t, db_models.ShootPlanned, shoot.Status)
	assert.Equal(t, "14:00", shoot.Time)
	assert.Equal(t, f.studio.ID, shoot.PhotographerID)
	assert.Contains(t, f.events.kinds(), EventShootCreated)

	_, err = svc.CreateShoot(ctx, admin, request_models.CreateShootRequest{
		CustomerID: c.customer.ID,
		Date:       june.AddDate(0, 1, 0),
		Type:       string(db_models.ShootEngagement),
	})
	require.NoError(t, err)

	t.Run("date range", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
		shoots, err := svc.ListShoots(ctx, admin, request_models.ListShootsQuery{Start: &start, End: &end})
		require.NoError(t, err)
		require.Len(t, shoots, 1)
		assert.Equal(t, shoot.ID, shoots[0].ID)
		require.NotNil(t, shoots[0].Customer)
		assert.Equal(t, "Ayşe", shoots[0].Customer.BrideName)
	})

	t.Run("other tenant sees nothing", func(t *testing.T) {
		shoots, err := svc.ListShoots(ctx, adminActor(f.otherSide), request_models.ListShootsQuery{})
		require.NoError(t, err)
		assert.Empty(t, shoots)
	})

	t.Run("couple sees only its own shoots", func(t *testing.T) {
		other := f.createCustomer(t, "")
		_, err := svc.CreateShoot(ctx, admin, request_models.CreateShootRequest{CustomerID: other.customer.ID, Date: june})
		require.NoError(t, err)

		couple := coupleActor(&c.customer)
		shoots, err := svc.ListShoots(ctx, couple, request_models.ListShootsQuery{})
		require.NoError(t, err)
		assert.Len(t, shoots, 2)

		_, err = svc.ListShoots(ctx, couple, request_models.ListShootsQuery{CustomerID: other.customer.ID.String()})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := svc.CreateShoot(ctx, admin, request_models.CreateShootRequest{CustomerID: c.customer.ID, Date: june, Type: "birthday"})
		assert.True(t, utils.IsValidation(err))
	})

	t.Run("foreign customer", func(t *testing.T) {
		_, err := svc.CreateShoot(ctx, adminActor(f.otherSide), request_models.CreateShootRequest{CustomerID: c.customer.ID, Date: june})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("missing customer", func(t *testing.T) {
		_, err := svc.CreateShoot(ctx, admin, request_models.CreateShootRequest{CustomerID: uuid.New(), Date: june})
		assert.ErrorIs(t, err, utils.ErrCustomerNotFound)
	})
}

func TestShootService_Update(t *testing.T) {
	f, svc := newShootService(t)
	ctx := context.Background()
	admin := adminActor(f.studio)
	c := f.createCustomer(t, "ayse@example.com")

	shoot, err := svc.CreateShoot(ctx, admin, request_models.CreateShootRequest{
		CustomerID: c.customer.ID,
		Date:       time.Date(2025, 6, 20, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	t.Run("fields and customer data", func(t *testing.T) {
		updated, err := svc.UpdateShoot(ctx, admin, shoot.ID, request_models.UpdateShootRequest{
			Status:      ptr(string(db_models.ShootCompleted)),
			AgreedPrice: ptr(17500.0),
			CustomerData: &request_models.UpdateCustomerRequest{
				AppointmentStatus: ptr(string(db_models.AppointmentShot)),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, db_models.ShootCompleted, updated.Status)
		assert.Equal(t, 17500.0, updated.Price())
		assert.Equal(t, db_models.AppointmentShot, f.reload(t, c.customer.ID).AppointmentStatus)
	})

	t.Run("invalid status writes nothing", func(t *testing.T) {
		_, err := svc.UpdateShoot(ctx, admin, shoot.ID, request_models.UpdateShootRequest{
			Status:       ptr("postponed"),
			CustomerData: &request_models.UpdateCustomerRequest{AlbumStatus: ptr(string(db_models.AlbumPrinting))},
		})
		assert.True(t, utils.IsValidation(err))
		assert.Equal(t, db_models.AlbumNotStarted, f.reload(t, c.customer.ID).AlbumStatus)
	})

	t.Run("couples cannot edit shoots", func(t *testing.T) {
		_, err := svc.UpdateShoot(ctx, coupleActor(&c.customer), shoot.ID, request_models.UpdateShootRequest{Notes: ptr("x")})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("couple can read its shoot", func(t *testing.T) {
		got, err := svc.GetShoot(ctx, coupleActor(&c.customer), shoot.ID)
		require.NoError(t, err)
		assert.Equal(t, shoot.ID, got.ID)

		_, err = svc.GetShoot(ctx, adminActor(f.otherSide), shoot.ID)
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("delete", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteShoot(ctx, adminActor(f.otherSide), shoot.ID), utils.ErrForbidden)
		require.NoError(t, svc.DeleteShoot(ctx, admin, shoot.ID))
		_, err := svc.GetShoot(ctx, admin, shoot.ID)
		assert.ErrorIs(t, err, utils.ErrShootNotFound)
	})
}
