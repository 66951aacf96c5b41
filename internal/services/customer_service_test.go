package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

type customerFixture struct {
	db        *gorm.DB
	svc       *CustomerService
	events    *recordingPublisher
	studio    *db_models.Account
	otherSide *db_models.Account
	now       time.Time
}

func newCustomerFixture(t *testing.T) *customerFixture {
	t.Helper()
	db := newTestDB(t)
	events := &recordingPublisher{}
	now := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)

	svc := NewCustomerService(
		repositories.NewCustomerRepository(db),
		repositories.NewAccountRepository(db),
		events,
		testConfig(),
	).(*CustomerService)
	svc.now = func() time.Time { return now }

	return &customerFixture{
		db:        db,
		svc:       svc,
		events:    events,
		studio:    seedPhotographer(t, db, "isikstudyo"),
		otherSide: seedPhotographer(t, db, "baskastudyo"),
		now:       now,
	}
}

type createdCustomer struct {
	customer db_models.Customer
	username string
	password string
}

// createCustomer goes through the service so the linked login exists.
func (f *customerFixture) createCustomer(t *testing.T, email string) *createdCustomer {
	t.Helper()
	created, err := f.svc.CreateCustomer(context.Background(), adminActor(f.studio), request_models.CreateCustomerRequest{
		BrideName: "Ayşe",
		GroomName: "Burak",
		Phone:     "05550000000",
		Email:     email,
	})
	require.NoError(t, err)
	return &createdCustomer{customer: created.Customer, username: created.Credentials.Username, password: created.Credentials.Password}
}

func (f *customerFixture) reload(t *testing.T, id uuid.UUID) *db_models.Customer {
	t.Helper()
	var c db_models.Customer
	require.NoError(t, f.db.First(&c, "id = ?", id).Error)
	return &c
}

func (f *customerFixture) login(t *testing.T, id uuid.UUID) *db_models.Account {
	t.Helper()
	var a db_models.Account
	require.NoError(t, f.db.First(&a, "id = ?", id).Error)
	return &a
}

func TestCustomerService_Create(t *testing.T) {
	f := newCustomerFixture(t)

	first := f.createCustomer(t, "ayse@example.com")
	assert.Equal(t, "ayseburak", first.username)
	assert.Len(t, first.password, 6)
	require.NotNil(t, first.customer.UserID)

	account := f.login(t, *first.customer.UserID)
	assert.Equal(t, "ayseburak@fotopanel.com", account.Email)
	assert.Equal(t, db_models.RoleCouple, account.Role)
	require.NoError(t, utils.ComparePasswords(account.PasswordHash, first.password))

	t.Run("same names get a numbered username", func(t *testing.T) {
		second := f.createCustomer(t, "")
		assert.Equal(t, "ayseburak2", second.username)
	})

	t.Run("email used by another customer is rejected", func(t *testing.T) {
		_, err := f.svc.CreateCustomer(context.Background(), adminActor(f.studio), request_models.CreateCustomerRequest{
			BrideName: "Zeynep", Phone: "1", Email: "AYSE@example.com",
		})
		assert.ErrorIs(t, err, utils.ErrEmailInUse)
	})

	t.Run("couples cannot create customers", func(t *testing.T) {
		c := first.customer
		_, err := f.svc.CreateCustomer(context.Background(), coupleActor(&c), request_models.CreateCustomerRequest{
			BrideName: "Zeynep", Phone: "1",
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})
}

func TestCustomerService_UpdateAuthorization(t *testing.T) {
	f := newCustomerFixture(t)
	created := f.createCustomer(t, "ayse@example.com")
	id := created.customer.ID
	ctx := context.Background()

	t.Run("other tenant is forbidden and nothing changes", func(t *testing.T) {
		_, err := f.svc.UpdateCustomer(ctx, adminActor(f.otherSide), id, request_models.UpdateCustomerRequest{
			AppointmentStatus: ptr(string(db_models.AppointmentShot)),
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
		assert.Equal(t, db_models.AppointmentNotShot, f.reload(t, id).AppointmentStatus)
		assert.Empty(t, f.events.kinds())
	})

	t.Run("couple may not change statuses", func(t *testing.T) {
		c := created.customer
		_, err := f.svc.UpdateCustomer(ctx, coupleActor(&c), id, request_models.UpdateCustomerRequest{
			AlbumStatus: ptr(string(db_models.AlbumDelivered)),
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("couple of another customer is forbidden", func(t *testing.T) {
		stranger := seedCustomer(t, f.db, f.studio.ID, nil)
		_, err := f.svc.UpdateCustomer(ctx, coupleActor(stranger), id, request_models.UpdateCustomerRequest{
			SelectionCompleted: ptr(true),
			Source:             request_models.SourceCustomer,
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := f.svc.UpdateCustomer(ctx, adminActor(f.studio), uuid.New(), request_models.UpdateCustomerRequest{})
		assert.ErrorIs(t, err, utils.ErrCustomerNotFound)
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})
}

func TestCustomerService_SelectionApproval(t *testing.T) {
	f := newCustomerFixture(t)
	created := f.createCustomer(t, "ayse@example.com")
	c := created.customer
	ctx := context.Background()

	req := request_models.UpdateCustomerRequest{
		SelectedPhotos: &[]db_models.SelectedPhoto{
			{URL: "https://cdn/1.jpg", Filename: "1.jpg", Type: db_models.SelectionAlbum},
			{URL: "https://cdn/2.jpg", Filename: "2.jpg", Type: db_models.SelectionCover},
		},
		SelectionCompleted: ptr(true),
		Source:             request_models.SourceCustomer,
	}

	updated, err := f.svc.UpdateCustomer(ctx, coupleActor(&c), c.ID, req)
	require.NoError(t, err)
	require.NotNil(t, updated.SelectionApprovedAt)
	assert.True(t, updated.SelectionApprovedAt.Equal(f.now))

	stored := f.reload(t, c.ID)
	require.NotNil(t, stored.SelectionApprovedAt)
	assert.True(t, stored.SelectionApprovedAt.Equal(f.now))
	assert.Len(t, stored.SelectedPhotos, 2)
	assert.Equal(t, []EventKind{EventCustomerSelectionCompleted}, f.events.kinds())

	t.Run("replay is idempotent", func(t *testing.T) {
		f.svc.now = func() time.Time { return f.now.Add(time.Hour) }

		_, err := f.svc.UpdateCustomer(ctx, coupleActor(&c), c.ID, req)
		require.NoError(t, err)

		stored := f.reload(t, c.ID)
		assert.True(t, stored.SelectionApprovedAt.Equal(f.now))
		assert.Len(t, f.events.kinds(), 1)
	})
}

func TestCustomerService_ZeroLimitsPersist(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateCustomer(ctx, adminActor(f.studio), request_models.CreateCustomerRequest{
		BrideName:       "Elif",
		Phone:           "05551112233",
		SelectionLimits: &db_models.SelectionLimits{},
	})
	require.NoError(t, err)
	c := created.Customer

	stored := f.reload(t, c.ID)
	assert.Equal(t, db_models.SelectionLimits{}, stored.Limits())

	_, err = f.svc.UpdateCustomer(ctx, coupleActor(&c), c.ID, request_models.UpdateCustomerRequest{
		SelectedPhotos: &[]db_models.SelectedPhoto{{URL: "https://cdn/1.jpg", Type: db_models.SelectionAlbum}},
		Source:         request_models.SourceCustomer,
	})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, f.reload(t, c.ID).SelectedPhotos)
}

func TestCustomerService_DeliveredAt(t *testing.T) {
	f := newCustomerFixture(t)
	created := f.createCustomer(t, "ayse@example.com")
	id := created.customer.ID
	ctx := context.Background()
	admin := adminActor(f.studio)

	_, err := f.svc.UpdateCustomer(ctx, admin, id, request_models.UpdateCustomerRequest{
		AlbumStatus: ptr(string(db_models.AlbumDelivered)),
	})
	require.NoError(t, err)
	stored := f.reload(t, id)
	require.NotNil(t, stored.DeliveredAt)
	assert.True(t, stored.DeliveredAt.Equal(f.now))

	_, err = f.svc.UpdateCustomer(ctx, admin, id, request_models.UpdateCustomerRequest{
		AlbumStatus: ptr(string(db_models.AlbumShipping)),
	})
	require.NoError(t, err)
	assert.Nil(t, f.reload(t, id).DeliveredAt)

	kinds := f.events.kinds()
	assert.Equal(t, []EventKind{EventCustomerStatusChanged, EventCustomerStatusChanged}, kinds)
}

func TestCustomerService_Conflicts(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	admin := adminActor(f.studio)

	first := f.createCustomer(t, "ayse@example.com")
	second := f.createCustomer(t, "zeynep@example.com")

	t.Run("email of another customer", func(t *testing.T) {
		_, err := f.svc.UpdateCustomer(ctx, admin, second.customer.ID, request_models.UpdateCustomerRequest{
			Email:       ptr("ayse@example.com"),
			AlbumStatus: ptr(string(db_models.AlbumDelivered)),
		})
		assert.ErrorIs(t, err, utils.ErrEmailInUse)

		stored := f.reload(t, second.customer.ID)
		assert.Equal(t, "zeynep@example.com", stored.Email)
		assert.Equal(t, db_models.AlbumNotStarted, stored.AlbumStatus)
		assert.Nil(t, stored.DeliveredAt)
		assert.Empty(t, f.events.kinds())
	})

	t.Run("email of a photographer login", func(t *testing.T) {
		_, err := f.svc.UpdateCustomer(ctx, admin, second.customer.ID, request_models.UpdateCustomerRequest{
			Email: ptr(f.otherSide.Email),
		})
		assert.ErrorIs(t, err, utils.ErrEmailInUse)
	})

	t.Run("username taken by another login", func(t *testing.T) {
		_, err := f.svc.UpdateCustomer(ctx, admin, second.customer.ID, request_models.UpdateCustomerRequest{
			Username: ptr(first.username),
			Password: ptr("yenisifre"),
		})
		assert.ErrorIs(t, err, utils.ErrUsernameInUse)

		login := f.login(t, *second.customer.UserID)
		assert.Equal(t, second.username+"@fotopanel.com", login.Email)
		require.NoError(t, utils.ComparePasswords(login.PasswordHash, second.password))
	})
}

func TestCustomerService_LoginChanges(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	created := f.createCustomer(t, "ayse@example.com")
	id := created.customer.ID

	_, err := f.svc.UpdateCustomer(ctx, adminActor(f.studio), id, request_models.UpdateCustomerRequest{
		Username: ptr("ayse2025"),
		Password: ptr("gizli"),
	})
	require.NoError(t, err)

	login := f.login(t, *created.customer.UserID)
	assert.Equal(t, "ayse2025@fotopanel.com", login.Email)
	require.NoError(t, utils.ComparePasswords(login.PasswordHash, "gizli"))

	t.Run("customer email change leaves the login alone", func(t *testing.T) {
		_, err := f.svc.UpdateCustomer(ctx, adminActor(f.studio), id, request_models.UpdateCustomerRequest{
			Email: ptr("yeni@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "yeni@example.com", f.reload(t, id).Email)
		assert.Equal(t, "ayse2025@fotopanel.com", f.login(t, *created.customer.UserID).Email)
	})

	t.Run("reset password", func(t *testing.T) {
		creds, err := f.svc.ResetCustomerPassword(ctx, adminActor(f.studio), id, "baska1")
		require.NoError(t, err)
		assert.Equal(t, "ayse2025", creds.Username)
		require.NoError(t, utils.ComparePasswords(f.login(t, *created.customer.UserID).PasswordHash, "baska1"))
	})

	t.Run("username must be plain", func(t *testing.T) {
		_, err := f.svc.UpdateCustomer(ctx, adminActor(f.studio), id, request_models.UpdateCustomerRequest{
			Username: ptr("ayşe burak"),
		})
		assert.True(t, utils.IsValidation(err))
	})
}

func TestCustomerService_GetListDelete(t *testing.T) {
	f := newCustomerFixture(t)
	ctx := context.Background()
	created := f.createCustomer(t, "ayse@example.com")
	seedCustomer(t, f.db, f.otherSide.ID, func(c *db_models.Customer) { c.BrideName = "Elif" })

	detail, err := f.svc.GetCustomer(ctx, adminActor(f.studio), created.customer.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.User)
	assert.Equal(t, "ayseburak", detail.User.Username)
	assert.Equal(t, "isikstudyo", detail.PhotographerSlug)

	c := created.customer
	_, err = f.svc.GetCustomer(ctx, coupleActor(&c), c.ID)
	require.NoError(t, err)

	list, err := f.svc.ListCustomers(ctx, adminActor(f.studio), "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	list, err = f.svc.ListCustomers(ctx, adminActor(f.studio), "elif")
	require.NoError(t, err)
	assert.Empty(t, list)

	err = f.svc.DeleteCustomer(ctx, adminActor(f.otherSide), c.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	require.NoError(t, f.svc.DeleteCustomer(ctx, adminActor(f.studio), c.ID))
	_, err = f.svc.GetCustomer(ctx, adminActor(f.studio), c.ID)
	assert.ErrorIs(t, err, utils.ErrCustomerNotFound)

	var logins int64
	require.NoError(t, f.db.Model(&db_models.Account{}).Where("id = ?", *c.UserID).Count(&logins).Error)
	assert.Zero(t, logins)
}
