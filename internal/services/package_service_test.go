package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/repositories"
	mem "fotopanel/pkg/memcache"
	"fotopanel/pkg/utils"
)

func newPackageService(t *testing.T) (*gorm.DB, PackageServiceInterface, *recordingMailer) {
	t.Helper()
	db := newTestDB(t)
	mailer := &recordingMailer{}
	templates := NewEmailTemplateService(
		repositories.NewEmailTemplateRepository(db),
		repositories.NewAccountRepository(db),
		mem.NewTTLCache[ResolvedTemplate](time.Minute),
		mailer,
		testConfig(),
	)
	svc := NewPackageService(
		repositories.NewPackageRepository(db),
		repositories.NewAccountRepository(db),
		templates,
		zap.NewNop(),
		testConfig(),
	)
	return db, svc, mailer
}

func TestPackages_ListSeedsDefaults(t *testing.T) {
	_, svc, _ := newPackageService(t)
	ctx := context.Background()

	packages, err := svc.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, packages, 3)
	assert.Equal(t, []string{"trial", "standart", "kurumsal"}, []string{packages[0].ID, packages[1].ID, packages[2].ID})
	assert.True(t, packages[1].Popular)
	assert.NotEmpty(t, packages[2].Features)

	_, err = svc.SavePackage(ctx, superadmin, request_models.SavePackageRequest{
		ID: "standart", Name: "Standart+", Price: ptr(8999.0), Storage: ptr(12.0),
		Features: []string{" Sınırsız Müşteri ", ""},
	})
	require.NoError(t, err)

	packages, err = svc.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, packages, 3)
	assert.Equal(t, "Standart+", packages[1].Name, "listing must not reset edited tiers")
	assert.Equal(t, []string{"Sınırsız Müşteri"}, []string(packages[1].Features))
	assert.False(t, packages[1].Popular, "save replaces the whole record")
}

func TestPackages_Save(t *testing.T) {
	_, svc, _ := newPackageService(t)
	ctx := context.Background()

	t.Run("new tier", func(t *testing.T) {
		pkg, err := svc.SavePackage(ctx, superadmin, request_models.SavePackageRequest{
			ID: "premium", Name: "Premium", Price: ptr(29999.0), Storage: ptr(100.0), Popular: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "premium", pkg.ID)
		assert.Equal(t, int64(100)<<30, pkg.StorageBytes())
	})

	t.Run("only superadmin", func(t *testing.T) {
		_, err := svc.SavePackage(ctx, Actor{UserID: uuid.New(), Role: db_models.RoleAdmin}, request_models.SavePackageRequest{
			ID: "x", Name: "x", Price: ptr(1.0), Storage: ptr(1.0),
		})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := svc.SavePackage(ctx, superadmin, request_models.SavePackageRequest{
			ID: "x", Name: "x", Price: ptr(-1.0), Storage: ptr(1.0),
		})
		assert.True(t, utils.IsValidation(err))
	})
}

func TestPackages_Assign(t *testing.T) {
	db, svc, mailer := newPackageService(t)
	ctx := context.Background()
	studio := seedPhotographer(t, db, "isikstudyo")

	_, err := svc.ListPackages(ctx)
	require.NoError(t, err)

	expiry := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	plan, err := svc.AssignPackage(ctx, superadmin, studio.ID, request_models.AssignPackageRequest{
		PackageID:          "standart",
		SubscriptionExpiry: &expiry,
	})
	require.NoError(t, err)
	assert.Equal(t, "standart", plan.PackageType)
	assert.Equal(t, int64(10)<<30, plan.StorageLimit)

	var stored db_models.Account
	require.NoError(t, db.First(&stored, "id = ?", studio.ID).Error)
	assert.Equal(t, "standart", stored.PackageType)
	assert.Equal(t, int64(10)<<30, stored.StorageLimit)
	require.NotNil(t, stored.SubscriptionExpiry)
	assert.True(t, stored.SubscriptionExpiry.Equal(expiry))

	m := mailer.last(t)
	assert.Equal(t, studio.Email, m.To)
	assert.Contains(t, m.HTML, "Standart Paket")
	assert.Contains(t, m.HTML, "1 Ocak 2026")

	t.Run("mail failure does not fail the assignment", func(t *testing.T) {
		mailer.err = assert.AnError
		_, err := svc.AssignPackage(ctx, superadmin, studio.ID, request_models.AssignPackageRequest{PackageID: "kurumsal"})
		require.NoError(t, err)
		mailer.err = nil
	})

	t.Run("unknown package", func(t *testing.T) {
		_, err := svc.AssignPackage(ctx, superadmin, studio.ID, request_models.AssignPackageRequest{PackageID: "gold"})
		assert.ErrorIs(t, err, utils.ErrPackageNotFound)
	})

	t.Run("target must be a photographer", func(t *testing.T) {
		couple := &db_models.Account{Email: "ayseburak@fotopanel.com", Role: db_models.RoleCouple}
		require.NoError(t, db.Create(couple).Error)
		_, err := svc.AssignPackage(ctx, superadmin, couple.ID, request_models.AssignPackageRequest{PackageID: "trial"})
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}
