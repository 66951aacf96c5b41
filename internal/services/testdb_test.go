package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fotopanel/internal/config"
	"fotopanel/internal/infra"
	"fotopanel/internal/models/db_models"
)

// newTestDB opens a private in-memory database with every table migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		LoginEmailDomain:  "fotopanel.com",
		DashboardLocation: time.UTC,
		AppBaseURL:        "https://panel.example.com",
		TemplateCacheTTL:  time.Minute,
	}
}

// recordingPublisher keeps every published event for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...DomainEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *recordingPublisher) kinds() []EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]EventKind, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Kind())
	}
	return out
}

func seedPhotographer(t *testing.T, db *gorm.DB, studio string) *db_models.Account {
	t.Helper()
	a := &db_models.Account{
		Name:         studio,
		Email:        uuid.NewString() + "@studio.test",
		Role:         db_models.RoleAdmin,
		StudioName:   studio,
		Slug:         studio,
		StorageLimit: db_models.DefaultStorageLimit,
		PackageType:  "trial",
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedCustomer(t *testing.T, db *gorm.DB, photographerID uuid.UUID, mutate func(*db_models.Customer)) *db_models.Customer {
	t.Helper()
	c := &db_models.Customer{
		PhotographerID:    photographerID,
		BrideName:         "Ayşe",
		GroomName:         "Burak",
		Phone:             "05550000000",
		Status:            db_models.CustomerActive,
		AppointmentStatus: db_models.AppointmentNotShot,
		AlbumStatus:       db_models.AlbumNotStarted,
		Photos:            datatypes.JSONSlice[db_models.Photo]{},
		SelectedPhotos:    datatypes.JSONSlice[db_models.SelectedPhoto]{},
		SelectionLimits:   db_models.NewSelectionLimits(db_models.DefaultSelectionLimits()),
	}
	if mutate != nil {
		mutate(c)
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func adminActor(a *db_models.Account) Actor {
	return Actor{UserID: a.ID, Role: db_models.RoleAdmin}
}

func coupleActor(c *db_models.Customer) Actor {
	id := c.ID
	userID := uuid.New()
	if c.UserID != nil {
		userID = *c.UserID
	}
	return Actor{UserID: userID, Role: db_models.RoleCouple, CustomerID: &id}
}

func ptr[T any](v T) *T { return &v }
