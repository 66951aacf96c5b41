package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

func TestNotifications(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))
	ctx := context.Background()

	studio := seedPhotographer(t, db, "isikstudyo")
	other := seedPhotographer(t, db, "baskastudyo")
	admin := adminActor(studio)

	require.NoError(t, svc.NotifyPhotoSelection(ctx, studio.ID, uuid.New(), "Ayşe & Burak"))
	require.NoError(t, svc.NotifyNewAppointment(ctx, studio.ID, uuid.New(), uuid.New(), "Elif & Mert", "", ""))
	require.NoError(t, svc.NotifyPhotoSelection(ctx, other.ID, uuid.New(), "Zeynep & Can"))

	items, err := svc.List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, n := range items {
		assert.Equal(t, studio.ID, n.UserID)
		if n.Type == db_models.NotificationNewAppointment {
			assert.Equal(t, "Elif & Mert için Belirtilmemiş tarihinde yeni randevu oluşturuldu.", n.Message)
		}
	}

	count, err := svc.UnreadCount(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)

	t.Run("mark one read", func(t *testing.T) {
		require.NoError(t, svc.MarkRead(ctx, admin, items[0].ID))
		count, err := svc.UnreadCount(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count.Count)
	})

	t.Run("cannot mark another tenant's notification", func(t *testing.T) {
		theirs, err := svc.List(ctx, adminActor(other))
		require.NoError(t, err)
		require.Len(t, theirs, 1)
		assert.ErrorIs(t, svc.MarkRead(ctx, admin, theirs[0].ID), utils.ErrNotificationNotFound)
	})

	t.Run("mark all read", func(t *testing.T) {
		marked, err := svc.MarkAllRead(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, int64(1), marked.Updated)

		count, err := svc.UnreadCount(ctx, admin)
		require.NoError(t, err)
		assert.Zero(t, count.Count)

		count, err = svc.UnreadCount(ctx, adminActor(other))
		require.NoError(t, err)
		assert.Equal(t, int64(1), count.Count)
	})

	t.Run("couples have no inbox", func(t *testing.T) {
		_, err := svc.List(ctx, Actor{UserID: uuid.New(), Role: db_models.RoleCouple})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		fresh := seedPhotographer(t, db, "yenistudyo")
		items, err := svc.List(ctx, adminActor(fresh))
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
