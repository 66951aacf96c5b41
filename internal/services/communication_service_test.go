package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/models/request_models"
	"fotopanel/internal/repositories"
	mem "fotopanel/pkg/memcache"
	"fotopanel/pkg/utils"
)

// rejectingMailer fails for the listed addresses and records the rest.
type rejectingMailer struct {
	mu     sync.Mutex
	reject map[string]bool
	sent   []Mail
}

func (m *rejectingMailer) Send(_ context.Context, mail Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reject[mail.To] {
		return errors.New("mailbox unavailable")
	}
	m.sent = append(m.sent, mail)
	return nil
}

var commsNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newCommunicationService(t *testing.T, log *zap.Logger) (*gorm.DB, *CommunicationService, *rejectingMailer) {
	t.Helper()
	db := newTestDB(t)
	mailer := &rejectingMailer{reject: map[string]bool{}}
	accounts := repositories.NewAccountRepository(db)
	templates := NewEmailTemplateService(
		repositories.NewEmailTemplateRepository(db),
		accounts,
		mem.NewTTLCache[ResolvedTemplate](time.Minute),
		mailer,
		testConfig(),
	)
	svc := NewCommunicationService(accounts, repositories.NewCommunicationLogRepository(db), templates, mailer, log).(*CommunicationService)
	svc.now = func() time.Time { return commsNow }
	return db, svc, mailer
}

func seedStudio(t *testing.T, db *gorm.DB, name, pkg string, expiry *time.Time) *db_models.Account {
	t.Helper()
	a := seedPhotographer(t, db, name)
	a.PackageType = pkg
	a.SubscriptionExpiry = expiry
	require.NoError(t, db.Save(a).Error)
	return a
}

func emailsOf(accounts []db_models.Account) []string {
	out := make([]string, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Email)
	}
	return out
}

func TestCommunicationService_ListPhotographers(t *testing.T) {
	db, svc, _ := newCommunicationService(t, zap.NewNop())
	ctx := context.Background()

	studio := seedStudio(t, db, "isikstudyo", "trial", nil)
	require.NoError(t, db.Create(&db_models.Account{Name: "Ayşe", Email: "ayse@example.com", Role: db_models.RoleCouple}).Error)
	require.NoError(t, db.Create(&db_models.Account{Name: "Root", Email: "root@example.com", Role: db_models.RoleSuperAdmin}).Error)

	got, err := svc.ListPhotographers(ctx, superadmin)
	require.NoError(t, err)
	assert.Equal(t, []string{studio.Email}, emailsOf(got))

	_, err = svc.ListPhotographers(ctx, adminActor(studio))
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestCommunicationService_RecipientFilters(t *testing.T) {
	db, _, _ := newCommunicationService(t, zap.NewNop())
	ctx := context.Background()
	accounts := repositories.NewAccountRepository(db)

	open := seedStudio(t, db, "acik", "trial", nil)
	paid := seedStudio(t, db, "odenmis", "pro", ptr(commsNow.Add(30*24*time.Hour)))
	lapsed := seedStudio(t, db, "bitmis", "pro", ptr(commsNow.Add(-24*time.Hour)))

	cases := []struct {
		filter string
		want   []string
	}{
		{"", []string{open.Email, paid.Email, lapsed.Email}},
		{db_models.RecipientsAll, []string{open.Email, paid.Email, lapsed.Email}},
		{db_models.RecipientsActive, []string{open.Email, paid.Email}},
		{db_models.RecipientsInactive, []string{lapsed.Email}},
		{"pro", []string{paid.Email, lapsed.Email}},
		{"enterprise", []string{}},
	}
	for _, tc := range cases {
		t.Run("filter "+tc.filter, func(t *testing.T) {
			got, err := accounts.ListPhotographers(ctx, recipientFilter(tc.filter, commsNow))
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, emailsOf(got))
		})
	}
}

func TestCommunicationService_SendBulkEmail(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	db, svc, mailer := newCommunicationService(t, zap.New(core))
	ctx := context.Background()

	first := seedStudio(t, db, "birinci", "pro", nil)
	second := seedStudio(t, db, "ikinci", "pro", nil)
	broken := seedStudio(t, db, "ucuncu", "pro", nil)
	seedStudio(t, db, "deneme", "trial", nil)
	mailer.reject[broken.Email] = true

	res, err := svc.SendBulkEmail(ctx, superadmin, request_models.BulkEmailRequest{
		Subject: "Bakım  duyurusu",
		Message: "Cumartesi 02:00'de <b>bakım</b> var.",
		Filter:  "pro",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 3, res.Total)

	require.Len(t, mailer.sent, 2)
	assert.ElementsMatch(t, []string{first.Email, second.Email}, []string{mailer.sent[0].To, mailer.sent[1].To})
	m := mailer.sent[0]
	assert.Equal(t, "Bakım duyurusu", m.Subject)
	assert.Contains(t, m.HTML, "&lt;b&gt;bakım&lt;/b&gt;")
	assert.Contains(t, m.HTML, "https://panel.example.com/login")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "bulk email delivery failed", logs.All()[0].Message)
	assert.Equal(t, broken.ID.String(), logs.All()[0].ContextMap()["photographer_id"])

	t.Run("outcome is persisted per recipient", func(t *testing.T) {
		var saved db_models.CommunicationLog
		require.NoError(t, db.First(&saved, "id = ?", res.LogID).Error)
		assert.Equal(t, db_models.DeliveryPartial, saved.Status)
		assert.Equal(t, "pro", saved.Filter)
		assert.Equal(t, 3, saved.RecipientCount)
		assert.Equal(t, superadmin.UserID, saved.SentBy)
		assert.True(t, commsNow.Equal(saved.SentAt))

		status := map[uuid.UUID]db_models.DeliveryStatus{}
		for _, r := range saved.Recipients {
			status[r.PhotographerID] = r.Status
		}
		assert.Equal(t, map[uuid.UUID]db_models.DeliveryStatus{
			first.ID:  db_models.DeliverySent,
			second.ID: db_models.DeliverySent,
			broken.ID: db_models.DeliveryFailed,
		}, status)
	})

	t.Run("html content replaces the layout", func(t *testing.T) {
		mailer.sent = nil
		res, err := svc.SendBulkEmail(ctx, superadmin, request_models.BulkEmailRequest{
			Subject:     "Yeni özellik",
			Message:     "Albüm paylaşımı yayında.",
			HTMLContent: "<h1>Yeni</h1>",
			Filter:      "trial",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Sent)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "<h1>Yeni</h1>", mailer.sent[0].HTML)
		assert.Contains(t, mailer.sent[0].Text, "Albüm paylaşımı yayında.")
	})

	t.Run("every delivery failing marks the log failed", func(t *testing.T) {
		mailer.reject[first.Email] = true
		mailer.reject[second.Email] = true
		res, err := svc.SendBulkEmail(ctx, superadmin, request_models.BulkEmailRequest{Subject: "a", Message: "b", Filter: "pro"})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Sent)

		var saved db_models.CommunicationLog
		require.NoError(t, db.First(&saved, "id = ?", res.LogID).Error)
		assert.Equal(t, db_models.DeliveryFailed, saved.Status)
	})

	t.Run("rejections", func(t *testing.T) {
		_, err := svc.SendBulkEmail(ctx, superadmin, request_models.BulkEmailRequest{Subject: " ", Message: ""})
		require.True(t, utils.IsValidation(err))
		assert.ErrorContains(t, err, "message: Mesaj zorunludur; subject: Konu zorunludur")

		_, err = svc.SendBulkEmail(ctx, superadmin, request_models.BulkEmailRequest{Subject: "a", Message: "b", Filter: "enterprise"})
		assert.ErrorIs(t, err, utils.ErrNoRecipients)

		_, err = svc.SendBulkEmail(ctx, adminActor(first), request_models.BulkEmailRequest{Subject: "a", Message: "b"})
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})
}

func TestCommunicationService_History(t *testing.T) {
	db, svc, _ := newCommunicationService(t, zap.NewNop())
	ctx := context.Background()
	repo := repositories.NewCommunicationLogRepository(db)

	for i := 0; i < communicationHistoryLimit+2; i++ {
		require.NoError(t, repo.Create(ctx, &db_models.CommunicationLog{
			Type:    db_models.CommunicationEmail,
			Subject: "duyuru",
			Message: "mesaj",
			SentBy:  superadmin.UserID,
			SentAt:  commsNow.Add(time.Duration(i) * time.Minute),
			Status:  db_models.DeliverySent,
		}))
	}

	logs, err := svc.History(ctx, superadmin, "")
	require.NoError(t, err)
	require.Len(t, logs, communicationHistoryLimit)
	assert.True(t, logs[0].SentAt.After(logs[1].SentAt), "newest first")
	assert.True(t, commsNow.Add(time.Duration(communicationHistoryLimit+1)*time.Minute).Equal(logs[0].SentAt))

	logs, err = svc.History(ctx, superadmin, "sms")
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)

	_, err = svc.History(ctx, Actor{UserID: uuid.New(), Role: db_models.RoleAdmin}, "")
	assert.ErrorIs(t, err, utils.ErrForbidden)
}
