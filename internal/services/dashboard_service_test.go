package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbm "fotopanel/internal/models/db_models"
	resp "fotopanel/internal/models/response_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

func seedShoot(t *testing.T, db *gorm.DB, c *dbm.Customer, date time.Time, typ dbm.ShootType, status dbm.ShootStatus, price *float64) *dbm.Shoot {
	t.Helper()
	sh := &dbm.Shoot{
		PhotographerID: c.PhotographerID,
		CustomerID:     c.ID,
		Date:           date,
		Type:           typ,
		Status:         status,
		AgreedPrice:    price,
	}
	require.NoError(t, db.Create(sh).Error)
	return sh
}

func newDashboardFixture(t *testing.T, now time.Time) (*gorm.DB, *dashboardService) {
	t.Helper()
	db := newTestDB(t)
	svc := NewDashboardService(repositories.NewDashboardRepository(db), testConfig()).(*dashboardService)
	svc.now = func() time.Time { return now }
	return db, svc
}

func TestDashboard_BuildForMonth(t *testing.T) {
	now := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	db, svc := newDashboardFixture(t, now)
	ctx := context.Background()

	studio := seedPhotographer(t, db, "isikstudyo")
	other := seedPhotographer(t, db, "baskastudyo")

	uploaded := seedCustomer(t, db, studio.ID, func(c *dbm.Customer) {
		c.AppointmentStatus = dbm.AppointmentPhotosUploaded
		c.Photos = []dbm.Photo{
			{URL: "https://cdn/1.jpg", UploadedAt: now.Add(-2 * time.Hour)},
			{URL: "https://cdn/2.jpg", UploadedAt: now.Add(-time.Hour)},
		}
		c.SelectedPhotos = []dbm.SelectedPhoto{{URL: "https://cdn/1.jpg", Type: dbm.SelectionAlbum}}
	})
	seedCustomer(t, db, studio.ID, nil)
	seedCustomer(t, db, studio.ID, func(c *dbm.Customer) { c.AppointmentStatus = dbm.AppointmentShot })
	seedCustomer(t, db, studio.ID, func(c *dbm.Customer) {
		c.Status = dbm.CustomerArchived
		c.AppointmentStatus = dbm.AppointmentDelivered
	})
	foreign := seedCustomer(t, db, other.ID, func(c *dbm.Customer) { c.AppointmentStatus = dbm.AppointmentPhotosUploaded })

	seedShoot(t, db, uploaded, time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC), dbm.ShootWedding, dbm.ShootCompleted, ptr(1000.0))
	seedShoot(t, db, uploaded, time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC), dbm.ShootSaveTheDate, dbm.ShootPlanned, ptr(500.0))
	seedShoot(t, db, uploaded, time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC), dbm.ShootEngagement, dbm.ShootPlanned, nil)
	seedShoot(t, db, uploaded, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), dbm.ShootPersonal, dbm.ShootCancelled, ptr(9999.0))
	seedShoot(t, db, uploaded, time.Date(2025, 4, 8, 9, 0, 0, 0, time.UTC), dbm.ShootWedding, dbm.ShootCompleted, ptr(200.0))
	seedShoot(t, db, foreign, time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC), dbm.ShootWedding, dbm.ShootPlanned, ptr(7777.0))

	stats, err := svc.BuildDashboard(ctx, adminActor(studio), DashboardQuery{})
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Period.Month)
	assert.Equal(t, 2025, stats.Period.Year)

	c := stats.Counts
	assert.EqualValues(t, 1, c.PendingSelection)
	assert.EqualValues(t, 2, c.PendingUploads)
	assert.EqualValues(t, 3, c.ActiveCustomers)
	assert.EqualValues(t, 3, c.Albums)
	assert.EqualValues(t, 1, c.DeletedAlbums)
	assert.EqualValues(t, 3, c.ActiveShootsMonth)
	assert.EqualValues(t, 2, c.UpcomingShoots)
	assert.EqualValues(t, 3, c.Photos)
	assert.InDelta(t, 1700.0, c.TotalRevenue, 0.001)
	assert.Equal(t, "₺", stats.Earnings.Currency)

	require.Len(t, stats.RevenueChart, 6)
	assert.Equal(t, 1, stats.RevenueChart[0].Month)
	last := stats.RevenueChart[5]
	assert.Equal(t, 6, last.Month)
	assert.InDelta(t, 1500.0, last.Value, 0.001)
	assert.EqualValues(t, 3, last.Shoots)
	assert.Equal(t, "Nis", stats.RevenueChart[3].Name)
	assert.InDelta(t, 200.0, stats.RevenueChart[3].Value, 0.001)

	assert.Equal(t, []int{3, 14, 20}, stats.Calendar.DaysWithEvents)
	require.Len(t, stats.Calendar.Days, 3)
	assert.Equal(t, "Ayşe & Burak", stats.Calendar.Days[0].Events[0].CustomerName)

	require.Len(t, stats.TodaySchedule, 1)
	assert.Equal(t, "15:00", stats.TodaySchedule[0].Time)
	assert.Equal(t, "Belirtilmemiş", stats.TodaySchedule[0].Location)
	assert.Equal(t, "Save The Date", stats.TodaySchedule[0].Type)

	require.Len(t, stats.UpcomingShoots, 2)
	assert.Equal(t, 0, stats.UpcomingShoots[0].DaysLeft)
	assert.Equal(t, 6, stats.UpcomingShoots[1].DaysLeft)
	assert.Equal(t, "Nişan", stats.UpcomingShoots[1].TypeLabel)

	require.NotEmpty(t, stats.ShootDistribution)
	assert.Equal(t, string(dbm.ShootWedding), stats.ShootDistribution[0].Type)
	assert.EqualValues(t, 2, stats.ShootDistribution[0].Count)

	require.Len(t, stats.ActiveAlbums, 1)
	assert.Equal(t, uploaded.ID, stats.ActiveAlbums[0].CustomerID)
	assert.Equal(t, 2, stats.ActiveAlbums[0].PhotoCount)
	assert.False(t, stats.ActiveAlbums[0].HasSelection)

	assert.Equal(t, []int64{1, 1, 1, 0}, weekCounts(stats.MonthlyActivity))

	t.Run("pending counts follow the workflow", func(t *testing.T) {
		require.NoError(t, db.Model(&dbm.Customer{}).Where("id = ?", uploaded.ID).
			Update("appointment_status", dbm.AppointmentPhotosSelected).Error)

		stats, err := svc.BuildDashboard(ctx, adminActor(studio), DashboardQuery{})
		require.NoError(t, err)
		assert.EqualValues(t, 0, stats.Counts.PendingSelection)
		assert.EqualValues(t, 2, stats.Counts.PendingUploads)
		assert.True(t, stats.ActiveAlbums[0].HasSelection)
	})

	t.Run("other tenant sees only its own data", func(t *testing.T) {
		stats, err := svc.BuildDashboard(ctx, adminActor(other), DashboardQuery{Month: 6, Year: 2025})
		require.NoError(t, err)
		assert.EqualValues(t, 1, stats.Counts.PendingSelection)
		assert.EqualValues(t, 0, stats.Counts.PendingUploads)
		assert.InDelta(t, 7777.0, stats.Counts.TotalRevenue, 0.001)
		assert.Equal(t, []int{5}, stats.Calendar.DaysWithEvents)
	})
}

func weekCounts(weeks []resp.WeekActivity) []int64 {
	out := make([]int64, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, w.Count)
	}
	return out
}

func TestDashboard_MonthBoundariesFollowTimezone(t *testing.T) {
	now := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	db, svc := newDashboardFixture(t, now)
	studio := seedPhotographer(t, db, "isikstudyo")
	c := seedCustomer(t, db, studio.ID, nil)

	// 31 May 22:30 UTC is already 1 June in Istanbul.
	seedShoot(t, db, c, time.Date(2025, 5, 31, 22, 30, 0, 0, time.UTC), dbm.ShootWedding, dbm.ShootCompleted, ptr(100.0))

	istanbul, err := utils.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	inUTC, err := svc.BuildDashboard(context.Background(), adminActor(studio), DashboardQuery{Month: 6, Year: 2025})
	require.NoError(t, err)
	assert.EqualValues(t, 0, inUTC.Counts.ActiveShootsMonth)

	local, err := svc.BuildDashboard(context.Background(), adminActor(studio), DashboardQuery{Month: 6, Year: 2025, Location: istanbul})
	require.NoError(t, err)
	assert.EqualValues(t, 1, local.Counts.ActiveShootsMonth)
	assert.Equal(t, []int{1}, local.Calendar.DaysWithEvents)
	assert.Equal(t, istanbul.String(), local.Period.Timezone)
}

func TestDashboard_Rejects(t *testing.T) {
	_, svc := newDashboardFixture(t, time.Now())

	_, err := svc.BuildDashboard(context.Background(), Actor{UserID: uuid.New(), Role: dbm.RoleCouple}, DashboardQuery{})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.BuildDashboard(context.Background(), Actor{UserID: uuid.New(), Role: dbm.RoleAdmin}, DashboardQuery{Month: 13})
	assert.True(t, utils.IsValidation(err))

	_, err = svc.BuildDashboard(context.Background(), Actor{UserID: uuid.New(), Role: dbm.RoleAdmin}, DashboardQuery{Month: 1, Year: 1999})
	assert.True(t, utils.IsValidation(err))
}

func TestWeeklyActivityBuckets(t *testing.T) {
	day := func(d int) dbm.Shoot {
		return dbm.Shoot{Date: time.Date(2025, 3, d, 12, 0, 0, 0, time.UTC), Status: dbm.ShootPlanned}
	}
	shoots := []dbm.Shoot{day(1), day(7), day(8), day(21), day(22), day(31)}
	cancelled := day(2)
	cancelled.Status = dbm.ShootCancelled
	shoots = append(shoots, cancelled)

	assert.Equal(t, []int64{2, 1, 1, 2}, weekCounts(weeklyActivity(shoots, time.UTC)))
}
