package services

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"fotopanel/internal/config"
	dbm "fotopanel/internal/models/db_models"
	resp "fotopanel/internal/models/response_models"
	"fotopanel/internal/repositories"
	"fotopanel/pkg/utils"
)

const (
	trendMonths        = 6
	upcomingListSize   = 5
	recentActivitySize = 10
	activeAlbumsSize   = 10
	noLocation         = "Belirtilmemiş"
	defaultDuration    = "2h"
	currencyTRY        = "₺"
)

// albumStatuses are the appointment stages where the gallery has photos.
var albumStatuses = map[dbm.AppointmentStatus]bool{
	dbm.AppointmentPhotosUploaded: true,
	dbm.AppointmentPhotosSelected: true,
	dbm.AppointmentAlbumPending:   true,
	dbm.AppointmentDelivered:      true,
}

var selectionDoneStatuses = map[dbm.AppointmentStatus]bool{
	dbm.AppointmentPhotosSelected: true,
	dbm.AppointmentAlbumPending:   true,
	dbm.AppointmentDelivered:      true,
}

// DashboardQuery selects the month to report on. Zero Month/Year mean the
// current month; a nil Location means the configured dashboard timezone.
type DashboardQuery struct {
	Month    int
	Year     int
	Location *time.Location
}

type DashboardService interface {
	BuildDashboard(ctx context.Context, actor Actor, q DashboardQuery) (*resp.DashboardStats, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	loc  *time.Location
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository, cfg *config.Config) DashboardService {
	loc := cfg.DashboardLocation
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardService{repo: repo, loc: loc, now: time.Now}
}

// normalizeQuery fills defaults and rejects out-of-range values.
func (s *dashboardService) normalizeQuery(q DashboardQuery, now time.Time) (DashboardQuery, error) {
	if q.Location == nil {
		q.Location = s.loc
	}
	local := now.In(q.Location)
	if q.Month == 0 {
		q.Month = int(local.Month())
	}
	if q.Year == 0 {
		q.Year = local.Year()
	}

	verr := utils.NewValidationError()
	if q.Month < 1 || q.Month > 12 {
		verr.Add("month", "Ay 1 ile 12 arasında olmalıdır")
	}
	if q.Year < 2000 || q.Year > 2100 {
		verr.Add("year", "Geçersiz yıl")
	}
	return q, verr.OrNil()
}

func (s *dashboardService) BuildDashboard(ctx context.Context, actor Actor, q DashboardQuery) (*resp.DashboardStats, error) {
	if !actor.IsAdmin() {
		return nil, utils.ErrForbidden
	}
	now := s.now()
	q, err := s.normalizeQuery(q, now)
	if err != nil {
		return nil, err
	}

	pid := actor.UserID
	loc := q.Location
	month := time.Month(q.Month)
	monthStart, monthEnd := utils.MonthRange(q.Year, month, loc)

	out := &resp.DashboardStats{
		Period: resp.DashboardPeriod{Month: q.Month, Year: q.Year, Timezone: loc.String()},
	}

	// ---------- Storage ----------
	storage, err := s.repo.StorageUsage(ctx, pid)
	if err != nil {
		return nil, dbErr(err)
	}
	out.Storage = resp.StorageStats{Used: storage.Used, Limit: storage.Limit}
	if out.Storage.Limit == 0 {
		out.Storage.Limit = dbm.DefaultStorageLimit
	}

	// ---------- Counts ----------
	if err := s.fillCounts(ctx, pid, monthStart, monthEnd, &out.Counts); err != nil {
		return nil, err
	}
	out.Earnings = resp.Earnings{Total: out.Counts.TotalRevenue, Currency: currencyTRY}

	// ---------- Revenue trend ----------
	for i := trendMonths - 1; i >= 0; i-- {
		start, end := utils.MonthRange(q.Year, month-time.Month(i), loc)
		revenue, err := s.repo.SumRevenue(ctx, pid, start, end)
		if err != nil {
			return nil, dbErr(err)
		}
		shoots, err := s.repo.CountShoots(ctx, pid, start, end)
		if err != nil {
			return nil, dbErr(err)
		}
		out.RevenueChart = append(out.RevenueChart, resp.RevenuePoint{
			Name:   utils.ShortMonthTR(start.Month()),
			Month:  int(start.Month()),
			Year:   start.Year(),
			Value:  revenue,
			Shoots: shoots,
		})
	}

	// ---------- Month calendar and weekly activity ----------
	monthShoots, err := s.repo.ListShootsBetween(ctx, pid, monthStart, monthEnd)
	if err != nil {
		return nil, dbErr(err)
	}
	out.Calendar = buildCalendar(monthShoots, month, q.Year, loc)
	out.MonthlyActivity = weeklyActivity(monthShoots, loc)

	// ---------- Today ----------
	dayStart, dayEnd := utils.DayRange(now, loc)
	todayShoots, err := s.repo.ListShootsBetween(ctx, pid, dayStart, dayEnd)
	if err != nil {
		return nil, dbErr(err)
	}
	out.TodaySchedule = todaySchedule(todayShoots, loc)

	// ---------- Upcoming ----------
	upcoming, err := s.repo.ListUpcomingShoots(ctx, pid, now, -1)
	if err != nil {
		return nil, dbErr(err)
	}
	out.Counts.UpcomingShoots = int64(len(upcoming))
	if len(upcoming) > upcomingListSize {
		upcoming = upcoming[:upcomingListSize]
	}
	out.UpcomingShoots = upcomingList(upcoming, dayStart, loc)

	// ---------- Distribution ----------
	mix, err := s.repo.ShootTypeMix(ctx, pid)
	if err != nil {
		return nil, dbErr(err)
	}
	out.ShootDistribution = make([]resp.ShootTypeCount, 0, len(mix))
	for _, m := range mix {
		out.ShootDistribution = append(out.ShootDistribution, resp.ShootTypeCount{
			Type:  string(m.Type),
			Label: m.Type.Label(),
			Count: m.Count,
		})
	}

	// ---------- Recent selection approvals ----------
	approvals, err := s.repo.RecentSelectionApprovals(ctx, pid, recentActivitySize)
	if err != nil {
		return nil, dbErr(err)
	}
	out.RecentActivities = make([]resp.RecentActivity, 0, len(approvals))
	for _, c := range approvals {
		if c.SelectionApprovedAt == nil {
			continue
		}
		out.RecentActivities = append(out.RecentActivities, resp.RecentActivity{
			CustomerID:          c.ID,
			CustomerName:        c.DisplayName(),
			BrideName:           c.BrideName,
			GroomName:           c.GroomName,
			SelectionApprovedAt: *c.SelectionApprovedAt,
		})
	}

	// ---------- Albums ----------
	customers, err := s.repo.ListAlbumCustomers(ctx, pid)
	if err != nil {
		return nil, dbErr(err)
	}
	for i := range customers {
		c := &customers[i]
		out.Counts.Photos += int64(len(c.Photos) + len(c.SelectedPhotos))
	}
	out.ActiveAlbums = activeAlbums(customers)

	return out, nil
}

func (s *dashboardService) fillCounts(ctx context.Context, pid uuid.UUID, monthStart, monthEnd time.Time, counts *resp.DashboardCounts) error {
	var err error

	if counts.ActiveCustomers, err = s.repo.CountCustomersByStatus(ctx, pid, dbm.CustomerActive); err != nil {
		return dbErr(err)
	}
	completed, err := s.repo.CountCustomersByStatus(ctx, pid, dbm.CustomerCompleted)
	if err != nil {
		return dbErr(err)
	}
	if counts.DeletedAlbums, err = s.repo.CountCustomersByStatus(ctx, pid, dbm.CustomerArchived); err != nil {
		return dbErr(err)
	}
	counts.Albums = counts.ActiveCustomers + completed

	if counts.PendingSelection, err = s.repo.CountCustomersByAppointmentStatus(ctx, pid, dbm.PendingSelectionStatuses); err != nil {
		return dbErr(err)
	}
	if counts.PendingUploads, err = s.repo.CountCustomersByAppointmentStatus(ctx, pid, dbm.PendingUploadStatuses); err != nil {
		return dbErr(err)
	}

	if counts.ActiveShootsMonth, err = s.repo.CountShoots(ctx, pid, monthStart, monthEnd); err != nil {
		return dbErr(err)
	}
	if counts.TotalRevenue, err = s.repo.TotalRevenue(ctx, pid); err != nil {
		return dbErr(err)
	}
	return nil
}

func customerName(c *dbm.Customer) string {
	if c == nil {
		return ""
	}
	return c.DisplayName()
}

func shootClock(sh *dbm.Shoot, loc *time.Location) string {
	if sh.Time != "" {
		return sh.Time
	}
	return utils.FormatClock(sh.Date, loc)
}

func buildCalendar(shoots []dbm.Shoot, month time.Month, year int, loc *time.Location) resp.Calendar {
	cal := resp.Calendar{
		CurrentMonth:   utils.ShortMonthTR(month) + " " + strconv.Itoa(year),
		DaysWithEvents: []int{},
		Days:           []resp.CalendarDay{},
	}

	byDay := map[int][]resp.CalendarEvent{}
	for i := range shoots {
		sh := &shoots[i]
		if sh.Status == dbm.ShootCancelled {
			continue
		}
		day := sh.Date.In(loc).Day()
		byDay[day] = append(byDay[day], resp.CalendarEvent{
			ShootID:      sh.ID,
			Time:         shootClock(sh, loc),
			CustomerName: customerName(sh.Customer),
			Type:         string(sh.Type),
		})
	}

	for day := range byDay {
		cal.DaysWithEvents = append(cal.DaysWithEvents, day)
	}
	sort.Ints(cal.DaysWithEvents)
	for _, day := range cal.DaysWithEvents {
		cal.Days = append(cal.Days, resp.CalendarDay{Day: day, Events: byDay[day]})
	}
	return cal
}

// weeklyActivity buckets the month into days 1-7, 8-14, 15-21 and 22-end.
func weeklyActivity(shoots []dbm.Shoot, loc *time.Location) []resp.WeekActivity {
	weeks := []resp.WeekActivity{{Name: "Hft 1"}, {Name: "Hft 2"}, {Name: "Hft 3"}, {Name: "Hft 4"}}
	for i := range shoots {
		if shoots[i].Status == dbm.ShootCancelled {
			continue
		}
		idx := (shoots[i].Date.In(loc).Day() - 1) / 7
		if idx > 3 {
			idx = 3
		}
		weeks[idx].Count++
	}
	return weeks
}

func todaySchedule(shoots []dbm.Shoot, loc *time.Location) []resp.ScheduleItem {
	out := make([]resp.ScheduleItem, 0, len(shoots))
	for i := range shoots {
		sh := &shoots[i]
		if sh.Status == dbm.ShootCancelled {
			continue
		}
		location := sh.Location
		if location == "" {
			location = noLocation
		}
		out = append(out, resp.ScheduleItem{
			Time:         shootClock(sh, loc),
			CustomerName: customerName(sh.Customer),
			Type:         sh.Type.Label(),
			Location:     location,
			Duration:     defaultDuration,
		})
	}
	return out
}

func upcomingList(shoots []dbm.Shoot, today time.Time, loc *time.Location) []resp.UpcomingShoot {
	out := make([]resp.UpcomingShoot, 0, len(shoots))
	for i := range shoots {
		sh := &shoots[i]
		item := resp.UpcomingShoot{
			ID:            sh.ID,
			CustomerID:    sh.CustomerID,
			CustomerName:  customerName(sh.Customer),
			Date:          sh.Date,
			Time:          shootClock(sh, loc),
			FormattedDate: utils.FormatDateTR(sh.Date, loc),
			Location:      sh.Location,
			Type:          string(sh.Type),
			TypeLabel:     sh.Type.Label(),
			DaysLeft:      daysBetween(today, sh.Date.In(loc)),
		}
		if sh.Customer != nil {
			item.BrideName = sh.Customer.BrideName
			item.GroomName = sh.Customer.GroomName
		}
		if item.Location == "" {
			item.Location = noLocation
		}
		out = append(out, item)
	}
	return out
}

// daysBetween counts calendar days from a to b, ignoring wall-clock time.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

func activeAlbums(customers []dbm.Customer) []resp.ActiveAlbum {
	out := []resp.ActiveAlbum{}
	for i := range customers {
		c := &customers[i]
		if c.Status == dbm.CustomerArchived || !albumStatuses[c.AppointmentStatus] || len(c.Photos) == 0 {
			continue
		}

		var latest *time.Time
		for _, p := range c.Photos {
			if !p.UploadedAt.IsZero() && (latest == nil || p.UploadedAt.After(*latest)) {
				t := p.UploadedAt
				latest = &t
			}
		}

		out = append(out, resp.ActiveAlbum{
			CustomerID:      c.ID,
			CustomerName:    c.DisplayName(),
			BrideName:       c.BrideName,
			GroomName:       c.GroomName,
			PhotoCount:      len(c.Photos),
			LatestPhotoDate: latest,
			HasSelection:    selectionDoneStatuses[c.AppointmentStatus],
			ThumbnailURL:    c.Photos[0].URL,
			Status:          string(c.AppointmentStatus),
			StatusLabel:     c.AppointmentStatus.Label(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LatestPhotoDate, out[j].LatestPhotoDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.After(*b)
	})
	if len(out) > activeAlbumsSize {
		out = out[:activeAlbumsSize]
	}
	return out
}
