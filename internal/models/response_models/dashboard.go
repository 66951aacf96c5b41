package response_models

import (
	"time"

	"github.com/google/uuid"
)

type DashboardPeriod struct {
	Month    int    `json:"month"`
	Year     int    `json:"year"`
	Timezone string `json:"timezone"`
}

type StorageStats struct {
	Used  int64 `json:"used"`
	Limit int64 `json:"limit"`
}

type DashboardCounts struct {
	Photos            int64   `json:"photos"`
	Albums            int64   `json:"albums"`
	DeletedAlbums     int64   `json:"deletedAlbums"`
	ActiveShootsMonth int64   `json:"activeShootsMonth"`
	UpcomingShoots    int64   `json:"upcomingShoots"`
	ActiveCustomers   int64   `json:"activeCustomers"`
	PendingSelection  int64   `json:"pendingSelection"`
	PendingUploads    int64   `json:"pendingUploads"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// RevenuePoint is one month of the trailing trend.
type RevenuePoint struct {
	Name   string  `json:"name"`
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	Value  float64 `json:"value"`
	Shoots int64   `json:"shoots"`
}

type RecentActivity struct {
	CustomerID          uuid.UUID `json:"customerId"`
	CustomerName        string    `json:"customerName"`
	BrideName           string    `json:"brideName"`
	GroomName           string    `json:"groomName"`
	SelectionApprovedAt time.Time `json:"selectionApprovedAt"`
}

type UpcomingShoot struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	BrideName     string    `json:"brideName"`
	GroomName     string    `json:"groomName"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	FormattedDate string    `json:"formattedDate"`
	Location      string    `json:"location"`
	Type          string    `json:"type"`
	TypeLabel     string    `json:"typeLabel"`
	DaysLeft      int       `json:"daysLeft"`
}

type ShootTypeCount struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type Earnings struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

type CalendarEvent struct {
	ShootID      uuid.UUID `json:"shootId"`
	Time         string    `json:"time"`
	CustomerName string    `json:"customerName"`
	Type         string    `json:"type"`
}

type CalendarDay struct {
	Day    int             `json:"day"`
	Events []CalendarEvent `json:"events"`
}

type Calendar struct {
	CurrentMonth   string        `json:"currentMonth"`
	DaysWithEvents []int         `json:"daysWithEvents"`
	Days           []CalendarDay `json:"days"`
}

type ScheduleItem struct {
	Time         string `json:"time"`
	CustomerName string `json:"customerName"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	Duration     string `json:"duration"`
}

type WeekActivity struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type ActiveAlbum struct {
	CustomerID      uuid.UUID  `json:"customerId"`
	CustomerName    string     `json:"customerName"`
	BrideName       string     `json:"brideName"`
	GroomName       string     `json:"groomName"`
	PhotoCount      int        `json:"photoCount"`
	LatestPhotoDate *time.Time `json:"latestPhotoDate,omitempty"`
	HasSelection    bool       `json:"hasSelection"`
	ThumbnailURL    string     `json:"thumbnailUrl"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"statusLabel"`
}

type DashboardStats struct {
	Period            DashboardPeriod  `json:"period"`
	Storage           StorageStats     `json:"storage"`
	Counts            DashboardCounts  `json:"counts"`
	RevenueChart      []RevenuePoint   `json:"revenueChart"`
	RecentActivities  []RecentActivity `json:"recentActivities"`
	UpcomingShoots    []UpcomingShoot  `json:"upcomingShoots"`
	ShootDistribution []ShootTypeCount `json:"shootDistribution"`
	Earnings          Earnings         `json:"earnings"`
	Calendar          Calendar         `json:"calendar"`
	TodaySchedule     []ScheduleItem   `json:"todaySchedule"`
	MonthlyActivity   []WeekActivity   `json:"monthlyActivity"`
	ActiveAlbums      []ActiveAlbum    `json:"activeAlbums"`
}
