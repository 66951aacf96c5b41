package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "fotopanel/internal/models/db_models"
)

// DashboardRepository holds the tenant-scoped reads behind the admin
// dashboard. Every method filters on photographerID.
type DashboardRepository interface {
	// Counts
	CountCustomersByAppointmentStatus(ctx context.Context, photographerID uuid.UUID, statuses []dbm.AppointmentStatus) (int64, error)
	CountCustomersByStatus(ctx context.Context, photographerID uuid.UUID, status dbm.CustomerStatus) (int64, error)
	CountShoots(ctx context.Context, photographerID uuid.UUID, start, end time.Time) (int64, error)
	SumRevenue(ctx context.Context, photographerID uuid.UUID, start, end time.Time) (float64, error)
	TotalRevenue(ctx context.Context, photographerID uuid.UUID) (float64, error)
	ShootTypeMix(ctx context.Context, photographerID uuid.UUID) ([]TypeCountRow, error)

	// Lists
	ListAlbumCustomers(ctx context.Context, photographerID uuid.UUID) ([]dbm.Customer, error)
	ListShootsBetween(ctx context.Context, photographerID uuid.UUID, start, end time.Time) ([]dbm.Shoot, error)
	ListUpcomingShoots(ctx context.Context, photographerID uuid.UUID, from time.Time, limit int) ([]dbm.Shoot, error)
	RecentSelectionApprovals(ctx context.Context, photographerID uuid.UUID, limit int) ([]dbm.Customer, error)

	// Storage
	StorageUsage(ctx context.Context, photographerID uuid.UUID) (StorageRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type TypeCountRow struct {
	Type  dbm.ShootType `gorm:"column:type"`
	Count int64         `gorm:"column:count"`
}

type StorageRow struct {
	Used  int64 `gorm:"column:storage_usage"`
	Limit int64 `gorm:"column:storage_limit"`
}

func (r *dashboardRepository) tenant(ctx context.Context, photographerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Where("photographer_id = ?", photographerID)
}

// ---------- Counts ----------
func (r *dashboardRepository) CountCustomersByAppointmentStatus(ctx context.Context, photographerID uuid.UUID, statuses []dbm.AppointmentStatus) (int64, error) {
	var n int64
	err := r.tenant(ctx, photographerID).
		Model(&dbm.Customer{}).
		Where("appointment_status IN ?", statuses).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountCustomersByStatus(ctx context.Context, photographerID uuid.UUID, status dbm.CustomerStatus) (int64, error) {
	var n int64
	err := r.tenant(ctx, photographerID).
		Model(&dbm.Customer{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountShoots(ctx context.Context, photographerID uuid.UUID, start, end time.Time) (int64, error) {
	var n int64
	err := r.tenant(ctx, photographerID).
		Model(&dbm.Shoot{}).
		Where("date >= ? AND date < ?", start.UTC(), end.UTC()).
		Where("status <> ?", dbm.ShootCancelled).
		Count(&n).Error
	return n, err
}

// SumRevenue adds agreed prices of non-cancelled shoots in [start, end). NULL prices count as zero.
func (r *dashboardRepository) SumRevenue(ctx context.Context, photographerID uuid.UUID, start, end time.Time) (float64, error) {
	var sum float64
	err := r.tenant(ctx, photographerID).
		Model(&dbm.Shoot{}).
		Select("COALESCE(SUM(COALESCE(agreed_price, 0)), 0)").
		Where("date >= ? AND date < ?", start.UTC(), end.UTC()).
		Where("status <> ?", dbm.ShootCancelled).
		Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) TotalRevenue(ctx context.Context, photographerID uuid.UUID) (float64, error) {
	var sum float64
	err := r.tenant(ctx, photographerID).
		Model(&dbm.Shoot{}).
		Select("COALESCE(SUM(COALESCE(agreed_price, 0)), 0)").
		Where("status <> ?", dbm.ShootCancelled).
		Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) ShootTypeMix(ctx context.Context, photographerID uuid.UUID) ([]TypeCountRow, error) {
	var rows []TypeCountRow
	err := r.tenant(ctx, photographerID).
		Model(&dbm.Shoot{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// ---------- Lists ----------
func (r *dashboardRepository) ListAlbumCustomers(ctx context.Context, photographerID uuid.UUID) ([]dbm.Customer, error) {
	var rows []dbm.Customer
	err := r.tenant(ctx, photographerID).
		Select("id", "bride_name", "groom_name", "status", "appointment_status", "photos", "selected_photos", "updated_at").
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) ListShootsBetween(ctx context.Context, photographerID uuid.UUID, start, end time.Time) ([]dbm.Shoot, error) {
	var rows []dbm.Shoot
	err := r.tenant(ctx, photographerID).
		Preload("Customer").
		Where("date >= ? AND date < ?", start.UTC(), end.UTC()).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) ListUpcomingShoots(ctx context.Context, photographerID uuid.UUID, from time.Time, limit int) ([]dbm.Shoot, error) {
	var rows []dbm.Shoot
	err := r.tenant(ctx, photographerID).
		Preload("Customer").
		Where("date >= ?", from.UTC()).
		Where("status = ?", dbm.ShootPlanned).
		Order("date ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) RecentSelectionApprovals(ctx context.Context, photographerID uuid.UUID, limit int) ([]dbm.Customer, error) {
	var rows []dbm.Customer
	err := r.tenant(ctx, photographerID).
		Select("id", "bride_name", "groom_name", "selection_approved_at").
		Where("selection_approved_at IS NOT NULL").
		Order("selection_approved_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// ---------- Storage ----------
func (r *dashboardRepository) StorageUsage(ctx context.Context, photographerID uuid.UUID) (StorageRow, error) {
	var row StorageRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Select("storage_usage", "storage_limit").
		Where("id = ?", photographerID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return StorageRow{Limit: dbm.DefaultStorageLimit}, nil
	}
	return row, err
}
