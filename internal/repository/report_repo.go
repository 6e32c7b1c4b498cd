package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

type DayCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

type StatusCount struct {
	Status models.BookingStatus `json:"status"`
	Count  int64                `json:"count"`
}

type GroupBreakdown struct {
	Key     string  `json:"key"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type CustomerRevenue struct {
	CustomerID uint    `json:"customer_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Bookings   int64   `json:"bookings"`
	Revenue    float64 `json:"revenue"`
}

// ReportRepository serves the read-side aggregation queries. It has no write
// paths.
type ReportRepository interface {
	SumPaidRevenue(ctx context.Context, from, to time.Time) (float64, error)
	BookingsPerDay(ctx context.Context, from, to time.Time) ([]DayCount, error)
	CountByStatus(ctx context.Context, from, to time.Time) ([]StatusCount, error)
	RoomTypeBreakdown(ctx context.Context, from, to time.Time) ([]GroupBreakdown, error)
	SourceBreakdown(ctx context.Context, from, to time.Time) ([]GroupBreakdown, error)
	TopCustomers(ctx context.Context, limit int) ([]CustomerRevenue, error)
	StaysOverlapping(ctx context.Context, from, to time.Time) ([]models.Booking, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) SumPaidRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("payment_status = ?", models.PaymentPaid).
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *reportRepository) BookingsPerDay(ctx context.Context, from, to time.Time) ([]DayCount, error) {
	var rows []DayCount
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("status <> ?", models.StatusCancelled).
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) CountByStatus(ctx context.Context, from, to time.Time) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) RoomTypeBreakdown(ctx context.Context, from, to time.Time) ([]GroupBreakdown, error) {
	var rows []GroupBreakdown
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("rooms.type AS key, COUNT(*) AS count, COALESCE(SUM(bookings.total_amount), 0) AS revenue").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("bookings.status <> ?", models.StatusCancelled).
		Where("bookings.created_at >= ? AND bookings.created_at < ?", from, to).
		Group("rooms.type").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) SourceBreakdown(ctx context.Context, from, to time.Time) ([]GroupBreakdown, error) {
	var rows []GroupBreakdown
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("source AS key, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("status <> ?", models.StatusCancelled).
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("source").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TopCustomers(ctx context.Context, limit int) ([]CustomerRevenue, error) {
	var rows []CustomerRevenue
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("customers.id AS customer_id, customers.name, customers.email, COUNT(*) AS bookings, COALESCE(SUM(bookings.total_amount), 0) AS revenue").
		Joins("JOIN customers ON customers.id = bookings.customer_id").
		Where("bookings.payment_status = ?", models.PaymentPaid).
		Group("customers.id, customers.name, customers.email").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// StaysOverlapping returns non-cancelled bookings whose stay intersects
// [from, to); the monthly occupancy computation clips these to the window.
func (r *reportRepository) StaysOverlapping(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("status <> ?", models.StatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", to, from).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
