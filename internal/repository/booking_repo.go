package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

// BookingFilter narrows admin listings. Zero values mean "no filter".
type BookingFilter struct {
	Status        models.BookingStatus
	PaymentStatus models.PaymentStatus
	// Search matches booking number, customer name/email or room number.
	Search string
	Limit  int
	Offset int
}

type BookingRepository interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	FindByNumber(ctx context.Context, number string) (*models.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
	FindActiveOverlapping(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	CountOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error)
	CountActiveForRoom(ctx context.Context, roomID uint) (int64, error)
	CountCreatedBy(ctx context.Context, staffID uint) (int64, error)
	NextSequence(ctx context.Context, tx *gorm.DB, day string) (int, error)
	Updates(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").Preload("Customer").
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate acquires a row-level lock on the booking within the given transaction.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).
		Clauses(forUpdate()).
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByNumber(ctx context.Context, number string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Room").Preload("Customer").
		Where("booking_number = ?", number).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Room").Preload("Customer").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN customers ON customers.id = bookings.customer_id")

	if filter.Status != "" {
		q = q.Where("bookings.status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("bookings.payment_status = ?", filter.PaymentStatus)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where(
			"bookings.booking_number ILIKE ? OR customers.name ILIKE ? OR customers.email ILIKE ? OR rooms.room_number ILIKE ?",
			like, like, like, like,
		)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var bookings []models.Booking
	if err := q.Order("bookings.created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindActiveOverlapping returns CONFIRMED/CHECKED_IN bookings whose stay
// intersects [from, to); used for the calendar view.
func (r *bookingRepository) FindActiveOverlapping(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").Preload("Customer").
		Where("status IN ?", []models.BookingStatus{models.StatusConfirmed, models.StatusCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", to, from).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountOverlapping counts active bookings for the room whose half-open
// [check_in, check_out) window intersects the requested one. A single
// in < out comparison pair covers the partial-left, partial-right and
// fully-contained shapes. excludeID skips the booking's own row on updates.
func (r *bookingRepository) CountOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	db := tx
	if db == nil {
		// Read-only availability checks run outside any transaction.
		db = r.db
	}
	q := db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []models.BookingStatus{models.StatusConfirmed, models.StatusCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountActiveForRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", roomID,
			[]models.BookingStatus{models.StatusConfirmed, models.StatusCheckedIn}).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountCreatedBy(ctx context.Context, staffID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("created_by_id = ?", staffID).
		Count(&count).Error
	return count, err
}

// NextSequence bumps the per-day booking counter and returns the new value.
// The upsert is atomic, so concurrent creations on the same day cannot
// collide on a sequence number.
func (r *bookingRepository) NextSequence(ctx context.Context, tx *gorm.DB, day string) (int, error) {
	var seq int
	err := tx.WithContext(ctx).Raw(`
		INSERT INTO booking_counters (day, seq) VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET seq = booking_counters.seq + 1
		RETURNING seq
	`, day).Scan(&seq).Error
	return seq, err
}

func (r *bookingRepository) Updates(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id uint, status models.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}
