package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByReference(ctx context.Context, reference string) (*models.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uint) ([]models.Payment, error)
	MarkPaid(ctx context.Context, id uint, gatewayRef string, paidAt time.Time) error
	MarkFailed(ctx context.Context, id uint) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByReference(ctx context.Context, reference string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Where("reference = ?", reference).
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, id uint, gatewayRef string, paidAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      models.PaymentPaid,
			"gateway_ref": gatewayRef,
			"paid_at":     paidAt,
		}).Error
}

func (r *paymentRepository) MarkFailed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ?", id).
		Update("status", models.PaymentFailed).Error
}
