package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, customer *models.Customer) error
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.Customer, error)
	List(ctx context.Context, search string, limit, offset int) ([]models.Customer, error)
	FindBookings(ctx context.Context, customerID uint) ([]models.Booking, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, tx *gorm.DB, customer *models.Customer) error {
	return tx.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByEmail matches case-insensitively; callers lowercase before writes but
// the query does not depend on that.
func (r *customerRepository) FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := tx.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, search string, limit, offset int) ([]models.Customer, error) {
	q := r.db.WithContext(ctx)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var customers []models.Customer
	if err := q.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) FindBookings(ctx context.Context, customerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
