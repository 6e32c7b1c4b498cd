package service

import (
	"context"
	"errors"

	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/repository"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerService interface {
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	ListCustomers(ctx context.Context, search string, limit, offset int) ([]models.Customer, error)
	BookingHistory(ctx context.Context, customerID uint) ([]models.Booking, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, search string, limit, offset int) ([]models.Customer, error) {
	return s.customerRepo.List(ctx, search, limit, offset)
}

func (s *customerService) BookingHistory(ctx context.Context, customerID uint) ([]models.Booking, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, ErrCustomerNotFound
	}
	return s.customerRepo.FindBookings(ctx, customerID)
}
