package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/repository"
)

var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrStaffEmailTaken    = errors.New("staff email already exists")
	ErrStaffHasRecords    = errors.New("staff member has bookings or activity logs; deactivate instead")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStaffInactive      = errors.New("staff account is deactivated")
)

type StaffInput struct {
	Name     string
	Email    string
	Role     models.StaffRole
	Password string
}

type StaffService interface {
	CreateStaff(ctx context.Context, input StaffInput) (*models.Staff, error)
	GetStaff(ctx context.Context, id uint) (*models.Staff, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)
	UpdateStaff(ctx context.Context, id uint, fields map[string]any) (*models.Staff, error)
	Deactivate(ctx context.Context, id uint) error
	DeleteStaff(ctx context.Context, id uint) error
	VerifyCredentials(ctx context.Context, email, password string) (*models.Staff, error)
}

type staffService struct {
	staffRepo    repository.StaffRepository
	bookingRepo  repository.BookingRepository
	activityRepo repository.ActivityRepository
}

func NewStaffService(
	staffRepo repository.StaffRepository,
	bookingRepo repository.BookingRepository,
	activityRepo repository.ActivityRepository,
) StaffService {
	return &staffService{
		staffRepo:    staffRepo,
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
	}
}

func (s *staffService) CreateStaff(ctx context.Context, input StaffInput) (*models.Staff, error) {
	if _, err := s.staffRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrStaffEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &models.Staff{
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) GetStaff(ctx context.Context, id uint) (*models.Staff, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

func (s *staffService) ListStaff(ctx context.Context) ([]models.Staff, error) {
	return s.staffRepo.FindAll(ctx)
}

func (s *staffService) UpdateStaff(ctx context.Context, id uint, fields map[string]any) (*models.Staff, error) {
	if _, err := s.staffRepo.FindByID(ctx, id); err != nil {
		return nil, ErrStaffNotFound
	}

	// Passwords arrive plain and leave hashed.
	if pw, ok := fields["password"]; ok {
		delete(fields, "password")
		hash, err := bcrypt.GenerateFromPassword([]byte(pw.(string)), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = string(hash)
	}

	if err := s.staffRepo.Updates(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.staffRepo.FindByID(ctx, id)
}

func (s *staffService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.staffRepo.FindByID(ctx, id); err != nil {
		return ErrStaffNotFound
	}
	return s.staffRepo.Updates(ctx, id, map[string]any{"is_active": false})
}

// DeleteStaff hard-deletes only when nothing references the staff member;
// otherwise the caller should deactivate.
func (s *staffService) DeleteStaff(ctx context.Context, id uint) error {
	if _, err := s.staffRepo.FindByID(ctx, id); err != nil {
		return ErrStaffNotFound
	}

	bookings, err := s.bookingRepo.CountCreatedBy(ctx, id)
	if err != nil {
		return err
	}
	logs, err := s.activityRepo.CountByStaff(ctx, id)
	if err != nil {
		return err
	}
	if bookings > 0 || logs > 0 {
		return ErrStaffHasRecords
	}
	return s.staffRepo.Delete(ctx, id)
}

func (s *staffService) VerifyCredentials(ctx context.Context, email, password string) (*models.Staff, error) {
	staff, err := s.staffRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !staff.IsActive {
		return nil, ErrStaffInactive
	}
	return staff, nil
}
