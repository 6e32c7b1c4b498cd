package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	FindByID(ctx context.Context, id uint) (*models.Staff, error)
	FindByEmail(ctx context.Context, email string) (*models.Staff, error)
	FindAll(ctx context.Context) ([]models.Staff, error)
	Updates(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepository) FindByID(ctx context.Context, id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindAll(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepository) Updates(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Staff{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *staffRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Staff{}, id).Error
}
