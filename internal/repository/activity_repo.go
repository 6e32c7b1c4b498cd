package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

type ActivityFilter struct {
	EntityType string
	StaffID    uint
	Limit      int
	Offset     int
}

// ActivityRepository is append-only: logs are written once and never
// updated or removed.
type ActivityRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, filter ActivityFilter) ([]models.ActivityLog, error)
	CountByStaff(ctx context.Context, staffID uint) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityRepository) List(ctx context.Context, filter ActivityFilter) ([]models.ActivityLog, error) {
	q := r.db.WithContext(ctx).Preload("Staff")
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.StaffID > 0 {
		q = q.Where("staff_id = ?", filter.StaffID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var logs []models.ActivityLog
	if err := q.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *activityRepository) CountByStaff(ctx context.Context, staffID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Where("staff_id = ?", staffID).
		Count(&count).Error
	return count, err
}
