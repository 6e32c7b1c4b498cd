package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/adeyemi-o/hotel-management/internal/models"
	"github.com/adeyemi-o/hotel-management/internal/repository"
)

type ActivityService interface {
	// Record appends an audit entry. Failures are logged, never returned:
	// auditing must not fail the operation being audited.
	Record(ctx context.Context, entityType string, entityID uint, action models.ActivityAction, staffID *uint, details, ip string)
	List(ctx context.Context, filter repository.ActivityFilter) ([]models.ActivityLog, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) Record(ctx context.Context, entityType string, entityID uint, action models.ActivityAction, staffID *uint, details, ip string) {
	entry := &models.ActivityLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		StaffID:    staffID,
		Details:    details,
		IP:         ip,
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"entity": entityType,
			"action": action,
		}).Warn("failed to write activity log")
	}
}

func (s *activityService) List(ctx context.Context, filter repository.ActivityFilter) ([]models.ActivityLog, error) {
	return s.activityRepo.List(ctx, filter)
}
