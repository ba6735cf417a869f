package impl

import (
	"context"

	"brewhub/internal/domain/entity"
	"brewhub/internal/store"
	"brewhub/internal/usecase"
)

type activityService struct {
	activities *store.ActivityLog
}

// NewActivityService creates a new activity service instance
func NewActivityService(activities *store.ActivityLog) usecase.ActivityUsecase {
	return &activityService{activities: activities}
}

func (s *activityService) Activities(_ context.Context) ([]entity.Activity, error) {
	return s.activities.Activities(), nil
}

func (s *activityService) Record(ctx context.Context, title, description string) (*entity.Activity, error) {
	activity, err := s.activities.Record(ctx, title, description)
	if err != nil {
		return nil, wrapStorage(err, "record activity")
	}

	return &activity, nil
}
