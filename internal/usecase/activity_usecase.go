package usecase

import (
	"context"

	"brewhub/internal/domain/entity"
)

// ActivityUsecase exposes the profile-page activity feed
type ActivityUsecase interface {
	// Activities lists recorded activities, newest first
	Activities(ctx context.Context) ([]entity.Activity, error)

	// Record prepends a new activity entry
	Record(ctx context.Context, title, description string) (*entity.Activity, error)
}
