package activity

import (
	"context"
	"fmt"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/logger"
	"github.com/nyxa-games/emberdeep/internal/repository"
)

// Feed limits
const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)

// Service records and serves the append-only activity feed
type Service interface {
	// Record appends an entry best-effort: a failed write is logged and
	// never fails the state change it documents.
	Record(ctx context.Context, profileID, activityType, description string)

	// Feed returns a profile's most recent entries, newest first
	Feed(ctx context.Context, profileID string, limit int) ([]domain.ActivityEntry, error)
}

type service struct {
	repo repository.ActivityRepository
}

// NewService creates a new activity service
func NewService(repo repository.ActivityRepository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, profileID, activityType, description string) {
	if err := s.repo.AppendActivity(ctx, profileID, activityType, description); err != nil {
		log := logger.FromContext(ctx)
		log.Warn("Failed to append activity entry",
			"profile_id", profileID,
			"activity_type", activityType,
			"error", err)
	}
}

func (s *service) Feed(ctx context.Context, profileID string, limit int) ([]domain.ActivityEntry, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	entries, err := s.repo.ListActivity(ctx, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	return entries, nil
}
