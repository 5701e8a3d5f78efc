package repository

import (
	"context"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

// ActivityRepository defines the interface for the append-only activity log
type ActivityRepository interface {
	// AppendActivity stores one activity entry
	AppendActivity(ctx context.Context, profileID, activityType, description string) error

	// ListActivity retrieves a profile's most recent entries, newest first
	ListActivity(ctx context.Context, profileID string, limit int) ([]domain.ActivityEntry, error)
}
