package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

// ActivityRepository implements the activity log repository for PostgreSQL
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// AppendActivity stores one activity entry
func (r *ActivityRepository) AppendActivity(ctx context.Context, profileID, activityType, description string) error {
	query := `
		INSERT INTO activity_log (profile_id, activity_type, description)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(ctx, query, profileID, activityType, description); err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}

	return nil
}

// ListActivity retrieves a profile's most recent entries, newest first
func (r *ActivityRepository) ListActivity(ctx context.Context, profileID string, limit int) ([]domain.ActivityEntry, error) {
	query := `
		SELECT activity_id, profile_id, activity_type, description, created_at
		FROM activity_log
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var e domain.ActivityEntry
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.ActivityType, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
