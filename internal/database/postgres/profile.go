package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

const profileColumns = `profile_id, username, character_class, level, experience, gold,
		health, max_health, strength, intelligence, dexterity, created_at, updated_at`

// ProfileRepository implements the profile repository for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// CreateProfile inserts a new profile with the class's starting stats
func (r *ProfileRepository) CreateProfile(ctx context.Context, username string, class domain.CharacterClass) (*domain.Profile, error) {
	stats, ok := domain.CharacterClassStats[class]
	if !ok {
		return nil, fmt.Errorf("%w: unknown class %q", domain.ErrInvalidInput, class)
	}

	query := `
		INSERT INTO profiles (username, character_class, strength, intelligence, dexterity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + profileColumns

	row := r.db.QueryRow(ctx, query, username, class, stats.Strength, stats.Intelligence, stats.Dexterity)
	profile, err := scanProfile(row)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == PgErrorCodeUniqueViolation {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	return profile, nil
}

// GetProfile retrieves a profile by ID
func (r *ProfileRepository) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, profileID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// GetProfileByUsername retrieves a profile by its unique username
func (r *ProfileRepository) GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by username: %w", err)
	}

	return profile, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.Class,
		&p.Level,
		&p.Experience,
		&p.Gold,
		&p.Health,
		&p.MaxHealth,
		&p.Strength,
		&p.Intelligence,
		&p.Dexterity,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
