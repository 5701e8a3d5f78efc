package repository

import (
	"context"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

// ProfileRepository defines the interface for profile storage
type ProfileRepository interface {
	// CreateProfile inserts a new profile with the class's starting stats.
	// Returns domain.ErrUsernameTaken when the username is already in use.
	CreateProfile(ctx context.Context, username string, class domain.CharacterClass) (*domain.Profile, error)

	// GetProfile retrieves a profile by ID.
	// Returns domain.ErrProfileNotFound when no row matches.
	GetProfile(ctx context.Context, profileID string) (*domain.Profile, error)

	// GetProfileByUsername retrieves a profile by its unique username
	GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error)
}
