package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/event"
	"github.com/nyxa-games/emberdeep/internal/level"
	"github.com/nyxa-games/emberdeep/internal/logger"
	"github.com/nyxa-games/emberdeep/internal/repository"
)

// View is a profile enriched with its derived level curve position and the
// equipment bonus currently applied in combat.
type View struct {
	domain.Profile
	Progression    level.Info `json:"progression"`
	EquipmentBonus int        `json:"equipment_bonus"`
}

// Service defines profile and inventory operations
type Service interface {
	// Create registers a new character. Returns domain.ErrInvalidInput for
	// an unknown class and domain.ErrUsernameTaken on a duplicate username.
	Create(ctx context.Context, username string, class domain.CharacterClass) (*domain.Profile, error)

	// Get retrieves a profile with derived level info
	Get(ctx context.Context, profileID string) (*View, error)

	// GetByUsername retrieves a profile by username with derived level info
	GetByUsername(ctx context.Context, username string) (*View, error)

	// Inventory lists the profile's items
	Inventory(ctx context.Context, profileID string) ([]domain.InventoryItem, error)

	// SetEquipped equips or unequips an owned inventory item
	SetEquipped(ctx context.Context, profileID, inventoryItemID string, equipped bool) error
}

type service struct {
	repo      repository.ProfileRepository
	inventory repository.InventoryRepository
	publisher event.Bus
}

// NewService creates a new profile service
func NewService(
	repo repository.ProfileRepository,
	inventory repository.InventoryRepository,
	publisher event.Bus,
) Service {
	return &service{
		repo:      repo,
		inventory: inventory,
		publisher: publisher,
	}
}

func (s *service) Create(ctx context.Context, username string, class domain.CharacterClass) (*domain.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("empty username: %w", domain.ErrInvalidInput)
	}
	if !class.Valid() {
		return nil, fmt.Errorf("unknown class %q: %w", class, domain.ErrInvalidInput)
	}

	created, err := s.repo.CreateProfile(ctx, username, class)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	if err := s.publisher.Publish(ctx, event.NewProfileCreatedEvent(created.ID, created.Username, string(created.Class))); err != nil {
		logger.FromContext(ctx).Error("Failed to publish profile created event", "error", err, "profileID", created.ID)
	}

	return created, nil
}

func (s *service) Get(ctx context.Context, profileID string) (*View, error) {
	p, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p), nil
}

func (s *service) GetByUsername(ctx context.Context, username string) (*View, error) {
	p, err := s.repo.GetProfileByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p), nil
}

// view derives the level curve position from stored experience. The equipped
// bonus read is best-effort; a failed read renders as zero rather than
// failing the whole profile fetch.
func (s *service) view(ctx context.Context, p *domain.Profile) *View {
	bonus, err := s.inventory.EquippedBonus(ctx, p.ID)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to read equipped bonus", "error", err, "profileID", p.ID)
		bonus = 0
	}

	info := level.Calculate(p.Experience)
	p.Level = info.Level

	return &View{
		Profile:        *p,
		Progression:    info,
		EquipmentBonus: bonus,
	}
}

func (s *service) Inventory(ctx context.Context, profileID string) ([]domain.InventoryItem, error) {
	if _, err := s.repo.GetProfile(ctx, profileID); err != nil {
		return nil, err
	}
	return s.inventory.ListInventory(ctx, profileID)
}

func (s *service) SetEquipped(ctx context.Context, profileID, inventoryItemID string, equipped bool) error {
	return s.inventory.SetEquipped(ctx, profileID, inventoryItemID, equipped)
}
