package repository

import (
	"context"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

// InventoryRepository defines the interface for inventory storage
type InventoryRepository interface {
	// ListInventory retrieves a profile's inventory with item definitions
	// joined.
	ListInventory(ctx context.Context, profileID string) ([]domain.InventoryItem, error)

	// EquippedBonus sums the attribute bonuses of the profile's currently
	// equipped items. Zero when nothing is equipped.
	EquippedBonus(ctx context.Context, profileID string) (int, error)

	// GetItem retrieves an item definition by ID.
	// Returns domain.ErrItemNotFound when no row matches.
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)

	// SetEquipped flips the equipped flag on an inventory row owned by the
	// profile. Returns domain.ErrItemNotFound when the row is not theirs.
	SetEquipped(ctx context.Context, profileID, inventoryItemID string, equipped bool) error
}
