package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyxa-games/emberdeep/internal/domain"
)

const itemColumns = `i.item_id, i.item_name, i.item_description, i.item_type, i.rarity,
		i.level_requirement, i.equipment_slot, i.health_bonus, i.strength_bonus,
		i.intelligence_bonus, i.dexterity_bonus, i.price, i.created_at`

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// ListInventory retrieves a profile's inventory with item definitions joined
func (r *InventoryRepository) ListInventory(ctx context.Context, profileID string) ([]domain.InventoryItem, error) {
	query := `
		SELECT inv.inventory_item_id, inv.profile_id, inv.item_id, inv.quantity, inv.is_equipped, inv.created_at,
			` + itemColumns + `
		FROM inventory inv
		JOIN items i ON i.item_id = inv.item_id
		WHERE inv.profile_id = $1
		ORDER BY inv.created_at
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var (
			inv  domain.InventoryItem
			item domain.Item
		)
		err := rows.Scan(
			&inv.ID, &inv.ProfileID, &inv.ItemID, &inv.Quantity, &inv.IsEquipped, &inv.CreatedAt,
			&item.ID, &item.Name, &item.Description, &item.Type, &item.Rarity,
			&item.LevelRequirement, &item.EquipmentSlot, &item.HealthBonus, &item.StrengthBonus,
			&item.IntelligenceBonus, &item.DexterityBonus, &item.Price, &item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		inv.Item = &item
		items = append(items, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// EquippedBonus sums the attribute bonuses of the profile's equipped items
func (r *InventoryRepository) EquippedBonus(ctx context.Context, profileID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(i.strength_bonus + i.intelligence_bonus + i.dexterity_bonus), 0)
		FROM inventory inv
		JOIN items i ON i.item_id = inv.item_id
		WHERE inv.profile_id = $1 AND inv.is_equipped = TRUE
	`

	var bonus int
	if err := r.db.QueryRow(ctx, query, profileID).Scan(&bonus); err != nil {
		return 0, fmt.Errorf("failed to sum equipment bonus: %w", err)
	}

	return bonus, nil
}

// GetItem retrieves an item definition by ID
func (r *InventoryRepository) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items i WHERE i.item_id = $1`

	var item domain.Item
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&item.ID, &item.Name, &item.Description, &item.Type, &item.Rarity,
		&item.LevelRequirement, &item.EquipmentSlot, &item.HealthBonus, &item.StrengthBonus,
		&item.IntelligenceBonus, &item.DexterityBonus, &item.Price, &item.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

// SetEquipped flips the equipped flag on an inventory row owned by the profile
func (r *InventoryRepository) SetEquipped(ctx context.Context, profileID, inventoryItemID string, equipped bool) error {
	query := `
		UPDATE inventory
		SET is_equipped = $3
		WHERE inventory_item_id = $2 AND profile_id = $1
	`

	result, err := r.db.Exec(ctx, query, profileID, inventoryItemID, equipped)
	if err != nil {
		return fmt.Errorf("failed to set equipped flag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}
