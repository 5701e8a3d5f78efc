package domain

import "time"

// ItemType categorizes an item
type ItemType string

// Item types
const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeConsumable ItemType = "consumable"
)

// ItemRarity grades an item
type ItemRarity string

// Item rarities
const (
	RarityCommon    ItemRarity = "common"
	RarityUncommon  ItemRarity = "uncommon"
	RarityRare      ItemRarity = "rare"
	RarityEpic      ItemRarity = "epic"
	RarityLegendary ItemRarity = "legendary"
)

// Item is a static item definition
type Item struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       *string    `json:"description,omitempty"`
	Type              ItemType   `json:"type"`
	Rarity            ItemRarity `json:"rarity"`
	LevelRequirement  int        `json:"level_requirement"`
	EquipmentSlot     *string    `json:"equipment_slot,omitempty"`
	HealthBonus       int        `json:"health_bonus"`
	StrengthBonus     int        `json:"strength_bonus"`
	IntelligenceBonus int        `json:"intelligence_bonus"`
	DexterityBonus    int        `json:"dexterity_bonus"`
	Price             int64      `json:"price"`
	CreatedAt         time.Time  `json:"created_at"`
}

// InventoryItem is one stack of an item held by a profile
type InventoryItem struct {
	ID         string    `json:"id"`
	ProfileID  string    `json:"profile_id"`
	ItemID     string    `json:"item_id"`
	Quantity   int       `json:"quantity"`
	IsEquipped bool      `json:"is_equipped"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined field
	Item *Item `json:"item,omitempty"`
}
