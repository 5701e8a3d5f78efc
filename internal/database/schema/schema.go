package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Profiles

CREATE TABLE IF NOT EXISTS profiles (
    profile_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(50) UNIQUE NOT NULL,
    character_class VARCHAR(20) NOT NULL,
    level INTEGER NOT NULL DEFAULT 1,
    experience BIGINT NOT NULL DEFAULT 0,
    gold BIGINT NOT NULL DEFAULT 0,
    health INTEGER NOT NULL DEFAULT 100,
    max_health INTEGER NOT NULL DEFAULT 100,
    strength INTEGER NOT NULL,
    intelligence INTEGER NOT NULL,
    dexterity INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Items

CREATE TABLE IF NOT EXISTS items (
    item_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    item_name VARCHAR(100) NOT NULL,
    item_description TEXT,
    item_type VARCHAR(20) NOT NULL,
    rarity VARCHAR(20) NOT NULL DEFAULT 'common',
    level_requirement INTEGER NOT NULL DEFAULT 1,
    equipment_slot VARCHAR(20),
    health_bonus INTEGER NOT NULL DEFAULT 0,
    strength_bonus INTEGER NOT NULL DEFAULT 0,
    intelligence_bonus INTEGER NOT NULL DEFAULT 0,
    dexterity_bonus INTEGER NOT NULL DEFAULT 0,
    price BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Inventory

CREATE TABLE IF NOT EXISTS inventory (
    inventory_item_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    profile_id UUID NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
    item_id UUID NOT NULL REFERENCES items(item_id) ON DELETE RESTRICT,
    quantity INTEGER NOT NULL DEFAULT 1,
    is_equipped BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (profile_id, item_id)
);

CREATE INDEX IF NOT EXISTS idx_inventory_profile ON inventory(profile_id);

-- Monsters

CREATE TABLE IF NOT EXISTS monsters (
    monster_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    monster_name VARCHAR(100) NOT NULL,
    level INTEGER NOT NULL DEFAULT 1,
    health INTEGER NOT NULL,
    damage INTEGER NOT NULL,
    defense INTEGER NOT NULL,
    experience_reward BIGINT NOT NULL DEFAULT 0,
    gold_reward BIGINT NOT NULL DEFAULT 0,
    is_boss BOOLEAN NOT NULL DEFAULT FALSE,
    loot_table JSONB NOT NULL DEFAULT '[]',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Dungeons

CREATE TABLE IF NOT EXISTS dungeons (
    dungeon_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    dungeon_name VARCHAR(100) NOT NULL,
    description TEXT,
    min_level INTEGER NOT NULL DEFAULT 1,
    levels INTEGER NOT NULL DEFAULT 10,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS dungeon_levels (
    dungeon_level_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    dungeon_id UUID NOT NULL REFERENCES dungeons(dungeon_id) ON DELETE CASCADE,
    level_number INTEGER NOT NULL,
    monster_id UUID NOT NULL REFERENCES monsters(monster_id) ON DELETE RESTRICT,
    is_boss_level BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (dungeon_id, level_number)
);

CREATE TABLE IF NOT EXISTS dungeon_progress (
    dungeon_progress_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    profile_id UUID NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
    dungeon_id UUID NOT NULL REFERENCES dungeons(dungeon_id) ON DELETE CASCADE,
    current_level INTEGER NOT NULL DEFAULT 1,
    highest_level INTEGER NOT NULL DEFAULT 1,
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (profile_id, dungeon_id)
);

-- Battles
-- turns is an append-only JSONB array; the tick CAS keys on its length.

CREATE TABLE IF NOT EXISTS battles (
    battle_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    profile_id UUID NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
    dungeon_id UUID NOT NULL REFERENCES dungeons(dungeon_id) ON DELETE CASCADE,
    dungeon_level INTEGER NOT NULL,
    monster_id UUID NOT NULL REFERENCES monsters(monster_id) ON DELETE RESTRICT,
    player_health INTEGER NOT NULL,
    monster_health INTEGER NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'in_progress',
    turns JSONB NOT NULL DEFAULT '[]',
    rewards JSONB,
    rewards_settled BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed_at TIMESTAMPTZ
);

-- One in-progress battle per profile
CREATE UNIQUE INDEX IF NOT EXISTS idx_battles_one_active
    ON battles(profile_id) WHERE status = 'in_progress';

CREATE INDEX IF NOT EXISTS idx_battles_active
    ON battles(status) WHERE status = 'in_progress';

CREATE INDEX IF NOT EXISTS idx_battles_unsettled
    ON battles(status) WHERE status = 'victory' AND rewards_settled = FALSE;

-- Quests

CREATE TABLE IF NOT EXISTS quests (
    quest_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title VARCHAR(100) NOT NULL,
    description TEXT,
    difficulty VARCHAR(10) NOT NULL,
    level_requirement INTEGER NOT NULL DEFAULT 1,
    experience_reward BIGINT NOT NULL DEFAULT 0,
    gold_reward BIGINT NOT NULL DEFAULT 0,
    item_reward_id UUID REFERENCES items(item_id) ON DELETE SET NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS player_quests (
    player_quest_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    profile_id UUID NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
    quest_id UUID NOT NULL REFERENCES quests(quest_id) ON DELETE CASCADE,
    status VARCHAR(20) NOT NULL DEFAULT 'active',
    progress INTEGER NOT NULL DEFAULT 0 CHECK (progress >= 0 AND progress <= 100),
    is_working BOOLEAN NOT NULL DEFAULT FALSE,
    started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed_at TIMESTAMPTZ,
    UNIQUE (profile_id, quest_id)
);

CREATE INDEX IF NOT EXISTS idx_player_quests_working
    ON player_quests(is_working) WHERE is_working = TRUE AND status = 'active';

-- Activity Log (append-only)

CREATE TABLE IF NOT EXISTS activity_log (
    activity_id BIGSERIAL PRIMARY KEY,
    profile_id UUID NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
    activity_type VARCHAR(40) NOT NULL,
    description TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_activity_log_profile
    ON activity_log(profile_id, created_at DESC);
`
