package schema

// SeedSQL loads the starter game content. Fixed UUIDs keep reruns idempotent
// via ON CONFLICT DO NOTHING.
const SeedSQL = `
-- Items

INSERT INTO items (item_id, item_name, item_description, item_type, rarity, level_requirement, equipment_slot, strength_bonus, intelligence_bonus, dexterity_bonus, price) VALUES
    ('a1000000-0000-0000-0000-000000000001', 'Rusty Sword', 'A dull blade scavenged from the upper halls.', 'weapon', 'common', 1, 'weapon', 2, 0, 0, 10),
    ('a1000000-0000-0000-0000-000000000002', 'Apprentice Wand', 'Hums faintly when pointed at trouble.', 'weapon', 'common', 1, 'weapon', 0, 2, 0, 10),
    ('a1000000-0000-0000-0000-000000000003', 'Leather Vest', 'Better than nothing.', 'armor', 'common', 1, 'chest', 1, 0, 1, 15),
    ('a1000000-0000-0000-0000-000000000004', 'Emberforged Blade', 'Still warm from the deep forges.', 'weapon', 'rare', 5, 'weapon', 6, 0, 2, 120),
    ('a1000000-0000-0000-0000-000000000005', 'Ring of Embers', 'Glows brighter the deeper you go.', 'accessory', 'epic', 8, 'ring', 3, 3, 3, 400)
ON CONFLICT (item_id) DO NOTHING;

-- Monsters

INSERT INTO monsters (monster_id, monster_name, level, health, damage, defense, experience_reward, gold_reward, is_boss, loot_table) VALUES
    ('b1000000-0000-0000-0000-000000000001', 'Cinder Rat', 1, 30, 6, 2, 20, 5, FALSE, '[]'),
    ('b1000000-0000-0000-0000-000000000002', 'Ashen Bat', 2, 40, 8, 3, 35, 10, FALSE, '[]'),
    ('b1000000-0000-0000-0000-000000000003', 'Ember Imp', 3, 55, 11, 4, 50, 15, FALSE, '[{"item_id": "a1000000-0000-0000-0000-000000000001", "chance": 0.2}]'),
    ('b1000000-0000-0000-0000-000000000004', 'Soot Golem', 4, 80, 13, 8, 70, 25, FALSE, '[{"item_id": "a1000000-0000-0000-0000-000000000003", "chance": 0.25}]'),
    ('b1000000-0000-0000-0000-000000000005', 'Deep Wisp', 5, 70, 16, 5, 90, 30, FALSE, '[{"item_id": "a1000000-0000-0000-0000-000000000002", "chance": 0.2}]'),
    ('b1000000-0000-0000-0000-000000000006', 'Furnace Hound', 6, 100, 18, 9, 115, 40, FALSE, '[]'),
    ('b1000000-0000-0000-0000-000000000007', 'Magma Shade', 7, 115, 21, 10, 145, 50, FALSE, '[{"item_id": "a1000000-0000-0000-0000-000000000004", "chance": 0.1}]'),
    ('b1000000-0000-0000-0000-000000000008', 'Coalbound Knight', 8, 140, 24, 14, 180, 65, FALSE, '[{"item_id": "a1000000-0000-0000-0000-000000000004", "chance": 0.15}]'),
    ('b1000000-0000-0000-0000-000000000009', 'Pyre Warden', 9, 165, 27, 16, 220, 85, FALSE, '[{"item_id": "a1000000-0000-0000-0000-000000000005", "chance": 0.05}]'),
    ('b1000000-0000-0000-0000-00000000000a', 'The Emberdeep Tyrant', 10, 250, 32, 20, 400, 200, TRUE, '[{"item_id": "a1000000-0000-0000-0000-000000000005", "chance": 0.5}]')
ON CONFLICT (monster_id) DO NOTHING;

-- Dungeons

INSERT INTO dungeons (dungeon_id, dungeon_name, description, min_level, levels) VALUES
    ('c1000000-0000-0000-0000-000000000001', 'The Emberdeep', 'Ten levels of ash and heat beneath the old mountain.', 1, 10)
ON CONFLICT (dungeon_id) DO NOTHING;

INSERT INTO dungeon_levels (dungeon_level_id, dungeon_id, level_number, monster_id, is_boss_level) VALUES
    ('d1000000-0000-0000-0000-000000000001', 'c1000000-0000-0000-0000-000000000001', 1, 'b1000000-0000-0000-0000-000000000001', FALSE),
    ('d1000000-0000-0000-0000-000000000002', 'c1000000-0000-0000-0000-000000000001', 2, 'b1000000-0000-0000-0000-000000000002', FALSE),
    ('d1000000-0000-0000-0000-000000000003', 'c1000000-0000-0000-0000-000000000001', 3, 'b1000000-0000-0000-0000-000000000003', FALSE),
    ('d1000000-0000-0000-0000-000000000004', 'c1000000-0000-0000-0000-000000000001', 4, 'b1000000-0000-0000-0000-000000000004', FALSE),
    ('d1000000-0000-0000-0000-000000000005', 'c1000000-0000-0000-0000-000000000001', 5, 'b1000000-0000-0000-0000-000000000005', FALSE),
    ('d1000000-0000-0000-0000-000000000006', 'c1000000-0000-0000-0000-000000000001', 6, 'b1000000-0000-0000-0000-000000000006', FALSE),
    ('d1000000-0000-0000-0000-000000000007', 'c1000000-0000-0000-0000-000000000001', 7, 'b1000000-0000-0000-0000-000000000007', FALSE),
    ('d1000000-0000-0000-0000-000000000008', 'c1000000-0000-0000-0000-000000000001', 8, 'b1000000-0000-0000-0000-000000000008', FALSE),
    ('d1000000-0000-0000-0000-000000000009', 'c1000000-0000-0000-0000-000000000001', 9, 'b1000000-0000-0000-0000-000000000009', FALSE),
    ('d1000000-0000-0000-0000-00000000000a', 'c1000000-0000-0000-0000-000000000001', 10, 'b1000000-0000-0000-0000-00000000000a', TRUE)
ON CONFLICT (dungeon_level_id) DO NOTHING;

-- Quests
-- Stored rewards are final values: base 50xp/25g scaled by the difficulty
-- multipliers (easy 1x/1x, medium 1.5x/1.5x, hard 2.5x/2x, epic 4x/3x).

INSERT INTO quests (quest_id, title, description, difficulty, level_requirement, experience_reward, gold_reward, item_reward_id) VALUES
    ('e1000000-0000-0000-0000-000000000001', 'Sweep the Ash Stables', 'The stablemaster wants the cinder rats gone.', 'easy', 1, 50, 25, NULL),
    ('e1000000-0000-0000-0000-000000000002', 'Courier to the Lower Gate', 'Carry sealed orders down two levels.', 'easy', 1, 50, 25, NULL),
    ('e1000000-0000-0000-0000-000000000003', 'Chart the Soot Tunnels', 'Map the collapsed passages east of the forge.', 'medium', 3, 75, 37, NULL),
    ('e1000000-0000-0000-0000-000000000004', 'Recover the Lost Pickaxe', 'A miner swears it sank near the wisp pools.', 'medium', 3, 75, 37, 'a1000000-0000-0000-0000-000000000003'),
    ('e1000000-0000-0000-0000-000000000005', 'Break the Coalbound Siege', 'Knights of cinder hold the eighth stair.', 'hard', 6, 125, 50, 'a1000000-0000-0000-0000-000000000004'),
    ('e1000000-0000-0000-0000-000000000006', 'Silence the Pyre Warden', 'Its chanting keeps the whole deep awake.', 'epic', 9, 200, 75, 'a1000000-0000-0000-0000-000000000005')
ON CONFLICT (quest_id) DO NOTHING;
`
