package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyxa-games/emberdeep/internal/domain"
	"github.com/nyxa-games/emberdeep/internal/repository"
)

const questColumns = `q.quest_id, q.title, COALESCE(q.description, ''), q.difficulty,
		q.level_requirement, q.experience_reward, q.gold_reward, q.item_reward_id, q.created_at`

const playerQuestSelect = `
	SELECT pq.player_quest_id, pq.profile_id, pq.quest_id, pq.status, pq.progress,
		pq.is_working, pq.started_at, pq.completed_at,
		` + questColumns + `
	FROM player_quests pq
	JOIN quests q ON q.quest_id = pq.quest_id`

// QuestRepository implements the quest repository for PostgreSQL
type QuestRepository struct {
	db *pgxpool.Pool
}

// NewQuestRepository creates a new QuestRepository
func NewQuestRepository(db *pgxpool.Pool) *QuestRepository {
	return &QuestRepository{db: db}
}

// GetQuest retrieves a quest template by ID
func (r *QuestRepository) GetQuest(ctx context.Context, questID string) (*domain.Quest, error) {
	query := `SELECT ` + questColumns + ` FROM quests q WHERE q.quest_id = $1`

	quest, err := scanQuest(r.db.QueryRow(ctx, query, questID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}

	return quest, nil
}

// ListQuestBoard retrieves quest templates within the level cap that the
// profile has not already accepted
func (r *QuestRepository) ListQuestBoard(ctx context.Context, profileID string, maxLevel int) ([]domain.Quest, error) {
	query := `
		SELECT ` + questColumns + `
		FROM quests q
		WHERE q.level_requirement <= $2
			AND NOT EXISTS (
				SELECT 1 FROM player_quests pq
				WHERE pq.quest_id = q.quest_id AND pq.profile_id = $1
			)
		ORDER BY q.level_requirement, q.title
	`

	rows, err := r.db.Query(ctx, query, profileID, maxLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to list quest board: %w", err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		quest, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		quests = append(quests, *quest)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quests, nil
}

// AcceptQuest inserts a player quest in the active state. The unique
// (profile, quest) constraint turns a duplicate acceptance into
// domain.ErrQuestAlreadyAccepted.
func (r *QuestRepository) AcceptQuest(ctx context.Context, profileID, questID string) (*domain.PlayerQuest, error) {
	query := `
		INSERT INTO player_quests (profile_id, quest_id)
		VALUES ($1, $2)
		RETURNING player_quest_id
	`

	var playerQuestID string
	err := r.db.QueryRow(ctx, query, profileID, questID).Scan(&playerQuestID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == PgErrorCodeUniqueViolation {
			return nil, domain.ErrQuestAlreadyAccepted
		}
		return nil, fmt.Errorf("failed to insert player quest: %w", err)
	}

	return r.GetPlayerQuest(ctx, playerQuestID)
}

// GetPlayerQuest retrieves a player quest with its template joined
func (r *QuestRepository) GetPlayerQuest(ctx context.Context, playerQuestID string) (*domain.PlayerQuest, error) {
	query := playerQuestSelect + ` WHERE pq.player_quest_id = $1`

	pq, err := scanPlayerQuest(r.db.QueryRow(ctx, query, playerQuestID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("failed to get player quest: %w", err)
	}

	return pq, nil
}

// ListPlayerQuests retrieves a profile's quests, optionally filtered by status
func (r *QuestRepository) ListPlayerQuests(ctx context.Context, profileID string, status *domain.QuestStatus) ([]domain.PlayerQuest, error) {
	query := playerQuestSelect + ` WHERE pq.profile_id = $1`
	args := []interface{}{profileID}

	if status != nil {
		query += ` AND pq.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY pq.started_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list player quests: %w", err)
	}
	defer rows.Close()

	var quests []domain.PlayerQuest
	for rows.Next() {
		pq, err := scanPlayerQuest(rows)
		if err != nil {
			return nil, err
		}
		quests = append(quests, *pq)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quests, nil
}

// ListWorkingQuests retrieves every accruing quest with the owner's
// experience total for the sweep
func (r *QuestRepository) ListWorkingQuests(ctx context.Context) ([]repository.WorkingQuest, error) {
	query := `
		SELECT pq.player_quest_id, pq.profile_id, pq.quest_id, pq.status, pq.progress,
			pq.is_working, pq.started_at, pq.completed_at,
			` + questColumns + `,
			p.experience
		FROM player_quests pq
		JOIN quests q ON q.quest_id = pq.quest_id
		JOIN profiles p ON p.profile_id = pq.profile_id
		WHERE pq.status = 'active' AND pq.is_working = TRUE AND pq.progress < 100
		ORDER BY pq.started_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list working quests: %w", err)
	}
	defer rows.Close()

	var working []repository.WorkingQuest
	for rows.Next() {
		var (
			pq domain.PlayerQuest
			q  domain.Quest
			w  repository.WorkingQuest
		)
		err := rows.Scan(
			&pq.ID, &pq.ProfileID, &pq.QuestID, &pq.Status, &pq.Progress,
			&pq.IsWorking, &pq.StartedAt, &pq.CompletedAt,
			&q.ID, &q.Title, &q.Description, &q.Difficulty,
			&q.LevelRequirement, &q.ExperienceReward, &q.GoldReward, &q.ItemRewardID, &q.CreatedAt,
			&w.ProfileExperience,
		)
		if err != nil {
			return nil, err
		}
		pq.Quest = &q
		w.PlayerQuest = pq
		working = append(working, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return working, nil
}

// SetWorking flips the working flag while the quest is active and unfinished
func (r *QuestRepository) SetWorking(ctx context.Context, playerQuestID string, working bool) (*domain.PlayerQuest, error) {
	query := `
		UPDATE player_quests
		SET is_working = $2
		WHERE player_quest_id = $1 AND status = 'active' AND progress < 100
	`

	result, err := r.db.Exec(ctx, query, playerQuestID, working)
	if err != nil {
		return nil, fmt.Errorf("failed to set working flag: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Re-read to report which gate refused the flip
		pq, err := r.GetPlayerQuest(ctx, playerQuestID)
		if err != nil {
			return nil, err
		}
		if pq.Status != domain.QuestStatusActive {
			return nil, domain.ErrQuestNotActive
		}
		return nil, domain.ErrQuestWorkFinished
	}

	return r.GetPlayerQuest(ctx, playerQuestID)
}

// AdvanceProgress conditionally moves progress forward. The WHERE clause
// carries the tick semantics: only an active, working quest whose stored
// progress still equals what the sweep read gets the delta, and reaching 100
// drops the working flag in the same write.
func (r *QuestRepository) AdvanceProgress(ctx context.Context, playerQuestID string, fromProgress, toProgress int) error {
	query := `
		UPDATE player_quests
		SET progress = $3,
			is_working = CASE WHEN $3 >= 100 THEN FALSE ELSE is_working END
		WHERE player_quest_id = $1
			AND status = 'active'
			AND is_working = TRUE
			AND progress = $2
	`

	result, err := r.db.Exec(ctx, query, playerQuestID, fromProgress, toProgress)
	if err != nil {
		return fmt.Errorf("failed to advance progress: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTickConflict
	}

	return nil
}

func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var q domain.Quest
	err := row.Scan(
		&q.ID, &q.Title, &q.Description, &q.Difficulty,
		&q.LevelRequirement, &q.ExperienceReward, &q.GoldReward, &q.ItemRewardID, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func scanPlayerQuest(row pgx.Row) (*domain.PlayerQuest, error) {
	var (
		pq domain.PlayerQuest
		q  domain.Quest
	)
	err := row.Scan(
		&pq.ID, &pq.ProfileID, &pq.QuestID, &pq.Status, &pq.Progress,
		&pq.IsWorking, &pq.StartedAt, &pq.CompletedAt,
		&q.ID, &q.Title, &q.Description, &q.Difficulty,
		&q.LevelRequirement, &q.ExperienceReward, &q.GoldReward, &q.ItemRewardID, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	pq.Quest = &q
	return &pq, nil
}
