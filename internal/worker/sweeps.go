package worker

import (
	"context"
	"fmt"

	"github.com/nyxa-games/emberdeep/internal/battle"
	"github.com/nyxa-games/emberdeep/internal/quest"
)

// BattleSweepJob advances every in-progress battle by one turn. Scheduled on
// the battle tick cadence; safe to run alongside interactive turn requests
// because each turn write is conditioned on the battle's stored turn count.
type BattleSweepJob struct {
	service battle.Service
}

// NewBattleSweepJob creates a new battle sweep job
func NewBattleSweepJob(service battle.Service) *BattleSweepJob {
	return &BattleSweepJob{service: service}
}

// Process runs one sweep over all active battles
func (j *BattleSweepJob) Process(ctx context.Context) error {
	if err := j.service.SweepActiveBattles(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgBattleSweepFailed, err)
	}
	return nil
}

// QuestSweepJob applies one accrual tick to every working quest. Scheduled
// on the quest tick cadence.
type QuestSweepJob struct {
	service quest.Service
}

// NewQuestSweepJob creates a new quest sweep job
func NewQuestSweepJob(service quest.Service) *QuestSweepJob {
	return &QuestSweepJob{service: service}
}

// Process runs one accrual tick over all working quests
func (j *QuestSweepJob) Process(ctx context.Context) error {
	if err := j.service.AccrueProgress(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgQuestSweepFailed, err)
	}
	return nil
}

// RecoveryJob retries reward settlement for victories that closed without a
// settled grant, covering a crash between battle close and settlement.
type RecoveryJob struct {
	service battle.Service
}

// NewRecoveryJob creates a new recovery job
func NewRecoveryJob(service battle.Service) *RecoveryJob {
	return &RecoveryJob{service: service}
}

// Process retries settlement for all unsettled victories
func (j *RecoveryJob) Process(ctx context.Context) error {
	if err := j.service.RecoverUnsettled(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgRecoverySweepFailed, err)
	}
	return nil
}
