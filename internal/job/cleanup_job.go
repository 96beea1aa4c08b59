package job

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard-api/internal/repository"
)

// CleanupJob sweeps rows stranded by non-cascading deletes: cards whose
// board is gone, tasks whose card is gone, and invites to boards that
// no longer exist.
type CleanupJob struct {
	cardRepo   repository.CardRepository
	taskRepo   repository.TaskRepository
	inviteRepo repository.InviteRepository
	logger     *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	cardRepo repository.CardRepository,
	taskRepo repository.TaskRepository,
	inviteRepo repository.InviteRepository,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		cardRepo:   cardRepo,
		taskRepo:   taskRepo,
		inviteRepo: inviteRepo,
		logger:     logger,
	}
}

// Run executes one sweep. It satisfies cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	j.logger.Info("starting orphan sweep")

	orphanedCards, err := j.cardRepo.FindOrphaned(ctx)
	if err != nil {
		j.logger.Error("failed to find orphaned cards", zap.Error(err))
		return
	}

	if len(orphanedCards) > 0 {
		cardIDs := make([]uuid.UUID, 0, len(orphanedCards))
		for _, card := range orphanedCards {
			cardIDs = append(cardIDs, card.ID)
		}

		// tasks first so a failure never strands them without a card row
		if err := j.taskRepo.DeleteByCardIDs(ctx, cardIDs); err != nil {
			j.logger.Error("failed to delete tasks of orphaned cards", zap.Error(err))
			return
		}
		if err := j.cardRepo.DeleteByIDs(ctx, cardIDs); err != nil {
			j.logger.Error("failed to delete orphaned cards", zap.Error(err))
			return
		}
		j.logger.Info("deleted orphaned cards", zap.Int("count", len(cardIDs)))
	}

	// tasks orphaned by direct card deletes
	orphanedTasks, err := j.taskRepo.FindOrphaned(ctx)
	if err != nil {
		j.logger.Error("failed to find orphaned tasks", zap.Error(err))
		return
	}
	if len(orphanedTasks) > 0 {
		cardIDs := make([]uuid.UUID, 0, len(orphanedTasks))
		seen := make(map[uuid.UUID]bool)
		for _, task := range orphanedTasks {
			if !seen[task.CardID] {
				seen[task.CardID] = true
				cardIDs = append(cardIDs, task.CardID)
			}
		}
		if err := j.taskRepo.DeleteByCardIDs(ctx, cardIDs); err != nil {
			j.logger.Error("failed to delete orphaned tasks", zap.Error(err))
			return
		}
		j.logger.Info("deleted orphaned tasks", zap.Int("count", len(orphanedTasks)))
	}

	deleted, err := j.inviteRepo.DeleteOrphaned(ctx)
	if err != nil {
		j.logger.Error("failed to delete orphaned invites", zap.Error(err))
		return
	}
	if deleted > 0 {
		j.logger.Info("deleted orphaned invites", zap.Int64("count", deleted))
	}

	j.logger.Info("orphan sweep finished")
}
