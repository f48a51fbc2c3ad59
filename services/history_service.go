package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estatehub/buyer-intake/models"
	"github.com/estatehub/buyer-intake/repositories"
)

// HistoryService records what changed in a single buyer mutation. Change
// entries are appended through the repository handed in by the caller so
// they join the transaction of the record write itself.
type HistoryService interface {
	// RecordChange computes the whitelisted field diff between the two
	// snapshots and, when it is non-empty, appends exactly one history
	// entry through repo. No-op writes produce no entry. The computed diff
	// is returned either way.
	RecordChange(ctx context.Context, repo repositories.HistoryRepository, actorID string, before, after *models.Buyer) (models.Diff, error)
	// RecordCreation appends the synthetic "created" entry for a new buyer.
	RecordCreation(ctx context.Context, repo repositories.HistoryRepository, actorID string, buyer *models.Buyer) error
	GetBuyerHistory(ctx context.Context, buyerID string, limit int) ([]models.HistoryEntry, error)
}

// DefaultHistoryLimit bounds a history listing when the caller does not ask
// for a specific size.
const DefaultHistoryLimit = 10

type historyService struct {
	historyRepo repositories.HistoryRepository
	now         func() time.Time
}

// NewHistoryService creates a new history service.
func NewHistoryService(historyRepo repositories.HistoryRepository) HistoryService {
	return &historyService{
		historyRepo: historyRepo,
		now:         time.Now,
	}
}

func (s *historyService) RecordChange(ctx context.Context, repo repositories.HistoryRepository, actorID string, before, after *models.Buyer) (models.Diff, error) {
	diff := ComputeDiff(before, after)
	if len(diff) == 0 {
		return diff, nil
	}

	entry := &models.HistoryEntry{
		ID:        uuid.NewString(),
		BuyerID:   after.ID,
		ChangedBy: actorID,
		ChangedAt: s.now().UTC(),
		Diff:      diff,
	}
	if err := repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record change: %w", err)
	}
	return diff, nil
}

func (s *historyService) RecordCreation(ctx context.Context, repo repositories.HistoryRepository, actorID string, buyer *models.Buyer) error {
	entry := &models.HistoryEntry{
		ID:        uuid.NewString(),
		BuyerID:   buyer.ID,
		ChangedBy: actorID,
		ChangedAt: s.now().UTC(),
		Diff:      models.CreationDiff(),
	}
	if err := repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record creation: %w", err)
	}
	return nil
}

func (s *historyService) GetBuyerHistory(ctx context.Context, buyerID string, limit int) ([]models.HistoryEntry, error) {
	if limit < 1 || limit > models.MaxPageSize {
		limit = DefaultHistoryLimit
	}
	return s.historyRepo.ListByBuyer(ctx, buyerID, limit)
}
