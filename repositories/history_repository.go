package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/estatehub/buyer-intake/models"
)

// HistoryRepository handles buyer change-history persistence. Entries are
// append-only: there is deliberately no update or single-entry delete.
type HistoryRepository interface {
	Create(ctx context.Context, entry *models.HistoryEntry) error
	ListByBuyer(ctx context.Context, buyerID string, limit int) ([]models.HistoryEntry, error)
}

type historyRepository struct {
	db DBTX
}

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(db DBTX) HistoryRepository {
	return &historyRepository{db: db}
}

// Create appends one history entry.
func (r *historyRepository) Create(ctx context.Context, entry *models.HistoryEntry) error {
	diff, err := json.Marshal(entry.Diff)
	if err != nil {
		return fmt.Errorf("failed to encode diff: %w", err)
	}

	query := `
		INSERT INTO buyer_history (id, buyer_id, changed_by, changed_at, diff)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		entry.ID,
		entry.BuyerID,
		entry.ChangedBy,
		entry.ChangedAt.UnixMilli(),
		string(diff),
	)
	if err != nil {
		return fmt.Errorf("failed to create history entry: %w", err)
	}
	return nil
}

// ListByBuyer retrieves the most recent entries for a buyer, newest first.
func (r *historyRepository) ListByBuyer(ctx context.Context, buyerID string, limit int) ([]models.HistoryEntry, error) {
	query := `
		SELECT id, buyer_id, changed_by, changed_at, diff
		FROM buyer_history
		WHERE buyer_id = ?
		ORDER BY changed_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, buyerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		var changedAt int64
		var diff string

		if err := rows.Scan(&entry.ID, &entry.BuyerID, &entry.ChangedBy, &changedAt, &diff); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if err := json.Unmarshal([]byte(diff), &entry.Diff); err != nil {
			return nil, fmt.Errorf("failed to decode diff: %w", err)
		}
		entry.ChangedAt = time.UnixMilli(changedAt).UTC()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}
	return entries, nil
}
