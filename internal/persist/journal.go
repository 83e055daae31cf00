package persist

import (
	"context"
	"fmt"
)

// JournalEntry is one spawn-journal row: an acquire or release that went
// through the dispatch system. Audit/analytics only — the journal is never
// read back to rebuild pools.
type JournalEntry struct {
	Event      string // "spawn", "despawn"
	TemplateID int32
	NetID      uint32
	OwnerID    uint64
	X, Y       int32
}

type JournalRepo struct {
	db *DB
}

func NewJournalRepo(db *DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// Write atomically writes a batch of journal entries in a single
// transaction. If it fails, the caller keeps the batch and retries on the
// next flush.
func (r *JournalRepo) Write(ctx context.Context, entries []JournalEntry) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("journal begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		if _, err := tx.Exec(ctx,
			`INSERT INTO spawn_journal (event, template_id, net_id, owner_id, x, y)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			e.Event, e.TemplateID, int64(e.NetID), int64(e.OwnerID), e.X, e.Y,
		); err != nil {
			return fmt.Errorf("journal insert: %w", err)
		}
	}

	return tx.Commit(ctx)
}
