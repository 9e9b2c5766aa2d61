package store

import (
	"context"
	"fmt"

	"github.com/rcliao/akashic-lore/internal/model"
)

// ExportAll returns all live entries in authoring order, optionally
// filtered by source label.
func (s *SQLiteStore) ExportAll(ctx context.Context, source string) ([]model.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE deleted_at IS NULL`
	var args []interface{}
	if source != "" {
		query += ` AND source = ?`
		args = append(args, source)
	}
	query += ` ORDER BY seq`

	stored, err := s.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	entries := make([]model.Entry, len(stored))
	for i, e := range stored {
		entries[i] = e.Entry
	}
	return entries, nil
}

// Import stores entries from a corpus file in one transaction. Entries
// with an existing id replace the stored one. An invalid entry aborts the
// whole import.
func (s *SQLiteStore) Import(ctx context.Context, entries []model.Entry) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for i, e := range entries {
		_, err := s.put(ctx, tx, PutParams{
			ID:       e.ID,
			Title:    e.Title,
			Summary:  e.Summary,
			Keywords: e.Keywords,
			Passage:  e.Passage,
			Source:   e.Source,
		})
		if err != nil {
			return 0, fmt.Errorf("import entry %d (%q): %w", i+1, e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(entries), nil
}
