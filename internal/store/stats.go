package store

import (
	"context"
	"fmt"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath       string        `json:"db_path"`
	DBSizeBytes  int64         `json:"db_size_bytes"`
	TotalEntries int           `json:"total_entries"`
	LiveEntries  int           `json:"live_entries"`
	WithPassage  int           `json:"with_passage"`
	WithKeywords int           `json:"with_keywords"`
	SourceCounts []SourceStats `json:"sources"`
}

// SourceStats holds per-source counts.
type SourceStats struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: s.path}

	// DB file size
	if info, err := os.Stat(s.path); err == nil {
		st.DBSizeBytes = info.Size()
	}

	counts := []struct {
		dest  *int
		query string
	}{
		{&st.TotalEntries, `SELECT COUNT(*) FROM entries`},
		{&st.LiveEntries, `SELECT COUNT(*) FROM entries WHERE deleted_at IS NULL`},
		{&st.WithPassage, `SELECT COUNT(*) FROM entries WHERE deleted_at IS NULL AND passage IS NOT NULL`},
		{&st.WithKeywords, `SELECT COUNT(*) FROM entries WHERE deleted_at IS NULL AND keywords IS NOT NULL`},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("count entries: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(source, ''), COUNT(*) AS cnt
		FROM entries WHERE deleted_at IS NULL
		GROUP BY source ORDER BY cnt DESC, source`)
	if err != nil {
		return nil, fmt.Errorf("count sources: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ss SourceStats
		if err := rows.Scan(&ss.Source, &ss.Count); err != nil {
			return nil, fmt.Errorf("scan source count: %w", err)
		}
		st.SourceCounts = append(st.SourceCounts, ss)
	}

	return st, rows.Err()
}
