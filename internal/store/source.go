package store

import (
	"context"
	"os"

	"github.com/rcliao/akashic-lore/internal/model"
)

// Name identifies the store as a lore source.
func (s *SQLiteStore) Name() string {
	return "sqlite:" + s.path
}

// Load returns every live entry so the store can back a lore matcher.
func (s *SQLiteStore) Load(ctx context.Context) ([]model.Entry, error) {
	return s.ExportAll(ctx, "")
}

// PathSource opens the store at Path read-only for each load, so a lore
// source list can name the database without holding it open or writing
// to it.
type PathSource struct {
	Path string
}

func (p PathSource) Name() string { return "sqlite:" + p.Path }

func (p PathSource) Load(ctx context.Context) ([]model.Entry, error) {
	if _, err := os.Stat(p.Path); err != nil {
		return nil, err
	}
	s, err := OpenReadOnly(p.Path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Load(ctx)
}
