// Package store provides the lore entry storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/akashic-lore/internal/model"
)

// ErrNotFound is returned when no live entry has the requested id.
var ErrNotFound = errors.New("entry not found")

// PutParams holds parameters for storing an entry.
type PutParams struct {
	ID       string // generated when empty
	Title    string
	Summary  string
	Keywords []string
	Passage  string
	Source   string
}

// ListParams holds parameters for listing entries.
type ListParams struct {
	Source string
	Limit  int
}

// RmParams holds parameters for deleting an entry.
type RmParams struct {
	ID   string
	Hard bool
}

// Store defines the lore storage interface.
type Store interface {
	// Put creates or replaces an entry. Returns the stored entry.
	Put(ctx context.Context, p PutParams) (*model.StoredEntry, error)

	// Get retrieves a live entry by id.
	Get(ctx context.Context, id string) (*model.StoredEntry, error)

	// List lists live entries in authoring order.
	List(ctx context.Context, p ListParams) ([]model.StoredEntry, error)

	// Rm soft-deletes (or hard-deletes) an entry.
	Rm(ctx context.Context, p RmParams) error

	// Close closes the store.
	Close() error
}
