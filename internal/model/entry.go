// Package model defines the core lore data types.
package model

import "time"

// Entry is one unit of lore knowledge.
type Entry struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Title    string   `json:"title" yaml:"title" toml:"title"`
	Summary  string   `json:"summary" yaml:"summary" toml:"summary"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty" toml:"keywords,omitempty"`
	Passage  string   `json:"passage,omitempty" yaml:"passage,omitempty" toml:"passage,omitempty"`
	Source   string   `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
}

// Valid reports whether the entry carries the required id and title.
func (e Entry) Valid() bool {
	return e.ID != "" && e.Title != ""
}

// Body returns the text emitted for the entry in a context block:
// the passage when present, otherwise the summary.
func (e Entry) Body() string {
	if e.Passage != "" {
		return e.Passage
	}
	return e.Summary
}

// CorpusFile is the on-disk shape of a lore corpus.
type CorpusFile struct {
	Entries []Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// StoredEntry is an entry as persisted in the lore store.
type StoredEntry struct {
	Entry
	Revision  int       `json:"revision"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
