package lore

import (
	"context"
	"errors"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/rcliao/akashic-lore/internal/model"
)

// ErrEmptyCorpus is returned by a source that loaded but held no usable entries.
var ErrEmptyCorpus = errors.New("corpus has no valid entries")

// Source produces a complete corpus.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]model.Entry, error)
}

// FileSource reads a corpus file. The encoding is picked from the file
// extension: .yaml/.yml, .toml, anything else is JSON.
type FileSource struct {
	Path string
}

func (f FileSource) Name() string { return f.Path }

func (f FileSource) Load(ctx context.Context) ([]model.Entry, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return DecodeCorpus(f.Path, data)
}

// chain tries sources in order and keeps the first usable corpus.
type chain struct {
	sources []Source
	log     *zap.Logger
}

// FirstOf combines sources into one that returns the corpus of the first
// source to load successfully. Entries without an id or title are
// dropped. When every source fails the result is an empty corpus and a
// nil error.
func FirstOf(log *zap.Logger, sources ...Source) Source {
	if log == nil {
		log = zap.NewNop()
	}
	return &chain{sources: sources, log: log}
}

func (c *chain) Name() string {
	names := make([]string, len(c.sources))
	for i, s := range c.sources {
		names[i] = s.Name()
	}
	return strings.Join(names, ",")
}

func (c *chain) Load(ctx context.Context) ([]model.Entry, error) {
	for _, src := range c.sources {
		entries, err := src.Load(ctx)
		if err == nil {
			entries = c.valid(src, entries)
			if len(entries) == 0 {
				err = ErrEmptyCorpus
			}
		}
		if err != nil {
			c.log.Debug("lore source unavailable", zap.String("source", src.Name()), zap.Error(err))
			continue
		}
		c.log.Info("lore loaded", zap.String("source", src.Name()), zap.Int("entries", len(entries)))
		return entries, nil
	}
	c.log.Warn("no lore source could be loaded", zap.Int("candidates", len(c.sources)))
	return []model.Entry{}, nil
}

func (c *chain) valid(src Source, entries []model.Entry) []model.Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if !e.Valid() {
			c.log.Warn("skipping lore entry without id or title",
				zap.String("source", src.Name()), zap.String("id", e.ID), zap.String("title", e.Title))
			continue
		}
		out = append(out, e)
	}
	return out
}
