package lore

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/rcliao/akashic-lore/internal/model"
)

// Matcher holds a cached corpus and answers context queries against it.
// It is safe for concurrent use.
type Matcher struct {
	src   Source
	limit int
	log   *zap.Logger

	mu     sync.Mutex // serializes loads
	corpus atomic.Pointer[[]model.Entry]
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLimit sets how many entries a query selects.
func WithLimit(n int) Option {
	return func(m *Matcher) { m.limit = n }
}

// WithLogger sets the matcher's logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.log = l
		}
	}
}

// NewMatcher creates a matcher over src. The corpus is loaded on first use
// or by Reload.
func NewMatcher(src Source, opts ...Option) *Matcher {
	m := &Matcher{
		src:   src,
		limit: DefaultLimit,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reload reads the corpus from the source and swaps it in whole. It
// returns the number of entries now loaded. A source error leaves an
// empty corpus in place rather than failing.
func (m *Matcher) Reload(ctx context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(ctx)
}

func (m *Matcher) load(ctx context.Context) int {
	entries := m.fetch(ctx)
	m.corpus.Store(&entries)
	return len(entries)
}

// refresh is Reload for change notifications: a load that yields no
// entries, as when a file is caught half-written, keeps the current corpus.
func (m *Matcher) refresh(ctx context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.fetch(ctx)
	if cur := m.corpus.Load(); len(entries) == 0 && cur != nil && len(*cur) > 0 {
		m.log.Warn("lore reload found no entries, keeping previous corpus", zap.Int("entries", len(*cur)))
		return len(*cur)
	}
	m.corpus.Store(&entries)
	return len(entries)
}

func (m *Matcher) fetch(ctx context.Context) []model.Entry {
	var entries []model.Entry
	if m.src != nil {
		loaded, err := m.src.Load(ctx)
		if err != nil {
			m.log.Warn("lore load failed", zap.String("source", m.src.Name()), zap.Error(err))
		} else {
			entries = loaded
		}
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries
}

// Corpus returns the current corpus, loading it if needed. The returned
// slice must not be modified.
func (m *Matcher) Corpus() []model.Entry {
	if c := m.corpus.Load(); c != nil {
		return *c
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c := m.corpus.Load(); c != nil {
		return *c
	}
	m.load(context.Background())
	return *m.corpus.Load()
}

// Relevant returns the entries most relevant to query.
func (m *Matcher) Relevant(query string) []model.Entry {
	return SelectRelevant(query, m.Corpus(), m.limit)
}

// GetContext returns the context block for query, or "" when no lore is
// relevant.
func (m *Matcher) GetContext(query string) string {
	entries := m.Relevant(query)
	if len(entries) == 0 {
		m.log.Debug("no relevant lore", zap.String("query", query))
		return ""
	}
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}
	m.log.Debug("relevant lore found", zap.String("query", query), zap.Strings("titles", titles))
	return FormatContext(entries)
}
