package lore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/akashic-lore/internal/model"
)

func scenarioCorpus() []model.Entry {
	return []model.Entry{
		{ID: "1", Title: "Origins", Summary: "The first tablet of creation, revealing how the world began"},
		{ID: "2", Title: "Celestial Cycles", Summary: "The movements of the heavenly bodies", Keywords: []string{"celestial alignment", "stars"}},
	}
}

func TestMatcher_GetContext(t *testing.T) {
	m := NewMatcher(&stubSource{name: "stub", entries: scenarioCorpus()})

	got := m.GetContext("Tell me about Origins")
	want := Preamble + "\n\n[1] Origins\nThe first tablet of creation, revealing how the world began\n\n"
	assert.Equal(t, want, got)

	got = m.GetContext("what do the stars mean")
	assert.Contains(t, got, "[1] Celestial Cycles")
}

func TestMatcher_GetContextNoMatch(t *testing.T) {
	m := NewMatcher(&stubSource{name: "stub", entries: scenarioCorpus()})
	assert.Equal(t, "", m.GetContext("completely unrelated gibberish query xyz"))
}

func TestMatcher_SourceFailureDegrades(t *testing.T) {
	m := NewMatcher(&stubSource{name: "broken", err: errors.New("disk on fire")})
	assert.Equal(t, "", m.GetContext("Tell me about Origins"))
	assert.Empty(t, m.Corpus())

	m = NewMatcher(nil)
	assert.Equal(t, "", m.GetContext("Origins"))
}

func TestMatcher_LoadsOnce(t *testing.T) {
	src := &stubSource{name: "stub", entries: scenarioCorpus()}
	m := NewMatcher(src)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.GetContext("Origins")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, src.calls)
}

func TestMatcher_Limit(t *testing.T) {
	m := NewMatcher(&stubSource{name: "stub", entries: rankedCorpus()}, WithLimit(2))
	assert.Equal(t, []string{"origins", "star-lore"}, ids(m.Relevant(rankedQuery)))
}

func TestMatcher_ReloadSwapsCorpus(t *testing.T) {
	src := &stubSource{name: "stub", entries: scenarioCorpus()}
	m := NewMatcher(src)
	assert.NotEmpty(t, m.GetContext("Origins"))

	src.entries = []model.Entry{{ID: "k", Title: "The Keeper", Summary: "Guardian of the archive"}}
	n := m.Reload(context.Background())
	require.Equal(t, 1, n)

	assert.Equal(t, "", m.GetContext("Origins"))
	assert.Contains(t, m.GetContext("who is the keeper"), "The Keeper")
}

func TestMatcher_RefreshKeepsCorpusOnEmptyLoad(t *testing.T) {
	src := &stubSource{name: "stub", entries: scenarioCorpus()}
	m := NewMatcher(src)
	require.Equal(t, 2, m.Reload(context.Background()))

	src.entries, src.err = nil, errors.New("unexpected end of JSON input")
	assert.Equal(t, 2, m.refresh(context.Background()))
	assert.Contains(t, m.GetContext("Tell me about Origins"), "[1] Origins")

	src.entries, src.err = []model.Entry{}, nil
	assert.Equal(t, 2, m.refresh(context.Background()))

	src.entries = []model.Entry{{ID: "k", Title: "The Keeper", Summary: "Guardian"}}
	assert.Equal(t, 1, m.refresh(context.Background()))

	// An explicit reload still degrades to an empty corpus.
	src.entries, src.err = nil, errors.New("gone")
	assert.Equal(t, 0, m.Reload(context.Background()))
	assert.Empty(t, m.Corpus())
}

func TestMatcher_ConcurrentReadersDuringReload(t *testing.T) {
	a := scenarioCorpus()
	b := rankedCorpus()
	src := &lockedSource{entries: a}
	m := NewMatcher(src)
	m.Reload(context.Background())

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				c := m.Corpus()
				// Every snapshot is one whole corpus, never a mix.
				if len(c) != len(a) && len(c) != len(b) {
					t.Errorf("unexpected corpus size %d", len(c))
					return
				}
				m.GetContext("origins of stars")
			}
		}()
	}
	for j := 0; j < 50; j++ {
		if j%2 == 0 {
			src.set(b)
		} else {
			src.set(a)
		}
		m.Reload(ctx)
	}
	wg.Wait()
}

type lockedSource struct {
	mu      sync.Mutex
	entries []model.Entry
}

func (s *lockedSource) Name() string { return "locked" }

func (s *lockedSource) Load(ctx context.Context) ([]model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries, nil
}

func (s *lockedSource) set(e []model.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = e
}
