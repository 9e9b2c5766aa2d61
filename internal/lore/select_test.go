package lore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/akashic-lore/internal/model"
)

// rankedCorpus scores 1, 0, 5, 10, 3 against rankedQuery.
func rankedCorpus() []model.Entry {
	return []model.Entry{
		{ID: "relics", Title: "Relics", Summary: "ancient remains"},
		{ID: "mana", Title: "Mana", Summary: "Currency of the realm"},
		{ID: "star-lore", Title: "Star Lore", Summary: "Points of light", Keywords: []string{"stars"}},
		{ID: "origins", Title: "Origins", Summary: "Where everything began"},
		{ID: "heavens", Title: "Heavens", Summary: "Movements above", Keywords: []string{"celestial alignment"}},
	}
}

const rankedQuery = "origins of stars and celestial ancient things"

func ids(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestRank_Scores(t *testing.T) {
	ranked := Rank(rankedQuery, rankedCorpus(), 10)
	require.Len(t, ranked, 4)

	var scores []int
	for _, r := range ranked {
		scores = append(scores, r.Score)
	}
	assert.Equal(t, []int{10, 5, 3, 1}, scores)
}

func TestSelectRelevant_TopK(t *testing.T) {
	got := SelectRelevant(rankedQuery, rankedCorpus(), 3)
	assert.Equal(t, []string{"origins", "star-lore", "heavens"}, ids(got))
}

func TestSelectRelevant_DefaultLimit(t *testing.T) {
	got := SelectRelevant(rankedQuery, rankedCorpus(), 0)
	assert.Len(t, got, DefaultLimit)
}

func TestSelectRelevant_LimitBounds(t *testing.T) {
	corpus := rankedCorpus()
	for k := 1; k <= 6; k++ {
		got := SelectRelevant(rankedQuery, corpus, k)
		assert.LessOrEqual(t, len(got), k)
		assert.LessOrEqual(t, len(got), 4)
		for _, e := range got {
			assert.Positive(t, Score(rankedQuery, e), "entry %s selected with zero score", e.ID)
		}
	}
}

func TestSelectRelevant_EmptyCorpus(t *testing.T) {
	got := SelectRelevant("anything", nil, 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = SelectRelevant("anything", []model.Entry{}, 3)
	assert.Empty(t, got)
}

func TestSelectRelevant_NoMatches(t *testing.T) {
	got := SelectRelevant("completely unrelated gibberish query xyz", rankedCorpus(), 3)
	assert.Empty(t, got)
}

func TestSelectRelevant_StableTies(t *testing.T) {
	corpus := []model.Entry{
		{ID: "b", Title: "Second", Keywords: []string{"stars"}},
		{ID: "a", Title: "First", Keywords: []string{"stars"}},
		{ID: "c", Title: "Third", Keywords: []string{"stars"}},
	}
	got := SelectRelevant("the stars", corpus, 3)
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func TestSelectRelevant_Deterministic(t *testing.T) {
	corpus := rankedCorpus()
	first := SelectRelevant(rankedQuery, corpus, 3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectRelevant(rankedQuery, corpus, 3))
	}
}

func TestSelectRelevant_DoesNotMutateCorpus(t *testing.T) {
	corpus := rankedCorpus()
	SelectRelevant(rankedQuery, corpus, 3)
	assert.Equal(t, rankedCorpus(), corpus)
}
