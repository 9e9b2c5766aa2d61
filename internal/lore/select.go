package lore

import (
	"sort"

	"github.com/rcliao/akashic-lore/internal/model"
)

// DefaultLimit is the number of entries selected when no limit is given.
const DefaultLimit = 3

// Scored pairs an entry with its score for a query.
type Scored struct {
	Entry model.Entry `json:"entry"`
	Score int         `json:"score"`
}

// Rank scores every entry in corpus against query, drops non-matches and
// returns at most limit results ordered by score descending. Entries with
// equal scores keep their corpus order.
func Rank(query string, corpus []model.Entry, limit int) []Scored {
	if len(corpus) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var candidates []Scored
	for _, e := range corpus {
		if s := Score(query, e); s > 0 {
			candidates = append(candidates, Scored{Entry: e, Score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// SelectRelevant returns the entries of corpus most relevant to query,
// best first, at most limit of them.
func SelectRelevant(query string, corpus []model.Entry, limit int) []model.Entry {
	ranked := Rank(query, corpus, limit)
	if len(ranked) == 0 {
		return []model.Entry{}
	}
	out := make([]model.Entry, len(ranked))
	for i, r := range ranked {
		out[i] = r.Entry
	}
	return out
}
