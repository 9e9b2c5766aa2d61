// Package lore matches free-text queries against a small corpus of lore
// entries and renders the best matches into a context block for a
// text-generation prompt.
package lore

import (
	"strings"
	"unicode/utf8"

	"github.com/rcliao/akashic-lore/internal/model"
)

// Score weights.
const (
	TitleWeight          = 10
	KeywordWeight        = 5
	PartialKeywordWeight = 3
	SummaryWordWeight    = 1

	// minWordLen is the length a word must exceed to count in partial
	// keyword and summary matching.
	minWordLen = 4
)

// Score returns the relevance of entry e to query. Zero means no match.
func Score(query string, e model.Entry) int {
	q := strings.ToLower(query)
	score := 0

	if title := strings.ToLower(e.Title); title != "" && strings.Contains(q, title) {
		score += TitleWeight
	}

	for _, kw := range e.Keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(q, kw) {
			score += KeywordWeight
		}
		if partialKeywordMatch(q, kw) {
			score += PartialKeywordWeight
		}
	}

	// Repeated summary words are counted once per occurrence.
	for _, w := range strings.Fields(strings.ToLower(e.Summary)) {
		if longWord(w) && strings.Contains(q, w) {
			score += SummaryWordWeight
		}
	}

	return score
}

// partialKeywordMatch reports whether at least half (rounded up) of a
// multi-word keyword's words are long words found in q.
func partialKeywordMatch(q, kw string) bool {
	words := strings.Fields(kw)
	if len(words) < 2 {
		return false
	}
	hits := 0
	for _, w := range words {
		if longWord(w) && strings.Contains(q, w) {
			hits++
		}
	}
	return hits >= (len(words)+1)/2
}

func longWord(w string) bool {
	return utf8.RuneCountInString(w) > minWordLen
}
