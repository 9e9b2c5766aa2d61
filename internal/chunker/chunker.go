// Package chunker splits markdown lore documents into sections and turns
// them into corpus entries.
package chunker

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rcliao/akashic-lore/internal/model"
)

// DefaultMaxSize is the passage length above which a section is split into parts.
const DefaultMaxSize = 2000

// Options configures ingestion.
type Options struct {
	// MaxSize caps the passage length of a single entry. Zero uses
	// DefaultMaxSize; a negative value disables splitting.
	MaxSize int
	// Source is stamped on every produced entry.
	Source string
}

// Section is a headed block of a markdown document.
type Section struct {
	Title     string
	Level     int
	Body      string
	StartLine int
	EndLine   int
}

// Sections splits text on markdown headings. Text before the first
// heading is returned as a section with an empty title. Headings inside
// fenced code blocks are ignored.
func Sections(text string) []Section {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var sections []Section
	cur := Section{StartLine: 1}
	var body []string
	inFence := false

	flush := func(endLine int) {
		cur.Body = strings.TrimSpace(strings.Join(body, "\n"))
		cur.EndLine = endLine
		if cur.Title != "" || cur.Body != "" {
			sections = append(sections, cur)
		}
		body = nil
	}

	for i, line := range lines {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}
		if !inFence {
			if level, title, ok := heading(trimmed); ok {
				flush(lineNum - 1)
				cur = Section{Title: title, Level: level, StartLine: lineNum}
				continue
			}
		}
		body = append(body, line)
	}
	flush(len(lines))

	return sections
}

// heading parses an ATX heading line like "## Title".
func heading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	title := strings.TrimSpace(strings.TrimRight(line[level:], "# "))
	if title == "" {
		return 0, "", false
	}
	return level, title, true
}

// Entries turns every titled, non-empty section of text into a lore entry.
// A "Keywords:" line in a section supplies its keywords. The summary is the
// first sentence of the section; the passage is the full body.
func Entries(text string, opts Options) []model.Entry {
	maxSize := opts.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}

	var entries []model.Entry
	ids := map[string]int{}

	for _, sec := range Sections(text) {
		if sec.Title == "" {
			continue
		}
		body, keywords := extractKeywords(sec.Body)
		if body == "" {
			continue
		}

		parts := []string{body}
		if maxSize > 0 && len(body) > maxSize {
			parts = hardSplit(body, maxSize)
		}

		for i, part := range parts {
			title := sec.Title
			if len(parts) > 1 {
				title = fmt.Sprintf("%s (part %d)", sec.Title, i+1)
			}
			id := Slug(title)
			if id == "" {
				// Titles with no letters or digits, like "???".
				id = fmt.Sprintf("section-%d", sec.StartLine)
			}
			ids[id]++
			if n := ids[id]; n > 1 {
				id = fmt.Sprintf("%s-%d", id, n)
			}

			e := model.Entry{
				ID:       id,
				Title:    title,
				Summary:  firstSentence(part),
				Keywords: keywords,
				Source:   opts.Source,
			}
			if e.Summary != part {
				e.Passage = part
			}
			entries = append(entries, e)
		}
	}
	return entries
}

// extractKeywords removes a "Keywords: a, b" line from body and returns
// the remaining text and the keywords.
func extractKeywords(body string) (string, []string) {
	var keep []string
	var keywords []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 9 && strings.EqualFold(trimmed[:9], "keywords:") {
			for _, k := range strings.Split(trimmed[9:], ",") {
				if k = strings.TrimSpace(k); k != "" {
					keywords = append(keywords, k)
				}
			}
			continue
		}
		keep = append(keep, line)
	}
	return strings.TrimSpace(strings.Join(keep, "\n")), keywords
}

// firstSentence returns the first sentence of the first paragraph of text.
func firstSentence(text string) string {
	para := text
	if i := strings.Index(para, "\n\n"); i >= 0 {
		para = para[:i]
	}
	para = strings.Join(strings.Fields(para), " ")
	for i, r := range para {
		if (r == '.' || r == '!' || r == '?') && (i+1 == len(para) || para[i+1] == ' ') {
			return para[:i+1]
		}
	}
	return para
}

// Slug lowercases s and joins its letters and digits with dashes.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// hardSplit breaks text that exceeds maxSize on paragraph boundaries, and
// on line boundaries for oversized paragraphs.
func hardSplit(text string, maxSize int) []string {
	var results []string
	var current []string
	curLen := 0

	flush := func() {
		if t := strings.TrimSpace(strings.Join(current, "\n")); t != "" {
			results = append(results, t)
		}
		current = nil
		curLen = 0
	}

	for _, para := range strings.Split(text, "\n\n") {
		for _, line := range strings.Split(para, "\n") {
			if curLen+len(line) > maxSize && len(current) > 0 {
				flush()
			}
			current = append(current, line)
			curLen += len(line) + 1 // +1 for newline
		}
		current = append(current, "")
		curLen++
	}
	flush()

	return results
}
