package chunker

import (
	"reflect"
	"strings"
	"testing"
)

const doc = `Preface text that is not an entry heading.

# Origins

The first tablet of creation. It reveals how the world began.

Keywords: creation, first tablet

## Celestial Cycles

The movements of the heavenly bodies.

` + "```" + `
# not a heading
` + "```" + `

### Empty

# Mana
Currency of the realm`

func TestSections(t *testing.T) {
	secs := Sections(doc)
	if len(secs) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(secs))
	}
	if secs[0].Title != "" || !strings.HasPrefix(secs[0].Body, "Preface") {
		t.Errorf("expected untitled preface first, got %+v", secs[0])
	}
	if secs[1].Title != "Origins" || secs[1].Level != 1 || secs[1].StartLine != 3 {
		t.Errorf("unexpected origins section: %+v", secs[1])
	}
	if secs[2].Title != "Celestial Cycles" || secs[2].Level != 2 {
		t.Errorf("unexpected cycles section: %+v", secs[2])
	}
	if !strings.Contains(secs[2].Body, "# not a heading") {
		t.Errorf("fenced heading should stay in body, got %q", secs[2].Body)
	}
	if secs[3].Title != "Empty" || secs[3].Body != "" {
		t.Errorf("unexpected empty section: %+v", secs[3])
	}
	if secs[4].Title != "Mana" || secs[4].Body != "Currency of the realm" {
		t.Errorf("unexpected mana section: %+v", secs[4])
	}
}

func TestSections_EmptyInput(t *testing.T) {
	if secs := Sections(""); len(secs) != 0 {
		t.Errorf("expected no sections, got %v", secs)
	}
}

func TestEntries(t *testing.T) {
	entries := Entries(doc, Options{Source: "codex"})
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	origins := entries[0]
	if origins.ID != "origins" || origins.Title != "Origins" || origins.Source != "codex" {
		t.Errorf("unexpected origins entry: %+v", origins)
	}
	if origins.Summary != "The first tablet of creation." {
		t.Errorf("unexpected summary %q", origins.Summary)
	}
	if origins.Passage != "The first tablet of creation. It reveals how the world began." {
		t.Errorf("unexpected passage %q", origins.Passage)
	}
	if !reflect.DeepEqual(origins.Keywords, []string{"creation", "first tablet"}) {
		t.Errorf("unexpected keywords %v", origins.Keywords)
	}

	if entries[1].ID != "celestial-cycles" {
		t.Errorf("expected slug id, got %q", entries[1].ID)
	}

	mana := entries[2]
	if mana.Summary != "Currency of the realm" || mana.Passage != "" {
		t.Errorf("single-sentence section should have no passage: %+v", mana)
	}
}

func TestEntries_DuplicateTitles(t *testing.T) {
	entries := Entries("# Keeper\nOne.\n# Keeper\nTwo.", Options{})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "keeper" || entries[1].ID != "keeper-2" {
		t.Errorf("expected keeper, keeper-2; got %s, %s", entries[0].ID, entries[1].ID)
	}
}

func TestEntries_PunctuationTitle(t *testing.T) {
	entries := Entries("Intro.\n\n## ???\nA riddle with no name.\n## ...\nAnother.", Options{})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "section-3" || entries[1].ID != "section-5" {
		t.Errorf("expected line-based ids, got %q and %q", entries[0].ID, entries[1].ID)
	}
	for _, e := range entries {
		if !e.Valid() {
			t.Errorf("entry %+v would be dropped by the loader", e)
		}
	}
}

func TestEntries_SplitsLongSections(t *testing.T) {
	para := strings.Repeat("The archive remembers. ", 10) // ~230 chars
	text := "# Memory\n\n" + para + "\n\n" + para + "\n\n" + para

	entries := Entries(text, Options{MaxSize: 300})
	if len(entries) < 2 {
		t.Fatalf("expected the section to be split, got %d entries", len(entries))
	}
	if entries[0].Title != "Memory (part 1)" || entries[0].ID != "memory-part-1" {
		t.Errorf("unexpected part naming: %q / %q", entries[0].Title, entries[0].ID)
	}
	for _, e := range entries {
		if len(e.Body()) > 300 {
			t.Errorf("part %q exceeds max size: %d", e.Title, len(e.Body()))
		}
	}

	unsplit := Entries(text, Options{MaxSize: -1})
	if len(unsplit) != 1 {
		t.Errorf("expected no split with negative MaxSize, got %d", len(unsplit))
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Celestial Cycles":   "celestial-cycles",
		"  The Keeper's Oath": "the-keeper-s-oath",
		"Tablet II: Dawn!":   "tablet-ii-dawn",
		"":                   "",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}
