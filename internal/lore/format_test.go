package lore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcliao/akashic-lore/internal/model"
)

func TestFormatContext_Empty(t *testing.T) {
	assert.Equal(t, "", FormatContext(nil))
	assert.Equal(t, "", FormatContext([]model.Entry{}))
}

func TestFormatContext_PassageOverSummary(t *testing.T) {
	entries := []model.Entry{
		{ID: "1", Title: "Origins", Summary: "How it began", Passage: "In the beginning there was only the Archive."},
		{ID: "2", Title: "Celestial Cycles", Summary: "The movements of the heavenly bodies"},
	}

	want := Preamble + "\n\n" +
		"[1] Origins\nIn the beginning there was only the Archive.\n\n" +
		"[2] Celestial Cycles\nThe movements of the heavenly bodies\n\n"
	assert.Equal(t, want, FormatContext(entries))
}

func TestFormatContext_NoTruncation(t *testing.T) {
	long := ""
	for i := 0; i < 200; i++ {
		long += "The tablets remember every word spoken beneath the stars. "
	}
	out := FormatContext([]model.Entry{{ID: "1", Title: "Memory", Passage: long}})
	assert.Contains(t, out, long)
}
