package lore

import (
	"fmt"
	"strings"

	"github.com/rcliao/akashic-lore/internal/model"
)

// Preamble opens every non-empty context block.
const Preamble = "The following entries from the Akashic Archive are relevant. Reference them in your answer where they apply."

// FormatContext renders entries into a context block for a prompt. It
// returns "" for no entries; callers omit the block entirely in that case.
func FormatContext(entries []model.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(Preamble)
	b.WriteString("\n\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, e.Title)
		b.WriteString(e.Body())
		b.WriteString("\n\n")
	}
	return b.String()
}
