package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/akashic-lore/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bodyStyle  = lipgloss.NewStyle().PaddingLeft(2).Width(88)
)

// renderEntry formats one entry for terminal output. score < 0 omits it.
func renderEntry(e model.Entry, score int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(e.Title))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render("(" + e.ID + ")"))
	if score >= 0 {
		b.WriteString(" ")
		b.WriteString(scoreStyle.Render(fmt.Sprintf("score %d", score)))
	}
	b.WriteString("\n")
	if len(e.Keywords) > 0 {
		b.WriteString(bodyStyle.Render(dimStyle.Render("keywords: " + strings.Join(e.Keywords, ", "))))
		b.WriteString("\n")
	}
	b.WriteString(bodyStyle.Render(e.Body()))
	b.WriteString("\n")
	return b.String()
}
