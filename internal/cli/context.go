package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/akashic-lore/internal/lore"
	"github.com/rcliao/akashic-lore/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "context [query]",
		Short: "Render the lore context block for a query",
		Long:  "Select the lore entries relevant to the query and print the context block that is prepended to an assistant prompt. Prints nothing when no lore is relevant.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runContext,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max entries (default: lore.limit from config)")

	RootCmd.AddCommand(cmd)
}

type contextResult struct {
	Query   string        `json:"query"`
	Context string        `json:"context"`
	Entries []model.Entry `json:"entries"`
}

func runContext(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	m := newMatcher(limit)
	entries := m.Relevant(query)

	if textOutput() {
		fmt.Fprint(cmd.OutOrStdout(), lore.FormatContext(entries))
		return
	}
	printJSON(cmd, contextResult{
		Query:   query,
		Context: lore.FormatContext(entries),
		Entries: entries,
	})
}
