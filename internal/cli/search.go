package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/akashic-lore/internal/lore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Rank lore entries against a query",
		Long:  "Score every lore entry against the query and list the matches, best first, with their scores.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 10, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	m := newMatcher(limit)
	ranked := lore.Rank(query, m.Corpus(), limit)

	if textOutput() {
		if len(ranked) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("no matching lore"))
			return
		}
		for _, r := range ranked {
			fmt.Fprintln(cmd.OutOrStdout(), renderEntry(r.Entry, r.Score))
		}
		return
	}

	if ranked == nil {
		ranked = []lore.Scored{}
	}
	printJSON(cmd, ranked)
}
