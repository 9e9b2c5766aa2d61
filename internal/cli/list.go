package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/akashic-lore/internal/model"
	"github.com/rcliao/akashic-lore/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored lore entries",
		Run:   runList,
	}

	cmd.Flags().String("source", "", "Filter by source label")
	cmd.Flags().IntP("limit", "l", 20, "Max results")
	cmd.Flags().Bool("ids-only", false, "Only output id and title")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.List(cmd.Context(), store.ListParams{
		Source: source,
		Limit:  limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if idsOnly {
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.ID, e.Title)
		}
		return
	}
	if textOutput() {
		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), renderEntry(e.Entry, -1))
		}
		return
	}

	if entries == nil {
		entries = []model.StoredEntry{}
	}
	printJSON(cmd, entries)
}
