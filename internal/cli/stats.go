package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/akashic-lore/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show lore statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

type statsResult struct {
	Store        *store.Stats `json:"store"`
	CorpusSource string       `json:"corpus_sources"`
	CorpusSize   int          `json:"corpus_entries"`
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, err := s.Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}

	m := newMatcher(0)
	printJSON(cmd, statsResult{
		Store:        st,
		CorpusSource: strings.Join(cfg.Lore.Sources, ","),
		CorpusSize:   len(m.Corpus()),
	})
}
