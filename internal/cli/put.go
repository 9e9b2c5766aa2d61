package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/akashic-lore/internal/config"
	"github.com/rcliao/akashic-lore/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "put [passage]",
		Short: "Store a lore entry",
		Long:  "Store or replace a lore entry. The passage can be a positional arg or piped via stdin.",
		Run:   runPut,
	}

	cmd.Flags().String("id", "", "Entry id (generated when empty; an existing id is replaced)")
	cmd.Flags().StringP("title", "t", "", "Title (required)")
	cmd.Flags().StringP("summary", "s", "", "Short summary")
	cmd.Flags().StringP("keywords", "k", "", "Comma-separated keywords")
	cmd.Flags().String("source", "", "Provenance label")

	cmd.MarkFlagRequired("title")

	RootCmd.AddCommand(cmd)
}

func runPut(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")
	summary, _ := cmd.Flags().GetString("summary")
	keywords, _ := cmd.Flags().GetString("keywords")
	source, _ := cmd.Flags().GetString("source")

	// Passage: positional arg first, then check stdin
	var passage string
	if len(args) > 0 {
		passage = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			passage = string(b)
		}
	}

	if strings.TrimSpace(summary) == "" && strings.TrimSpace(passage) == "" {
		exitErr("put", fmt.Errorf("a summary or passage is required"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.Put(cmd.Context(), store.PutParams{
		ID:       id,
		Title:    strings.TrimSpace(title),
		Summary:  strings.TrimSpace(summary),
		Keywords: config.SplitList(keywords),
		Passage:  strings.TrimSpace(passage),
		Source:   source,
	})
	if err != nil {
		exitErr("put", err)
	}

	printJSON(cmd, e)
}
