package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/akashic-lore/internal/chunker"
	"github.com/rcliao/akashic-lore/internal/lore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ingest [file.md]",
		Short: "Turn a markdown lore document into entries",
		Long:  "Split a markdown document on its headings; each titled section becomes a lore entry in the store. A \"Keywords: a, b\" line in a section sets its keywords.",
		Args:  cobra.ExactArgs(1),
		Run:   runIngest,
	}

	cmd.Flags().String("source", "", "Source label (default: file name)")
	cmd.Flags().Int("max-size", chunker.DefaultMaxSize, "Split passages longer than this; negative disables")
	cmd.Flags().Bool("dry-run", false, "Print the entries as a corpus instead of storing them")

	RootCmd.AddCommand(cmd)
}

func runIngest(cmd *cobra.Command, args []string) {
	source, _ := cmd.Flags().GetString("source")
	maxSize, _ := cmd.Flags().GetInt("max-size")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitErr("read file", err)
	}
	if source == "" {
		source = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}

	entries := chunker.Entries(string(data), chunker.Options{MaxSize: maxSize, Source: source})
	if len(entries) == 0 {
		exitErr("ingest", fmt.Errorf("no titled sections in %s", args[0]))
	}

	if dryRun {
		out, err := lore.EncodeCorpus(lore.FormatJSON, entries)
		if err != nil {
			exitErr("ingest", err)
		}
		cmd.OutOrStdout().Write(out)
		return
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), entries)
	if err != nil {
		exitErr("ingest", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"ingested":%d,"source":%q}`+"\n", imported, source)
}
