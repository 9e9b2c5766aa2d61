package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/akashic-lore/internal/lore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored lore as a corpus file",
		Long:  "Write every live stored entry to stdout as a corpus document that the matcher and import can read.",
		Run:   runExport,
	}

	cmd.Flags().String("source", "", "Filter by source label")
	cmd.Flags().String("as", lore.FormatJSON, "Output format: json, yaml or toml")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	source, _ := cmd.Flags().GetString("source")
	as, _ := cmd.Flags().GetString("as")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.ExportAll(cmd.Context(), source)
	if err != nil {
		exitErr("export", err)
	}

	data, err := lore.EncodeCorpus(as, entries)
	if err != nil {
		exitErr("export", err)
	}
	cmd.OutOrStdout().Write(data)
}
