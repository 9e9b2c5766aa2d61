package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/akashic-lore/internal/lore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a corpus file into the store",
		Long:  "Import lore entries from a corpus file (JSON, YAML or TOML by extension) or from stdin. Entries with an existing id are replaced.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	cmd.Flags().String("as", lore.FormatJSON, "Format of stdin input: json, yaml or toml")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	as, _ := cmd.Flags().GetString("as")

	name := "stdin." + as
	var data []byte
	var err error
	if len(args) > 0 {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		exitErr("read input", err)
	}

	entries, err := lore.DecodeCorpus(name, data)
	if err != nil {
		exitErr("parse corpus", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), entries)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
