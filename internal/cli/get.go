package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieve a stored lore entry",
		Run:   runGet,
	}

	cmd.Flags().String("id", "", "Entry id (required)")
	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.Get(cmd.Context(), id)
	if err != nil {
		exitErr("get", err)
	}

	if textOutput() {
		fmt.Fprint(cmd.OutOrStdout(), renderEntry(e.Entry, -1))
		return
	}
	printJSON(cmd, e)
}
