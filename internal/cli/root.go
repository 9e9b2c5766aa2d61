// Package cli implements the akashic CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/akashic-lore/internal/config"
	"github.com/rcliao/akashic-lore/internal/logging"
	"github.com/rcliao/akashic-lore/internal/lore"
	"github.com/rcliao/akashic-lore/internal/store"
)

var (
	cfgPath    string
	dbPath     string
	formatFlag string
	verbose    bool

	cfg    config.Config
	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "akashic",
	Short: "Lore matching for the Akashic Archive",
	Long: `akashic finds the lore entries relevant to a question and renders them into a
context block for the Oracle and Keeper assistants. Lore is read from corpus
files (JSON, YAML or TOML) or from a local SQLite store.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Config file (default: ~/.akashic/config.toml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $AKASHIC_DB or ~/.akashic/lore.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	// .env is optional
	_ = godotenv.Load()

	c, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.Store.Path = dbPath
	}
	l, err := logging.New(c.Log.Level, verbose)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	return nil
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.Store.Path)
}

// loreSources maps the configured source list to lore sources, in order.
func loreSources() []lore.Source {
	var sources []lore.Source
	for _, s := range cfg.Lore.Sources {
		if s == config.DBSource {
			sources = append(sources, store.PathSource{Path: cfg.Store.Path})
			continue
		}
		sources = append(sources, lore.FileSource{Path: s})
	}
	return sources
}

// loreFiles returns the file sources, for watching.
func loreFiles() []string {
	var files []string
	for _, s := range cfg.Lore.Sources {
		if s != config.DBSource {
			files = append(files, s)
		}
	}
	return files
}

func newMatcher(limit int) *lore.Matcher {
	if limit <= 0 {
		limit = cfg.Lore.Limit
	}
	src := lore.FirstOf(logger, loreSources()...)
	return lore.NewMatcher(src, lore.WithLimit(limit), lore.WithLogger(logger))
}

func textOutput() bool {
	return formatFlag == "text"
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func exitErr(msg string, err error) {
	logger.Sync()
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
