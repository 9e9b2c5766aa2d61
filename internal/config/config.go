// Package config loads akashic configuration from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DBSource names the SQLite store in the lore source list.
const DBSource = "db"

// Config holds all akashic configuration.
type Config struct {
	Lore  LoreConfig  `toml:"lore"`
	Store StoreConfig `toml:"store"`
	LLM   LLMConfig   `toml:"llm"`
	Log   LogConfig   `toml:"log"`
}

// LoreConfig configures corpus loading and matching.
type LoreConfig struct {
	// Sources are tried in order; the first that loads wins. Each is a
	// corpus file path or "db" for the SQLite store.
	Sources []string `toml:"sources"`
	Limit   int      `toml:"limit"`
}

// StoreConfig configures the SQLite lore store.
type StoreConfig struct {
	Path string `toml:"path"`
}

// LLMConfig configures the assistants' text-generation backend.
type LLMConfig struct {
	Model       string  `toml:"model"`
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	Persona     string  `toml:"persona"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Dir returns the akashic home directory (~/.akashic).
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".akashic")
}

// DefaultPath is the config file used when none is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Lore: LoreConfig{
			Sources: []string{
				"lore.json",
				filepath.Join("data", "lore.json"),
				filepath.Join(Dir(), "lore.json"),
				DBSource,
			},
			Limit: 3,
		},
		Store: StoreConfig{Path: filepath.Join(Dir(), "lore.db")},
		LLM: LLMConfig{
			Model:     "gpt-4o-mini",
			MaxTokens: 800,
			Persona:   "oracle",
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	cfg.expandHome()
	return cfg, nil
}

// applyEnv overrides settings from AKASHIC_* and OPENAI_API_KEY.
func (c *Config) applyEnv() {
	if v := os.Getenv("AKASHIC_DB"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("AKASHIC_LORE"); v != "" {
		c.Lore.Sources = SplitList(v)
	}
	if v := os.Getenv("AKASHIC_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("AKASHIC_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

func (c *Config) expandHome() {
	c.Store.Path = expandHome(c.Store.Path)
	for i, s := range c.Lore.Sources {
		c.Lore.Sources[i] = expandHome(s)
	}
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Save writes cfg to path as TOML, creating the directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
