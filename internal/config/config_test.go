package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"AKASHIC_DB", "AKASHIC_LORE", "AKASHIC_MODEL", "AKASHIC_LOG_LEVEL", "OPENAI_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Lore.Sources, cfg.Lore.Sources)
	assert.Equal(t, 3, cfg.Lore.Limit)
	assert.Equal(t, DBSource, cfg.Lore.Sources[len(cfg.Lore.Sources)-1])
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[lore]
sources = ["codex.yaml", "db"]
limit = 5

[llm]
model = "gpt-4o"
persona = "keeper"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"codex.yaml", "db"}, cfg.Lore.Sources)
	assert.Equal(t, 5, cfg.Lore.Limit)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "keeper", cfg.LLM.Persona)
	assert.Equal(t, Default().Store.Path, cfg.Store.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store]\npath = \"/tmp/file.db\"\n"), 0o644))

	t.Setenv("AKASHIC_DB", "/tmp/env.db")
	t.Setenv("AKASHIC_LORE", "a.json, ,b.toml")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.Store.Path)
	assert.Equal(t, []string{"a.json", "b.toml"}, cfg.Lore.Sources)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
}

func TestLoad_BadTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[lore\nsources = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ExpandsHome(t *testing.T) {
	clearEnv(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("AKASHIC_LORE", "~/lore.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, "lore.json")}, cfg.Lore.Sources)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Lore.Limit = 7
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Lore.Limit)
	assert.Equal(t, cfg.LLM.Model, got.LLM.Model)
}
