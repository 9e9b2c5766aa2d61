package lore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/akashic-lore/internal/model"
)

// Corpus file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatOf picks the corpus format for a file name from its extension.
// Unknown extensions are JSON.
func FormatOf(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// DecodeCorpus parses a corpus document, choosing the format by the
// extension of name.
func DecodeCorpus(name string, data []byte) ([]model.Entry, error) {
	var cf model.CorpusFile
	var err error
	switch FormatOf(name) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cf)
	case FormatTOML:
		err = toml.Unmarshal(data, &cf)
	default:
		err = json.Unmarshal(bytes.TrimSpace(data), &cf)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return cf.Entries, nil
}

// EncodeCorpus renders entries as a corpus document in format.
func EncodeCorpus(format string, entries []model.Entry) ([]byte, error) {
	if entries == nil {
		entries = []model.Entry{}
	}
	cf := model.CorpusFile{Entries: entries}
	switch format {
	case FormatYAML:
		return yaml.Marshal(cf)
	case FormatTOML:
		return toml.Marshal(cf)
	case FormatJSON, "":
		b, err := json.MarshalIndent(cf, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown corpus format %q", format)
	}
}
