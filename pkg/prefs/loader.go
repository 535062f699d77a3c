package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/jsonml/pkg/codec"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/state"
	"gopkg.in/yaml.v3"
)

// Config is the content of a preferences file.
type Config struct {
	Tokens *Table
	State  domain.State
}

// configFile represents the structure of prefs.yaml
type configFile struct {
	Tokens map[string]any `yaml:"tokens" json:"tokens"`
	State  map[string]any `yaml:"state" json:"state"`
}

// LoadFile reads a preferences file (YAML or JSON). Tokens it declares are
// layered over the built-in defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefs: %w", err)
	}

	var raw configFile
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return fromFile(raw)
}

func fromFile(raw configFile) (*Config, error) {
	table := Defaults()
	for name, value := range raw.Tokens {
		if strings.TrimSpace(name) == "" {
			continue
		}
		table.Set(domain.Token(name), codec.FromPlain(value))
	}

	st := domain.NewState()
	if len(raw.State) > 0 {
		decoded, err := state.Decode(raw.State)
		if err != nil {
			return nil, fmt.Errorf("invalid state section: %w", err)
		}
		st = decoded
	}

	return &Config{Tokens: table, State: st}, nil
}
