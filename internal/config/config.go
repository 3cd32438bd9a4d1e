// Package config handles application configuration and setup
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/stew3d/internal/options"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Load reads the JSON config file. Unknown fields are rejected to catch
// misspelled option names.
func Load(fileName string) (options.File, error) {
	var cfg options.File

	data, err := os.ReadFile(fileName)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", fileName, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config file %s: %w", fileName, err)
	}

	if cfg.Color != "" {
		if cfg.Color, err = options.NormalizeColor(cfg.Color); err != nil {
			return cfg, fmt.Errorf("invalid config file %s: %w", fileName, err)
		}
	}
	return cfg, nil
}

// Schema returns the JSON schema of the config file.
func Schema() ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	bts, err := json.MarshalIndent(reflector.Reflect(&options.File{}), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return bts, nil
}
