package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the serializer options plus I/O settings that are
// more comfortable in a config file than on the command line. Pointer
// fields distinguish "unset" from an explicit false.
type FileConfig struct {
	ScriptingEnabled    *bool  `yaml:"scriptingEnabled" json:"scriptingEnabled"`
	IncludeRoot         bool   `yaml:"includeRoot" json:"includeRoot"`
	CreateMissingParent bool   `yaml:"createMissingParent" json:"createMissingParent"`
	Input               string `yaml:"input" json:"input" validate:"omitempty,filepath"`
	Output              string `yaml:"output" json:"output" validate:"omitempty,filepath"`
	MaxInputBytes       int64  `yaml:"maxInputBytes" json:"maxInputBytes" validate:"gte=0"`
}

// loadConfig reads and validates a YAML or JSON config file, chosen by
// extension.
func loadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .yml, .yaml, or .json)", ext)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}
