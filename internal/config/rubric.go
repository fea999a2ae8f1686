package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/povarna/generative-ai-agents/interprep/internal/rubric"
	"go.yaml.in/yaml/v3"
)

const defaultRubricPath = "configs/rubric.yaml"

// LoadRubric builds the process-wide rubric. A non-empty path must exist; with an
// empty path the default location is tried and, when that file is missing, the
// built-in rubric for the given schema is returned.
func LoadRubric(path string, schema rubric.Schema) (*rubric.Definition, error) {
	explicit := path != ""
	if !explicit {
		path = defaultRubricPath
	}

	cfg, err := LoadRubricConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return rubric.Default(schema), nil
		}
		return nil, err
	}

	return cfg.Definition()
}

func LoadRubricConfig(path string) (*RubricConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RubricConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *RubricConfig) {
	if cfg.Rubric.Schema == "" {
		cfg.Rubric.Schema = string(rubric.SchemaFull)
	}
	if cfg.Rubric.Version == "" {
		cfg.Rubric.Version = "custom"
	}
	if len(cfg.Rubric.Categories) == 0 {
		cfg.Rubric.Categories = rubric.DefaultCategories
	}
}

func (c *RubricConfig) Validate() error {
	if strings.TrimSpace(c.Rubric.Text) == "" {
		return fmt.Errorf("rubric config missing text")
	}
	if _, err := rubric.ParseSchema(c.Rubric.Schema); err != nil {
		return fmt.Errorf("rubric config: %w", err)
	}
	for _, category := range c.Rubric.Categories {
		if category == "unknown" {
			return fmt.Errorf("rubric config: %q is reserved and cannot be a category", category)
		}
	}
	return nil
}

// Definition converts a validated config into the immutable rubric.
func (c *RubricConfig) Definition() (*rubric.Definition, error) {
	schema, err := rubric.ParseSchema(c.Rubric.Schema)
	if err != nil {
		return nil, err
	}
	return rubric.New(c.Rubric.Version, schema, c.Rubric.Text, c.Rubric.Categories)
}
