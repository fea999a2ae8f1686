package config

// RubricConfig is the optional YAML override for the built-in rubric.
type RubricConfig struct {
	Rubric RubricSection `yaml:"rubric"`
}

type RubricSection struct {
	Version    string   `yaml:"version"`
	Schema     string   `yaml:"schema"`
	Text       string   `yaml:"text"`
	Categories []string `yaml:"categories"`
}
