package setup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/interprep/internal/recording"
	"github.com/povarna/generative-ai-agents/interprep/internal/rubric"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func validOpenAIConfig() *Config {
	cfg := LoadConfig()
	cfg.Provider = ProviderOpenAI
	cfg.OpenAIKey = "sk-test"
	cfg.OpenAIModelID = "gpt-4o-mini"
	return cfg
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"LLM_PROVIDER", "LLM_MAX_TOKENS", "LLM_TEMPERATURE", "LLM_HTTP_TIMEOUT", "RUBRIC_SCHEMA", "RUBRIC_CONFIG_PATH", "INTERPREP_API_PORT"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Provider != ProviderBedrock {
		t.Errorf("Provider = %q, want bedrock", cfg.Provider)
	}
	if cfg.MaxTokens != 1500 || cfg.Temperature != 0.2 || cfg.HTTPTimeout != time.Minute {
		t.Errorf("unexpected model defaults: %+v", cfg)
	}
	if cfg.RubricSchema != "full" || cfg.RubricConfigPath != "" || cfg.APIPort != "8080" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MAX_TOKENS", "900")
	t.Setenv("LLM_TEMPERATURE", "0.7")
	t.Setenv("LLM_HTTP_TIMEOUT", "15s")
	t.Setenv("MAX_TRANSCRIPT_CHARS", "not-a-number")
	t.Setenv("RUBRIC_CONFIG_PATH", "configs/team.yaml")

	cfg := LoadConfig()

	if cfg.Provider != ProviderOpenAI || cfg.MaxTokens != 900 || cfg.Temperature != 0.7 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.RubricConfigPath != "configs/team.yaml" {
		t.Errorf("RubricConfigPath = %q", cfg.RubricConfigPath)
	}
	if cfg.MaxTranscriptChars != 20000 {
		t.Errorf("bad integers should fall back to the default, got %d", cfg.MaxTranscriptChars)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid openai", mutate: func(*Config) {}},
		{name: "missing openai key", mutate: func(c *Config) { c.OpenAIKey = "" }, wantErr: "OpenAIKey"},
		{name: "missing claude model", mutate: func(c *Config) { c.Provider = ProviderBedrock; c.ClaudeModelID = "" }, wantErr: "ClaudeModelID"},
		{name: "unknown provider", mutate: func(c *Config) { c.Provider = "llama" }, wantErr: "Provider"},
		{name: "bad schema", mutate: func(c *Config) { c.RubricSchema = "v3" }, wantErr: "RubricSchema"},
		{name: "zero max tokens", mutate: func(c *Config) { c.MaxTokens = 0 }, wantErr: "MaxTokens"},
		{name: "temperature too high", mutate: func(c *Config) { c.Temperature = 3 }, wantErr: "Temperature"},
		{name: "port not numeric", mutate: func(c *Config) { c.APIPort = "http" }, wantErr: "APIPort"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := validOpenAIConfig()
			test.mutate(cfg)

			err := cfg.Validate()
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Fatalf("err = %v, want it to mention %s", err, test.wantErr)
			}
		})
	}
}

func TestWire_OpenAI(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	csvPath := filepath.Join(dir, "problems.csv")
	if err := os.WriteFile(csvPath, []byte("title,difficulty\nTwo Sum,Easy\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := validOpenAIConfig()
	cfg.RubricSchema = "legacy"
	cfg.RubricConfigPath = ""
	cfg.ProblemsCSVPath = csvPath
	cfg.RecordingsDir = filepath.Join(dir, "audio")

	deps, err := Wire(context.Background(), cfg, newTestLogger())
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}

	if deps.Executor == nil || deps.Lessons == nil || deps.Transcriber == nil {
		t.Fatalf("missing dependencies: %+v", deps)
	}
	if deps.Rubric.Schema() != rubric.SchemaLegacy {
		t.Errorf("schema = %s, want legacy", deps.Rubric.Schema())
	}
	if deps.Catalog.Len() != 1 {
		t.Errorf("catalog size = %d, want 1", deps.Catalog.Len())
	}
	if _, ok := deps.Archive.(*recording.LocalArchive); !ok {
		t.Errorf("archive = %T, want a local archive", deps.Archive)
	}
}

func TestWire_UsesRubricConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("RUBRIC_CONFIG_PATH", filepath.Join(dir, "ignored.yaml"))

	path := filepath.Join(dir, "team-rubric.yaml")
	yaml := "rubric:\n  version: team-1\n  schema: legacy\n  text: Score problem_id, complexity and clarity.\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := validOpenAIConfig()
	cfg.ProblemsCSVPath = filepath.Join(dir, "none.csv")
	cfg.RubricConfigPath = path

	deps, err := Wire(context.Background(), cfg, newTestLogger())
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}
	if deps.Rubric.Version() != "team-1" || deps.Rubric.Schema() != rubric.SchemaLegacy {
		t.Errorf("rubric = %s/%s, want team-1/legacy from the configured path", deps.Rubric.Version(), deps.Rubric.Schema())
	}

	cfg.RubricConfigPath = filepath.Join(dir, "missing.yaml")
	if _, err := Wire(context.Background(), cfg, newTestLogger()); err == nil {
		t.Error("Wire must fail when the configured rubric file is missing")
	}
}

func TestWire_MissingCatalogStartsEmpty(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := validOpenAIConfig()
	cfg.RubricConfigPath = ""
	cfg.ProblemsCSVPath = "does/not/exist.csv"

	deps, err := Wire(context.Background(), cfg, newTestLogger())
	if err != nil {
		t.Fatalf("Wire: %v", err)
	}
	if deps.Catalog.Len() != 0 {
		t.Errorf("catalog size = %d, want 0", deps.Catalog.Len())
	}
	if _, ok := deps.Archive.(recording.Discard); !ok {
		t.Errorf("archive = %T, want Discard", deps.Archive)
	}
}

func TestWire_MissingCredentialIsFatal(t *testing.T) {
	cfg := validOpenAIConfig()
	cfg.OpenAIKey = ""

	if _, err := Wire(context.Background(), cfg, newTestLogger()); err == nil {
		t.Fatal("Wire must fail without a model credential")
	}
}
