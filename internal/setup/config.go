package setup

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ProviderBedrock = "bedrock"
	ProviderOpenAI  = "openai"
)

type Config struct {
	Provider      string `validate:"oneof=bedrock openai"`
	AWSRegion     string `validate:"required_if=Provider bedrock"`
	ClaudeModelID string `validate:"required_if=Provider bedrock"`
	OpenAIKey     string `validate:"required_if=Provider openai"`
	OpenAIModelID string `validate:"required_if=Provider openai"`

	MaxTokens   int           `validate:"gt=0"`
	Temperature float64       `validate:"gte=0,lte=2"`
	HTTPTimeout time.Duration `validate:"gte=0"`

	RubricSchema       string `validate:"omitempty,oneof=legacy full"`
	RubricConfigPath   string
	MaxTranscriptChars int    `validate:"gte=0"`
	TranscriptionModel string

	ProblemsCSVPath  string
	RecordingsDir    string
	RecordingsBucket string

	RedisAddr     string
	RedisPassword string

	APIPort   string `validate:"required,numeric"`
	LogLevel  string
	LogFormat string `validate:"oneof=console json"`
}

func LoadConfig() *Config {
	return &Config{
		Provider:      getEnv("LLM_PROVIDER", ProviderBedrock),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID: getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:     getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID: getEnv("OPEN_AI_MODEL_ID", "gpt-4o-mini"),

		MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1500),
		Temperature: getEnvFloat("LLM_TEMPERATURE", 0.2),
		HTTPTimeout: getEnvDuration("LLM_HTTP_TIMEOUT", 60*time.Second),

		RubricSchema:       getEnv("RUBRIC_SCHEMA", "full"),
		RubricConfigPath:   getEnv("RUBRIC_CONFIG_PATH", ""),
		MaxTranscriptChars: getEnvInt("MAX_TRANSCRIPT_CHARS", 20000),
		TranscriptionModel: getEnv("TRANSCRIPTION_MODEL", "whisper-1"),

		ProblemsCSVPath:  getEnv("PROBLEMS_CSV_PATH", "data/problems.csv"),
		RecordingsDir:    getEnv("RECORDINGS_DIR", ""),
		RecordingsBucket: getEnv("RECORDINGS_S3_BUCKET", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		APIPort:   getEnv("INTERPREP_API_PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

// Validate reports missing credentials and out-of-range settings. A failure here is fatal at startup.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
