package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// GenerateConfig holds settings for the AI draft generator
type GenerateConfig struct {
	APIKey          string        `env:"OPENAI_API_KEY"`
	Model           string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL         string        `env:"OPENAI_BASE_URL"`
	Timeout         time.Duration `env:"OPENAI_TIMEOUT" envDefault:"120s"`
	MaxPromptLength int           `env:"GENERATE_MAX_PROMPT_LENGTH" envDefault:"300"`
}

// LoadGenerateConfig loads AI generation configuration from environment variables
func LoadGenerateConfig() (*GenerateConfig, error) {
	cfg, err := env.ParseAs[GenerateConfig]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Enabled reports whether an API key has been configured
func (c *GenerateConfig) Enabled() bool {
	return c.APIKey != ""
}
