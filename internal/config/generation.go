package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type GenerationConfig struct {
	Provider    string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
	TargetRole  string
}

var (
	generationConfig *GenerationConfig
	generationOnce   sync.Once
)

func LoadGenerationConfig() *GenerationConfig {
	generationOnce.Do(func() {
		generationConfig = readGenerationConfig()
	})
	return generationConfig
}

func readGenerationConfig() *GenerationConfig {
	cfg := &GenerationConfig{
		Provider:    strings.ToLower(envOr("LLM_PROVIDER", ProviderOpenAI)),
		Timeout:     60 * time.Second,
		MaxTokens:   envInt("GENERATION_MAX_TOKENS", 600),
		Temperature: 0.7,
		TargetRole:  envOr("TARGET_ROLE", "Bankkauffrau/-mann"),
	}
	if raw := strings.TrimSpace(os.Getenv("GENERATION_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Printf("Warning: invalid GENERATION_TIMEOUT=%q, defaulting to %s", raw, cfg.Timeout)
		} else {
			cfg.Timeout = d
		}
	}
	if raw := strings.TrimSpace(os.Getenv("GENERATION_TEMPERATURE")); raw != "" {
		t, err := strconv.ParseFloat(raw, 32)
		if err != nil || t < 0 || t > 2 {
			log.Printf("Warning: invalid GENERATION_TEMPERATURE=%q, defaulting to %.1f", raw, cfg.Temperature)
		} else {
			cfg.Temperature = float32(t)
		}
	}
	return cfg
}

// Validate checks that the selected provider is known and has credentials.
func (c *GenerationConfig) Validate(openAI *OpenAIConfig, gemini *GeminiConfig) error {
	switch c.Provider {
	case ProviderOpenAI:
		if openAI == nil || openAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY not set")
		}
	case ProviderGemini:
		if gemini == nil || gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}
	return nil
}
