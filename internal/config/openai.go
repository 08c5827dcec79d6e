package config

import (
	"os"
	"strings"
	"sync"
)

// OpenAIConfig covers any OpenAI-compatible chat completions endpoint
// (OpenAI itself, OpenRouter, a local gateway).
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

var (
	openAIConfig *OpenAIConfig
	openAIOnce   sync.Once
)

func LoadOpenAIConfig() *OpenAIConfig {
	openAIOnce.Do(func() {
		openAIConfig = readOpenAIConfig()
	})
	return openAIConfig
}

func readOpenAIConfig() *OpenAIConfig {
	return &OpenAIConfig{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: strings.TrimRight(envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		Model:   envOr("OPENAI_MODEL", "gpt-3.5-turbo"),
	}
}
