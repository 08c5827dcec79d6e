package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey string
	Model  string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = readGeminiConfig()
	})
	return geminiConfig
}

func readGeminiConfig() *GeminiConfig {
	return &GeminiConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  envOr("GEMINI_MODEL", "gemini-2.5-flash"),
	}
}
