package service

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator_SelectsProvider(t *testing.T) {
	gen := &config.GenerationConfig{Provider: config.ProviderOpenAI, Timeout: time.Second}
	openAI := &config.OpenAIConfig{APIKey: "sk-test", BaseURL: "http://localhost", Model: "gpt-3.5-turbo"}
	gemini := &config.GeminiConfig{APIKey: "g-test", Model: "gemini-2.5-flash"}

	g, err := NewGenerator(context.Background(), gen, openAI, gemini, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &OpenAIService{}, g)

	gen.Provider = config.ProviderGemini
	g, err = NewGenerator(context.Background(), gen, openAI, gemini, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &GeminiService{}, g)
}

func TestNewGenerator_MissingCredentialsIsConfigError(t *testing.T) {
	gen := &config.GenerationConfig{Provider: config.ProviderOpenAI, Timeout: time.Second}

	_, err := NewGenerator(context.Background(), gen, &config.OpenAIConfig{}, &config.GeminiConfig{}, quietLogger())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConfig))
}
