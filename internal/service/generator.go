package service

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/config"
	"github.com/sirupsen/logrus"
)

const msgGenerationFailed = "Fehler bei der Erstellung des Motivationsschreibens"

// GenerationRequest is a single system + user prompt exchange.
type GenerationRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// CoverLetterGenerator produces letter text from a prompt. Implementations do
// not retry; failures come back as generation or generation_timeout errors.
type CoverLetterGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// NewGenerator builds the generator for the configured provider.
func NewGenerator(ctx context.Context, gen *config.GenerationConfig, openAI *config.OpenAIConfig, gemini *config.GeminiConfig, logger logrus.FieldLogger) (CoverLetterGenerator, error) {
	if err := gen.Validate(openAI, gemini); err != nil {
		return nil, apperr.Wrap(apperr.KindConfig, "invalid generation config", err)
	}
	switch gen.Provider {
	case config.ProviderGemini:
		return NewGeminiService(ctx, gemini.APIKey, gemini.Model, gen.Timeout, logger)
	default:
		return NewOpenAIService(openAI.BaseURL, openAI.APIKey, openAI.Model, gen.Timeout, logger), nil
	}
}

// classify wraps a provider error, separating deadline expiry from other
// failures.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperr.Wrap(apperr.KindGenerationTimeout, "Zeitüberschreitung bei der Erstellung des Motivationsschreibens", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperr.Wrap(apperr.KindGenerationTimeout, "Zeitüberschreitung bei der Erstellung des Motivationsschreibens", err)
	}
	return apperr.Wrap(apperr.KindGeneration, msgGenerationFailed, err)
}

func emptyResponse(provider string) error {
	return apperr.Wrap(apperr.KindGeneration, msgGenerationFailed, fmt.Errorf("%s returned no text", provider))
}
