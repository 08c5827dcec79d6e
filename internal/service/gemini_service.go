package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

type GeminiService struct {
	Client         *genai.Client
	Model          string
	RequestTimeout time.Duration
	logger         logrus.FieldLogger
}

func NewGeminiService(ctx context.Context, apiKey, model string, timeout time.Duration, logger logrus.FieldLogger) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	return newGeminiService(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model, timeout, logger)
}

func newGeminiService(ctx context.Context, cc *genai.ClientConfig, model string, timeout time.Duration, logger logrus.FieldLogger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiService{
		Client:         client,
		Model:          model,
		RequestTimeout: timeout,
		logger:         logger,
	}, nil
}

func (s *GeminiService) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", emptyResponse("prompt")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	log := s.logger.WithFields(logrus.Fields{"provider": "gemini", "model": s.Model})
	log.Debug("requesting completion")

	result, err := s.Client.Models.GenerateContent(timeoutCtx, s.Model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		log.WithError(err).Error("generate content failed")
		return "", classify(timeoutCtx, err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", classify(timeoutCtx, fmt.Errorf("invalid response: %w", err))
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", emptyResponse("gemini")
	}
	return text, nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
