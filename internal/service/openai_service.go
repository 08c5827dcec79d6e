package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// OpenAIService talks to any OpenAI-compatible chat completions endpoint.
type OpenAIService struct {
	client  *resty.Client
	model   string
	timeout time.Duration
	logger  logrus.FieldLogger
}

func NewOpenAIService(baseURL, apiKey, model string, timeout time.Duration, logger logrus.FieldLogger) *OpenAIService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &OpenAIService{client: client, model: model, timeout: timeout, logger: logger}
}

func (s *OpenAIService) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := make([]map[string]string, 0, 2)
	if req.System != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.System})
	}
	messages = append(messages, map[string]string{"role": "user", "content": req.Prompt})

	body := map[string]any{
		"model":       s.model,
		"messages":    messages,
		"temperature": req.Temperature,
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}

	log := s.logger.WithFields(logrus.Fields{"provider": "openai", "model": s.model})
	log.Debug("requesting completion")

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		log.WithError(err).Error("completion request failed")
		return "", classify(ctx, err)
	}

	raw := resp.String()
	if resp.IsError() {
		msg := gjson.Get(raw, "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		log.WithField("status", resp.StatusCode()).Error("completion rejected")
		return "", classify(ctx, fmt.Errorf("openai status %d: %s", resp.StatusCode(), msg))
	}

	text := strings.TrimSpace(gjson.Get(raw, "choices.0.message.content").String())
	if text == "" {
		return "", emptyResponse("openai")
	}
	log.WithField("finish_reason", gjson.Get(raw, "choices.0.finish_reason").String()).Debug("completion received")
	return text, nil
}
