package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tonechef/backend/config"
)

// Client is the outbound text-generation capability: one prompt in, one raw
// completion out. The provider is treated as unreliable; callers must not
// assume well-formed output.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the DeepSeek chat completions API
type Request struct {
	Model            string            `json:"model"`
	Messages         []Message         `json:"messages"`
	ResponseFormat   map[string]string `json:"response_format"`
	Temperature      float64           `json:"temperature"`
	TopP             float64           `json:"top_p"`
	FrequencyPenalty float64           `json:"frequency_penalty"`
	PresencePenalty  float64           `json:"presence_penalty"`
}

const systemPrompt = "You are a professional chef and food writer."

// DeepSeekClient calls a DeepSeek-compatible chat completions endpoint
type DeepSeekClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewDeepSeekClient creates a new DeepSeekClient from configuration
func NewDeepSeekClient(cfg *config.Config, logger *zap.Logger) *DeepSeekClient {
	return &DeepSeekClient{
		apiKey: cfg.ProviderAPIKey,
		apiURL: cfg.ProviderAPIURL,
		model:  cfg.ProviderModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// Generate sends the prompt to the provider and returns the raw completion
// text. Transport and provider failures are wrapped in *ProviderError;
// context cancellation is returned unwrapped so callers can tell an aborted
// request from an upstream failure.
func (c *DeepSeekClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := Request{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature:      0.9,
		TopP:             0.9,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &ProviderError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &ProviderError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("provider request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(body), 2000)))
		return "", &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &ProviderError{Err: fmt.Errorf("failed to decode provider response: %w", err)}
	}

	if len(result.Choices) == 0 {
		return "", &ProviderError{Err: fmt.Errorf("no choices in provider response")}
	}

	return result.Choices[0].Message.Content, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
