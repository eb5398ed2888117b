package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type OpenAIConfig struct {
	HTTPConfig
	APIKey       string
	Model        string // identifier reported to callers (e.g. gpt-4)
	Upstream     string // model name sent to the API; Model when empty
	SystemPrompt string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// OpenAIClient calls an OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	httpClient   *resty.Client
	apiKey       string
	model        string
	upstream     string
	systemPrompt string
	breaker      *CircuitBreaker
	logger       *zap.Logger
}

func NewOpenAIClient(cfg OpenAIConfig, logger *zap.Logger) *OpenAIClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4"
	}
	if cfg.Upstream == "" {
		cfg.Upstream = cfg.Model
	}
	client := newRestyClient(cfg.HTTPConfig)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &OpenAIClient{
		httpClient:   client,
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		upstream:     cfg.Upstream,
		systemPrompt: cfg.SystemPrompt,
		breaker:      NewCircuitBreaker(cfg.Breaker),
		logger:       logger.With(zap.String("backend", "openai"), zap.String("model", cfg.Model)),
	}
}

func (c *OpenAIClient) Model() string {
	return c.model
}

// Available is true when an API key is configured and the breaker is not open.
func (c *OpenAIClient) Available() bool {
	return c.apiKey != "" && c.breaker.State() != StateOpen
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	var content string
	err := c.breaker.Execute(func() error {
		var err error
		content, err = c.complete(ctx, prompt)
		return err
	})
	return content, err
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if c.systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: c.systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	c.logger.Info("Calling chat completions", zap.Int("prompt_length", len(prompt)))

	var result chatResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(chatRequest{Model: c.upstream, Messages: messages}).
		SetResult(&result).
		SetError(&result).
		Post("/chat/completions")
	if err != nil {
		c.logger.Error("chat completions call failed", zap.Error(err))
		return "", fmt.Errorf("failed to call chat completions: %w", err)
	}

	if resp.IsError() {
		msg := resp.Status()
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		c.logger.Error("chat completions returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("msg", msg),
		)
		return "", fmt.Errorf("failed to generate proposal: %s (status: %d)", msg, resp.StatusCode())
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == nil ||
		strings.TrimSpace(*result.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return *result.Choices[0].Message.Content, nil
}
