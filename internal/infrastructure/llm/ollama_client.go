package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type OllamaConfig struct {
	HTTPConfig
	// Model is the identifier reported to callers (e.g. llama-2-7b).
	Model string
	// Tag is the model tag sent to the server; derived from Model when empty.
	Tag    string
	Stream bool
}

var ollamaTags = map[string]string{
	"llama-2-7b":  "llama2:7b",
	"llama-2-13b": "llama2:13b",
	"llama-2-70b": "llama2:70b",
	"gemma-7b":    "gemma:7b",
	"gemma-2b":    "gemma:2b",
}

// OllamaTag maps a model identifier to its Ollama tag, or "" when unknown.
func OllamaTag(model string) string {
	return ollamaTags[strings.ToLower(strings.TrimSpace(model))]
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// OllamaClient calls a local model server's /api/generate endpoint.
type OllamaClient struct {
	httpClient *resty.Client
	baseURL    string
	model      string
	tag        string
	stream     bool
	breaker    *CircuitBreaker
	logger     *zap.Logger
}

func NewOllamaClient(cfg OllamaConfig, logger *zap.Logger) *OllamaClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Model == "" {
		cfg.Model = "llama2"
	}
	tag := cfg.Tag
	if tag == "" {
		tag = OllamaTag(cfg.Model)
	}
	if tag == "" {
		tag = cfg.Model
	}
	return &OllamaClient{
		httpClient: newRestyClient(cfg.HTTPConfig),
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		tag:        tag,
		stream:     cfg.Stream,
		breaker:    NewCircuitBreaker(cfg.Breaker),
		logger:     logger.With(zap.String("backend", "ollama"), zap.String("model", cfg.Model)),
	}
}

func (c *OllamaClient) Model() string {
	return c.model
}

func (c *OllamaClient) Available() bool {
	return c.baseURL != "" && c.breaker.State() != StateOpen
}

func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.baseURL == "" {
		return "", ErrMissingBaseURL
	}

	var text string
	err := c.breaker.Execute(func() error {
		var err error
		if c.stream {
			text, err = c.completeStream(ctx, prompt)
		} else {
			text, err = c.complete(ctx, prompt)
		}
		if err == nil && strings.TrimSpace(text) == "" {
			err = ErrEmptyResponse
		}
		return err
	})
	return text, err
}

func (c *OllamaClient) complete(ctx context.Context, prompt string) (string, error) {
	c.logger.Info("Calling generate", zap.String("tag", c.tag), zap.Bool("stream", false))

	var result generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(generateRequest{Model: c.tag, Prompt: prompt, Stream: false}).
		SetResult(&result).
		SetError(&result).
		Post("/api/generate")
	if err != nil {
		c.logger.Error("generate call failed", zap.Error(err))
		return "", fmt.Errorf("failed to call generate: %w", err)
	}
	if resp.IsError() || result.Error != "" {
		msg := result.Error
		if msg == "" {
			msg = resp.Status()
		}
		c.logger.Error("generate returned error", zap.Int("status_code", resp.StatusCode()), zap.String("msg", msg))
		return "", fmt.Errorf("failed to generate proposal: %s (status: %d)", msg, resp.StatusCode())
	}
	return result.Response, nil
}

// completeStream concatenates the newline-delimited JSON chunks.
func (c *OllamaClient) completeStream(ctx context.Context, prompt string) (string, error) {
	c.logger.Info("Calling generate", zap.String("tag", c.tag), zap.Bool("stream", true))

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(generateRequest{Model: c.tag, Prompt: prompt, Stream: true}).
		SetDoNotParseResponse(true).
		Post("/api/generate")
	if err != nil {
		c.logger.Error("generate call failed", zap.Error(err))
		return "", fmt.Errorf("failed to call generate: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return "", fmt.Errorf("failed to generate proposal: %s (status: %d)", resp.Status(), resp.StatusCode())
	}

	var b strings.Builder
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var chunk generateResponse
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			return "", fmt.Errorf("failed to decode stream chunk: %w", err)
		}
		if chunk.Error != "" {
			return "", fmt.Errorf("failed to generate proposal: %s", chunk.Error)
		}
		b.WriteString(chunk.Response)
		if chunk.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read stream: %w", err)
	}
	return b.String(), nil
}
