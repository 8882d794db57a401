package openrouter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/oneevent/oneevent-api/internal/datasources"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o-mini"
)

var ErrEmptyResponse = errors.New("openrouter returned no content")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client is a LanguageModel backed by OpenRouter's OpenAI-compatible chat endpoint.
type Client struct {
	http  *resty.Client
	model string
}

var _ datasources.LanguageModel = (*Client)(nil)

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(config.APIKey).
		SetTimeout(config.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &Client{http: client, model: model}
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": c.model,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("calling openrouter: %w", err)
	}

	body := resp.String()
	if !resp.IsSuccess() {
		return "", fmt.Errorf("openrouter returned status %d: %s",
			resp.StatusCode(), gjson.Get(body, "error.message").String())
	}

	text := gjson.Get(body, "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
