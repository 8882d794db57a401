package firecrawl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

const (
	DefaultBaseURL = "https://api.firecrawl.dev"
	FetcherName    = "firecrawl"
)

// ErrorKind groups scraping API failures by what an operator would do about them.
type ErrorKind string

const (
	ErrorKindAuth      ErrorKind = "auth"
	ErrorKindQuota     ErrorKind = "quota"
	ErrorKindRateLimit ErrorKind = "rate_limit"
	ErrorKindOther     ErrorKind = "other"
)

// APIError is a failed scrape request.
type APIError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("firecrawl %s error (%d): %s", e.Kind, e.StatusCode, e.Message)
}

var ErrEmptyMarkdown = errors.New("firecrawl returned no markdown")

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client scrapes pages through the Firecrawl API, which returns main-content Markdown.
type Client struct {
	http *resty.Client
}

var _ datasources.PageFetcher = (*Client)(nil)

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(config.APIKey).
		SetTimeout(config.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &Client{http: client}
}

func (c *Client) FetchPage(ctx context.Context, url string) (domain.PageContent, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"url":             url,
			"formats":         []string{"markdown"},
			"onlyMainContent": true,
		}).
		Post("/v1/scrape")
	if err != nil {
		return domain.PageContent{}, fmt.Errorf("calling firecrawl: %w", err)
	}

	body := resp.String()
	if !resp.IsSuccess() {
		return domain.PageContent{}, &APIError{
			StatusCode: resp.StatusCode(),
			Kind:       errorKindForStatus(resp.StatusCode()),
			Message:    gjson.Get(body, "error").String(),
		}
	}
	if !gjson.Get(body, "success").Bool() {
		return domain.PageContent{}, &APIError{
			StatusCode: resp.StatusCode(),
			Kind:       ErrorKindOther,
			Message:    gjson.Get(body, "error").String(),
		}
	}

	markdown := gjson.Get(body, "data.markdown").String()
	if strings.TrimSpace(markdown) == "" {
		return domain.PageContent{}, ErrEmptyMarkdown
	}

	return domain.PageContent{
		URL:        url,
		Body:       markdown,
		IsMarkdown: true,
		Fetcher:    FetcherName,
	}, nil
}

func errorKindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrorKindAuth
	case http.StatusPaymentRequired:
		return ErrorKindQuota
	case http.StatusTooManyRequests:
		return ErrorKindRateLimit
	default:
		return ErrorKindOther
	}
}
