package httpfetch

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	browserAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

	FetcherName = "direct"
)

type Config struct {
	// Timeout bounds a single request. Zero means no client-side timeout.
	Timeout time.Duration
}

// Client retrieves raw pages directly from their origin, presenting itself as a desktop browser.
type Client struct {
	http *resty.Client
}

var _ datasources.PageFetcher = (*Client)(nil)

func NewClient(config Config) *Client {
	client := resty.New().
		SetTimeout(config.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", browserUserAgent).
		SetHeader("Accept", browserAccept).
		SetHeader("Accept-Language", "en-US,en;q=0.9")

	return &Client{http: client}
}

func (c *Client) FetchPage(ctx context.Context, url string) (domain.PageContent, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return domain.PageContent{}, &domain.FetchError{Kind: domain.FetchErrorNetwork, URL: url, Err: err}
	}

	if !resp.IsSuccess() {
		return domain.PageContent{}, &domain.FetchError{
			Kind:       domain.FetchErrorKindForStatus(resp.StatusCode()),
			URL:        url,
			StatusCode: resp.StatusCode(),
		}
	}

	body := resp.String()
	if strings.TrimSpace(body) == "" {
		return domain.PageContent{}, &domain.FetchError{
			Kind:       domain.FetchErrorEmptyBody,
			URL:        url,
			StatusCode: resp.StatusCode(),
		}
	}

	return domain.PageContent{
		URL:     url,
		Body:    body,
		Fetcher: FetcherName,
	}, nil
}
