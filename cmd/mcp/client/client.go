// Package client provides an HTTP client for the One Event API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/oneevent/oneevent-api/internal/domain"
)

// ScoredEvent is an event as returned by the feed endpoints.
type ScoredEvent struct {
	Event struct {
		domain.Event
		WhatThisMeansHTML string `json:"what_this_means_html"`
	} `json:"event"`
	Score            int    `json:"score"`
	ImplicationsHTML string `json:"implications_html,omitempty"`
}

// APIError is a non-2xx response. Stage is set for failed extractions.
type APIError struct {
	StatusCode int
	Message    string
	Stage      domain.ExtractionStage
	Draft      *domain.EventDraft
}

func (e *APIError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("API error (status %d, stage %s): %s", e.StatusCode, e.Stage, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// Client is an HTTP client for the One Event API.
type Client struct {
	http *resty.Client
}

// NewClient creates a new API client. apiToken is sent as a bearer token.
func NewClient(baseURL, apiToken string) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(60*time.Second).
		SetHeader("Accept", "application/json")
	if apiToken != "" {
		http.SetAuthToken(apiToken)
	}
	return &Client{http: http}
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type errorEnvelope struct {
	Message string                 `json:"message"`
	Stage   domain.ExtractionStage `json:"stage"`
	Draft   *domain.EventDraft     `json:"draft"`
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var result dataEnvelope[T]
	var apiErr errorEnvelope

	req := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("executing request: %w", err)
	}
	if resp.IsError() {
		var zero T
		message := apiErr.Message
		if message == "" {
			message = strings.TrimSpace(resp.String())
		}
		return zero, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    message,
			Stage:      apiErr.Stage,
			Draft:      apiErr.Draft,
		}
	}

	return result.Data, nil
}

// GetActiveEvent returns the event the authenticated user should see now, or nil.
func (c *Client) GetActiveEvent(ctx context.Context) (*ScoredEvent, error) {
	return do[*ScoredEvent](ctx, c, resty.MethodGet, "/v1/events/active", nil)
}

// GetTopEvents returns up to limit ranked events; limit 0 uses the server default.
func (c *Client) GetTopEvents(ctx context.Context, limit int) ([]ScoredEvent, error) {
	path := "/v1/events/top"
	if limit > 0 {
		path += "?n=" + strconv.Itoa(limit)
	}
	return do[[]ScoredEvent](ctx, c, resty.MethodGet, path, nil)
}

// ExtractEvent runs an extraction for rawURL and returns the resulting draft.
func (c *Client) ExtractEvent(ctx context.Context, rawURL string) (domain.EventDraft, error) {
	return do[domain.EventDraft](ctx, c, resty.MethodPost, "/v1/admin/extractions", map[string]string{"url": rawURL})
}

// ListDrafts lists drafts, optionally filtered by status.
func (c *Client) ListDrafts(ctx context.Context, status string) ([]domain.EventDraft, error) {
	path := "/v1/admin/drafts"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}
	return do[[]domain.EventDraft](ctx, c, resty.MethodGet, path, nil)
}

// UpdateDraft applies a partial edit to a draft.
func (c *Client) UpdateDraft(ctx context.Context, draftID string, patch domain.DraftPatch) (domain.EventDraft, error) {
	return do[domain.EventDraft](ctx, c, resty.MethodPatch, "/v1/admin/drafts/"+url.PathEscape(draftID), patch)
}

// PublishDraft publishes a draft as an event.
func (c *Client) PublishDraft(ctx context.Context, draftID string) (domain.Event, error) {
	return do[domain.Event](ctx, c, resty.MethodPost, "/v1/admin/drafts/"+url.PathEscape(draftID)+"/publish", nil)
}

// RejectDraft rejects a draft.
func (c *Client) RejectDraft(ctx context.Context, draftID string) (domain.EventDraft, error) {
	return do[domain.EventDraft](ctx, c, resty.MethodPost, "/v1/admin/drafts/"+url.PathEscape(draftID)+"/reject", nil)
}

// MarshalIndent is a helper for tool output.
func MarshalIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
