package server

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneevent/oneevent-api/cmd/mcp/client"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type fakeAPI struct {
	active     *client.ScoredEvent
	drafts     []domain.EventDraft
	extractErr error
	gotStatus  string
	gotPatch   domain.DraftPatch
	gotLimit   int
}

func (f *fakeAPI) GetActiveEvent(context.Context) (*client.ScoredEvent, error) {
	return f.active, nil
}

func (f *fakeAPI) GetTopEvents(_ context.Context, limit int) ([]client.ScoredEvent, error) {
	f.gotLimit = limit
	return nil, nil
}

func (f *fakeAPI) ExtractEvent(_ context.Context, rawURL string) (domain.EventDraft, error) {
	if f.extractErr != nil {
		return domain.EventDraft{}, f.extractErr
	}
	return domain.EventDraft{ID: "d1", SourceURL: rawURL, Status: domain.DraftStatusDraft}, nil
}

func (f *fakeAPI) ListDrafts(_ context.Context, status string) ([]domain.EventDraft, error) {
	f.gotStatus = status
	return f.drafts, nil
}

func (f *fakeAPI) UpdateDraft(_ context.Context, draftID string, patch domain.DraftPatch) (domain.EventDraft, error) {
	f.gotPatch = patch
	return domain.EventDraft{ID: draftID, Status: domain.DraftStatusDraft}, nil
}

func (f *fakeAPI) PublishDraft(_ context.Context, draftID string) (domain.Event, error) {
	return domain.Event{ID: "event-" + draftID}, nil
}

func (f *fakeAPI) RejectDraft(_ context.Context, draftID string) (domain.EventDraft, error) {
	return domain.EventDraft{ID: draftID, Status: domain.DraftStatusRejected}, nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleGetActiveEvent_NothingActive(t *testing.T) {
	s := NewServer(&fakeAPI{})

	res, err := s.handleGetActiveEvent(context.Background(), callRequest(nil))

	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "No event is currently active")
}

func TestHandleGetTopEvents_Limit(t *testing.T) {
	cases := []struct {
		name      string
		args      map[string]any
		wantLimit int
	}{
		{name: "default", args: nil, wantLimit: defaultTopEvents},
		{name: "explicit", args: map[string]any{"limit": float64(3)}, wantLimit: 3},
		{name: "capped", args: map[string]any{"limit": float64(500)}, wantLimit: maxTopEvents},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{}
			s := NewServer(api)

			_, err := s.handleGetTopEvents(context.Background(), callRequest(tc.args))

			require.NoError(t, err)
			assert.Equal(t, tc.wantLimit, api.gotLimit)
		})
	}
}

func TestHandleExtractEvent(t *testing.T) {
	cases := []struct {
		name      string
		args      map[string]any
		err       error
		wantError bool
		wantText  string
	}{
		{
			name:     "success",
			args:     map[string]any{"url": "https://example.com/a"},
			wantText: `"source_url": "https://example.com/a"`,
		},
		{
			name:      "missing_url",
			args:      map[string]any{},
			wantError: true,
			wantText:  "url is required",
		},
		{
			name: "stage_failure",
			args: map[string]any{"url": "https://example.com/a"},
			err: &client.APIError{
				StatusCode: 422,
				Message:    "insufficient content",
				Stage:      domain.StageContent,
				Draft:      &domain.EventDraft{ID: "d9"},
			},
			wantError: true,
			wantText:  "extraction failed at stage content: insufficient content (recorded as rejected draft d9)",
		},
		{
			name:      "transport_failure",
			args:      map[string]any{"url": "https://example.com/a"},
			err:       errors.New("connection refused"),
			wantError: true,
			wantText:  "failed to extract event: connection refused",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewServer(&fakeAPI{extractErr: tc.err})

			res, err := s.handleExtractEvent(context.Background(), callRequest(tc.args))

			require.NoError(t, err)
			assert.Equal(t, tc.wantError, res.IsError)
			assert.Contains(t, resultText(t, res), tc.wantText)
		})
	}
}

func TestHandleListDrafts_InvalidStatus(t *testing.T) {
	api := &fakeAPI{}
	s := NewServer(api)

	res, err := s.handleListDrafts(context.Background(), callRequest(map[string]any{"status": "archived"}))

	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Empty(t, api.gotStatus)
}

func TestHandleUpdateDraft(t *testing.T) {
	api := &fakeAPI{}
	s := NewServer(api)

	res, err := s.handleUpdateDraft(context.Background(), callRequest(map[string]any{
		"draft_id": "d1",
		"title":    "New title",
		"category": "economy",
	}))

	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.NotNil(t, api.gotPatch.Title)
	assert.Equal(t, "New title", *api.gotPatch.Title)
	require.NotNil(t, api.gotPatch.Category)
	assert.Equal(t, domain.CategoryEconomy, *api.gotPatch.Category)
	assert.Nil(t, api.gotPatch.Date)
}

func TestHandleUpdateDraft_EmptyPatch(t *testing.T) {
	s := NewServer(&fakeAPI{})

	res, err := s.handleUpdateDraft(context.Background(), callRequest(map[string]any{"draft_id": "d1"}))

	require.NoError(t, err)
	assert.True(t, res.IsError)
}
