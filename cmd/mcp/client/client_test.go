package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneevent/oneevent-api/internal/domain"
)

func TestClient_ListDrafts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/admin/drafts", r.URL.Path)
		assert.Equal(t, "draft", r.URL.Query().Get("status"))
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"d1","status":"draft","source_url":"https://example.com/a"}]}`))
	}))
	defer srv.Close()

	drafts, err := NewClient(srv.URL, "token-1").ListDrafts(context.Background(), "draft")

	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "d1", drafts[0].ID)
	assert.Equal(t, domain.DraftStatusDraft, drafts[0].Status)
}

func TestClient_GetActiveEvent_NullData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer srv.Close()

	event, err := NewClient(srv.URL, "token-1").GetActiveEvent(context.Background())

	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestClient_ExtractEvent_StageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"page blocked","stage":"fetch","draft":{"id":"d2","status":"rejected"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "token-1").ExtractEvent(context.Background(), "https://example.com/a")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, domain.StageFetch, apiErr.Stage)
	assert.Equal(t, "page blocked", apiErr.Message)
	require.NotNil(t, apiErr.Draft)
	assert.Equal(t, "d2", apiErr.Draft.ID)
}
