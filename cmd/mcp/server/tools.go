package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oneevent/oneevent-api/cmd/mcp/client"
	"github.com/oneevent/oneevent-api/internal/domain"
)

const (
	defaultTopEvents = 10
	maxTopEvents     = 50
)

func (s *Server) handleGetActiveEvent(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	event, err := s.client.GetActiveEvent(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get active event: %v", err)), nil
	}
	if event == nil {
		return mcp.NewToolResultText("No event is currently active for you."), nil
	}
	return jsonResult(event)
}

func (s *Server) handleGetTopEvents(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	limit := defaultTopEvents
	if l := request.GetFloat("limit", 0); l > 0 {
		limit = min(int(l), maxTopEvents)
	}

	events, err := s.client.GetTopEvents(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get top events: %v", err)), nil
	}
	if len(events) == 0 {
		return mcp.NewToolResultText("No events are relevant to you right now."), nil
	}
	return jsonResult(events)
}

func (s *Server) handleExtractEvent(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	rawURL, err := request.RequireString("url")
	if err != nil || rawURL == "" {
		return mcp.NewToolResultError("url is required"), nil
	}

	draft, err := s.client.ExtractEvent(ctx, rawURL)
	if err != nil {
		return extractionFailure(err), nil
	}
	return jsonResult(draft)
}

func (s *Server) handleListDrafts(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	status := request.GetString("status", "")
	if status != "" && !domain.DraftStatus(status).IsValid() {
		return mcp.NewToolResultError(fmt.Sprintf("invalid status %q", status)), nil
	}

	drafts, err := s.client.ListDrafts(ctx, status)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list drafts: %v", err)), nil
	}
	if len(drafts) == 0 {
		return mcp.NewToolResultText("No drafts found."), nil
	}
	return jsonResult(drafts)
}

func (s *Server) handleUpdateDraft(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	draftID, err := request.RequireString("draft_id")
	if err != nil || draftID == "" {
		return mcp.NewToolResultError("draft_id is required"), nil
	}

	patch := parseDraftPatch(request.GetArguments())
	if patch.IsEmpty() {
		return mcp.NewToolResultError("at least one field to change is required"), nil
	}

	draft, err := s.client.UpdateDraft(ctx, draftID, patch)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update draft: %v", err)), nil
	}
	return jsonResult(draft)
}

func parseDraftPatch(args map[string]any) domain.DraftPatch {
	str := func(key string) *string {
		if v, ok := args[key].(string); ok {
			return &v
		}
		return nil
	}

	var patch domain.DraftPatch
	patch.Title = str("title")
	patch.Date = str("date")
	if c := str("category"); c != nil {
		category := domain.Category(*c)
		patch.Category = &category
	}
	patch.WhatHappened = str("what_happened")
	patch.WhyPeopleCare = str("why_people_care")
	patch.WhatThisMeans = str("what_this_means")
	patch.WhatLikelyDoesNotChange = str("what_likely_does_not_change")
	return patch
}

func (s *Server) handlePublishDraft(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	draftID, err := request.RequireString("draft_id")
	if err != nil || draftID == "" {
		return mcp.NewToolResultError("draft_id is required"), nil
	}

	event, err := s.client.PublishDraft(ctx, draftID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to publish draft: %v", err)), nil
	}
	return jsonResult(event)
}

func (s *Server) handleRejectDraft(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	draftID, err := request.RequireString("draft_id")
	if err != nil || draftID == "" {
		return mcp.NewToolResultError("draft_id is required"), nil
	}

	draft, err := s.client.RejectDraft(ctx, draftID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to reject draft: %v", err)), nil
	}
	return jsonResult(draft)
}

func extractionFailure(err error) *mcp.CallToolResult {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Stage != "" {
		msg := fmt.Sprintf("extraction failed at stage %s: %s", apiErr.Stage, apiErr.Message)
		if apiErr.Draft != nil {
			msg += fmt.Sprintf(" (recorded as rejected draft %s)", apiErr.Draft.ID)
		}
		return mcp.NewToolResultError(msg)
	}
	return mcp.NewToolResultError(fmt.Sprintf("failed to extract event: %v", err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	text, err := client.MarshalIndent(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(text), nil
}
