// Package server provides the MCP server implementation.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/oneevent/oneevent-api/cmd/mcp/client"
	"github.com/oneevent/oneevent-api/internal/domain"
)

// API is the subset of the One Event API the tools call.
type API interface {
	GetActiveEvent(ctx context.Context) (*client.ScoredEvent, error)
	GetTopEvents(ctx context.Context, limit int) ([]client.ScoredEvent, error)
	ExtractEvent(ctx context.Context, rawURL string) (domain.EventDraft, error)
	ListDrafts(ctx context.Context, status string) ([]domain.EventDraft, error)
	UpdateDraft(ctx context.Context, draftID string, patch domain.DraftPatch) (domain.EventDraft, error)
	PublishDraft(ctx context.Context, draftID string) (domain.Event, error)
	RejectDraft(ctx context.Context, draftID string) (domain.EventDraft, error)
}

// Server is the MCP server for One Event.
type Server struct {
	client    API
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient API) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"oneevent",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_active_event",
		mcp.WithDescription(
			"Get the single event currently selected for the authenticated user, "+
				"with its relevance score and personalized implications. "+
				"Calling this records the event as seen."),
	), s.handleGetActiveEvent)

	s.mcpServer.AddTool(mcp.NewTool("get_top_events",
		mcp.WithDescription("List the highest scoring active events for the authenticated user, best first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of events to return (default: 10, max: 50)"),
		),
	), s.handleGetTopEvents)

	s.mcpServer.AddTool(mcp.NewTool("extract_event",
		mcp.WithDescription(
			"Fetch a news article and extract a structured event draft from it. "+
				"Failed extractions are recorded as rejected drafts and the failing stage is reported."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The article URL; https:// is assumed when no scheme is given"),
		),
	), s.handleExtractEvent)

	s.mcpServer.AddTool(mcp.NewTool("list_drafts",
		mcp.WithDescription("List event drafts, newest first."),
		mcp.WithString("status",
			mcp.Description("Only include drafts in this status: extracting, draft, published or rejected"),
		),
	), s.handleListDrafts)

	s.mcpServer.AddTool(mcp.NewTool("update_draft",
		mcp.WithDescription("Edit fields of a draft. Only drafts in status 'draft' can be edited."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("The ID of the draft to edit"),
		),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("date", mcp.Description("New date (YYYY-MM-DD)")),
		mcp.WithString("category", mcp.Description("New category")),
		mcp.WithString("what_happened", mcp.Description("New 'what happened' text")),
		mcp.WithString("why_people_care", mcp.Description("New 'why people care' text")),
		mcp.WithString("what_this_means", mcp.Description("New 'what this means' text (markdown)")),
		mcp.WithString("what_likely_does_not_change", mcp.Description("New 'what likely does not change' text")),
	), s.handleUpdateDraft)

	s.mcpServer.AddTool(mcp.NewTool("publish_draft",
		mcp.WithDescription("Publish a complete draft as a live event."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("The ID of the draft to publish"),
		),
	), s.handlePublishDraft)

	s.mcpServer.AddTool(mcp.NewTool("reject_draft",
		mcp.WithDescription("Reject a draft so it is never published."),
		mcp.WithString("draft_id",
			mcp.Required(),
			mcp.Description("The ID of the draft to reject"),
		),
	), s.handleRejectDraft)
}
