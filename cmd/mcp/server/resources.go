package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/oneevent/oneevent-api/cmd/mcp/client"
	"github.com/oneevent/oneevent-api/internal/domain"
)

const draftsURIPrefix = "drafts://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			draftsURIPrefix+"{status}",
			"Event drafts by lifecycle status",
			mcp.WithTemplateDescription(
				"The draft queue filtered by status (extracting, draft, published or rejected). "+
					"Each draft carries its source URL, extracted fields, raw model payload "+
					"and, for failed extractions, the recorded error."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleDraftsResource,
	)
}

func (s *Server) handleDraftsResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	status, ok := strings.CutPrefix(uri, draftsURIPrefix)
	if !ok {
		return nil, fmt.Errorf("invalid drafts URI format: %s", uri)
	}
	if !domain.DraftStatus(status).IsValid() {
		return nil, fmt.Errorf("invalid draft status in URI: %s", uri)
	}

	drafts, err := s.client.ListDrafts(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s drafts: %w", status, err)
	}

	text, err := client.MarshalIndent(drafts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal drafts: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}
