// Package main provides the entry point for the One Event admin MCP server.
//
// The server lets AI agents read the feed and work the draft queue
// through the One Event HTTP API.
//
// Configuration:
//
//	ONEEVENT_API_URL   - Base URL of the API (default: http://localhost:8080)
//	ONEEVENT_API_TOKEN - Bearer token for an admin user (required)
//
// Usage with an MCP client over stdio:
//
//	oneevent-mcp
package main

import (
	"log"
	"os"

	"github.com/oneevent/oneevent-api/cmd/mcp/client"
	"github.com/oneevent/oneevent-api/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("ONEEVENT_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiToken := os.Getenv("ONEEVENT_API_TOKEN")
	if apiToken == "" {
		log.Fatal("ONEEVENT_API_TOKEN environment variable is required")
	}

	srv := server.NewServer(client.NewClient(apiURL, apiToken))
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
