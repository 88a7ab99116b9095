// Wikia MCP Server - a Model Context Protocol server exposing the public
// Wikia API as read-only tools for search, articles, users and rankings.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ravener/wikia"
	"github.com/ravener/wikia/tools"
	"github.com/ravener/wikia/tracing"
)

const (
	ServerName    = "wikia-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	// Initialize tracing; a no-op unless OTEL_* is configured
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	client := buildClient(logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: buildInstructions(client.Wiki()),
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(tools.NewAPI(client), logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting Wikia MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"wiki", client.Wiki(),
		"base_url", client.BaseURL(),
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// buildClient creates the API client from the environment. WIKIA_WIKI
// scopes the server to a single wiki; without it the wiki-bound tools
// report an error and only the cross-wiki tools are usable.
func buildClient(logger *slog.Logger) *wikia.Client {
	opts := []wikia.ClientOption{wikia.WithLogger(logger)}
	if wiki := os.Getenv("WIKIA_WIKI"); wiki != "" {
		opts = append(opts, wikia.WithWiki(wiki))
	}
	return wikia.NewClient(opts...)
}

// buildInstructions renders the server instructions from the tool
// registry so the tool list cannot drift from what is registered.
func buildInstructions(wiki string) string {
	var b strings.Builder
	b.WriteString("Wikia MCP Server provides read-only tools for the public Wikia API.\n\n")

	if wiki != "" {
		fmt.Fprintf(&b, "This server is scoped to the %q wiki.\n\n", wiki)
	} else {
		b.WriteString("This server is not scoped to a wiki, so wikia_search, " +
			"wikia_search_suggestions and wikia_new_articles are unavailable. " +
			"Set WIKIA_WIKI to enable them.\n\n")
	}

	b.WriteString("Available tools:\n")
	for _, spec := range tools.AllTools {
		fmt.Fprintf(&b, "- %s: %s\n", spec.Name, spec.Title)
	}

	b.WriteString(`
Configure via environment variables:
- WIKIA_WIKI: Wiki subdomain to scope to (e.g., "runescape")
- OTEL_EXPORTER_OTLP_ENDPOINT: Enable OpenTelemetry tracing`)

	return b.String()
}
