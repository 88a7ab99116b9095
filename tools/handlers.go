package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ravener/wikia"
	"github.com/ravener/wikia/metrics"
	"github.com/ravener/wikia/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	api    *API
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(api *API, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		api:    api,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Search tools
	case "Search":
		h.register(server, tool, spec, h.api.SearchMCP)
	case "SearchCrossWiki":
		h.register(server, tool, spec, h.api.SearchCrossWikiMCP)
	case "SearchSuggestions":
		h.register(server, tool, spec, h.api.SearchSuggestionsMCP)

	// Article tools
	case "GetArticleAsSimpleJSON":
		h.register(server, tool, spec, h.api.GetArticleAsSimpleJSONMCP)
	case "GetArticleDetails":
		h.register(server, tool, spec, h.api.GetArticleDetailsMCP)
	case "GetArticleList":
		h.register(server, tool, spec, h.api.GetArticleListMCP)
	case "GetMostLinked":
		h.register(server, tool, spec, h.api.GetMostLinkedMCP)
	case "GetNewArticles":
		h.register(server, tool, spec, h.api.GetNewArticlesMCP)
	case "GetPopularArticles":
		h.register(server, tool, spec, h.api.GetPopularArticlesMCP)
	case "GetTopArticles":
		h.register(server, tool, spec, h.api.GetTopArticlesMCP)
	case "GetTopArticlesByHub":
		h.register(server, tool, spec, h.api.GetTopArticlesByHubMCP)
	case "GetRelatedPages":
		h.register(server, tool, spec, h.api.GetRelatedPagesMCP)

	// Activity tools
	case "GetLatestActivity":
		h.register(server, tool, spec, h.api.GetLatestActivityMCP)
	case "GetRecentlyChangedArticles":
		h.register(server, tool, spec, h.api.GetRecentlyChangedArticlesMCP)

	// Navigation tools
	case "GetNavigationData":
		h.register(server, tool, spec, h.api.GetNavigationDataMCP)

	// User tools
	case "GetUserDetails":
		h.register(server, tool, spec, h.api.GetUserDetailsMCP)

	// WAM tools
	case "GetWamIndex":
		h.register(server, tool, spec, h.api.GetWamIndexMCP)
	case "GetMinMaxWamIndexDate":
		h.register(server, tool, spec, h.api.GetMinMaxWamIndexDateMCP)
	case "GetWamLanguages":
		h.register(server, tool, spec, h.api.GetWamLanguagesMCP)

	// Wiki tools
	case "GetWikisByString":
		h.register(server, tool, spec, h.api.GetWikisByStringMCP)
	case "GetWikiDetails":
		h.register(server, tool, spec, h.api.GetWikiDetailsMCP)
	case "GetTopWikis":
		h.register(server, tool, spec, h.api.GetTopWikisMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the API method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			metrics.RecordAPIError(spec.Name, errorKind(err))
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// errorKind buckets an error for the api_errors_total metric.
func errorKind(err error) string {
	var statusErr *wikia.StatusError
	switch {
	case wikia.IsWikiRequired(err):
		return "wiki_required"
	case errors.As(err, &statusErr):
		return "status"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "other"
	}
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case SearchArgs:
		attrs = append(attrs, "query", a.Query)
	case SearchCrossWikiArgs:
		attrs = append(attrs, "query", a.Query)
	case SearchSuggestionsArgs:
		attrs = append(attrs, "query", a.Query)
	case ArticleSimpleArgs:
		attrs = append(attrs, "id", a.ID)
	case ArticleDetailsArgs:
		attrs = append(attrs, "ids", a.IDs)
	case TopArticlesByHubArgs:
		attrs = append(attrs, "hub", a.Hub)
	case RelatedPagesArgs:
		attrs = append(attrs, "ids", a.IDs)
	case UserDetailsArgs:
		attrs = append(attrs, "ids", a.IDs)
	case WamIndexArgs:
		if a.WamDay != 0 {
			attrs = append(attrs, "wam_day", a.WamDay)
		}
	case WikisByStringArgs:
		attrs = append(attrs, "query", a.Query)
	case WikiDetailsArgs:
		attrs = append(attrs, "ids", a.IDs)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case LatestActivityResult:
		attrs = append(attrs, "items", itemCount(r.Activity["items"]))
	case RecentlyChangedResult:
		attrs = append(attrs, "items", itemCount(r.Activity["items"]))
	case ArticleDetailsResult:
		attrs = append(attrs, "items", itemCount(r.Details["items"]))
	case ArticleListResult:
		attrs = append(attrs, "items", itemCount(r.Articles["items"]))
	case MostLinkedResult:
		attrs = append(attrs, "items", itemCount(r.Items))
	case NewArticlesResult:
		attrs = append(attrs, "items", itemCount(r.Articles["items"]))
	case PopularArticlesResult:
		attrs = append(attrs, "items", itemCount(r.Articles["items"]))
	case TopArticlesResult:
		attrs = append(attrs, "items", itemCount(r.Articles["items"]))
	case RelatedPagesResult:
		attrs = append(attrs, "items", itemCount(r.Items))
	case SearchResult:
		attrs = append(attrs, "items", itemCount(r.Results["items"]))
	case SearchCrossWikiResult:
		attrs = append(attrs, "items", itemCount(r.Results["items"]))
	case SearchSuggestionsResult:
		attrs = append(attrs, "titles", r.Count)
	case UserDetailsResult:
		attrs = append(attrs, "items", itemCount(r.Users["items"]))
	case WamIndexResult:
		attrs = append(attrs, "items", itemCount(r.Index["wam_index"]))
	case WikisByStringResult:
		attrs = append(attrs, "items", itemCount(r.Wikis["items"]))
	case WikiDetailsResult:
		attrs = append(attrs, "items", itemCount(r.Items))
	case TopWikisResult:
		attrs = append(attrs, "items", itemCount(r.Wikis["items"]))
	}

	h.logger.Info("Tool executed", attrs...)
}

// itemCount reports the number of entries in a decoded payload field,
// which may be a JSON array or an id-keyed object.
func itemCount(v any) int {
	switch t := v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	}
	return 0
}

// Convenience function to call the generic register with method receiver
func (h *HandlerRegistry) register(server *mcp.Server, tool *mcp.Tool, spec ToolSpec, method any) {
	switch m := method.(type) {
	// Search tools
	case func(context.Context, SearchArgs) (SearchResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, SearchCrossWikiArgs) (SearchCrossWikiResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, SearchSuggestionsArgs) (SearchSuggestionsResult, error):
		register(h, server, tool, spec, m)

	// Article tools
	case func(context.Context, ArticleSimpleArgs) (ArticleSimpleResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, ArticleDetailsArgs) (ArticleDetailsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, ArticleListArgs) (ArticleListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, MostLinkedArgs) (MostLinkedResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, NewArticlesArgs) (NewArticlesResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, PopularArticlesArgs) (PopularArticlesResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, TopArticlesArgs) (TopArticlesResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, TopArticlesByHubArgs) (TopArticlesByHubResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, RelatedPagesArgs) (RelatedPagesResult, error):
		register(h, server, tool, spec, m)

	// Activity tools
	case func(context.Context, LatestActivityArgs) (LatestActivityResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, RecentlyChangedArgs) (RecentlyChangedResult, error):
		register(h, server, tool, spec, m)

	// Navigation tools
	case func(context.Context, NavigationArgs) (NavigationResult, error):
		register(h, server, tool, spec, m)

	// User tools
	case func(context.Context, UserDetailsArgs) (UserDetailsResult, error):
		register(h, server, tool, spec, m)

	// WAM tools
	case func(context.Context, WamIndexArgs) (WamIndexResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, WamDateRangeArgs) (WamDateRangeResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, WamLanguagesArgs) (WamLanguagesResult, error):
		register(h, server, tool, spec, m)

	// Wiki tools
	case func(context.Context, WikisByStringArgs) (WikisByStringResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, WikiDetailsArgs) (WikiDetailsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, TopWikisArgs) (TopWikisResult, error):
		register(h, server, tool, spec, m)

	default:
		h.logger.Error("Unknown method type, tool not registered", "tool", spec.Name)
	}
}
