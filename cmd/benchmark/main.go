// Command benchmark measures live latency of the Wikia API through the
// client. It issues a handful of real requests against a wiki and the
// cross-wiki endpoints and prints per-call timings.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ravener/wikia"
)

// timeCall reports the wall time of a single API call.
func timeCall(name string, fn func() error) {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("   %-28s error: %v\n", name, err)
		return
	}
	fmt.Printf("   %-28s %v\n", name, elapsed)
}

// measureConnectionReuse shows the cost of the first request (TCP setup)
// against follow-up requests on the pooled connection.
func measureConnectionReuse(ctx context.Context, client *wikia.Client) {
	fmt.Println("=== Connection Reuse ===")
	fmt.Println()

	start := time.Now()
	if _, err := client.GetNavigationData(ctx); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("   First call (new connection):    %v\n", firstCall)

	start = time.Now()
	_, _ = client.GetNavigationData(ctx)
	secondCall := time.Since(start)
	fmt.Printf("   Second call (pooled connection): %v\n", secondCall)
	if secondCall > 0 {
		fmt.Printf("   Speedup: %.1fx faster\n", float64(firstCall)/float64(secondCall))
	}
	fmt.Println()
}

// measureWikiEndpoints times the main wiki-scoped endpoint families.
func measureWikiEndpoints(ctx context.Context, client *wikia.Client) {
	fmt.Printf("=== Wiki Endpoints (%s) ===\n", client.Wiki())
	fmt.Println()

	timeCall("Search", func() error {
		_, err := client.Search(ctx, "the", &wikia.SearchOptions{Limit: 5})
		return err
	})
	timeCall("GetTopArticles", func() error {
		_, err := client.GetTopArticles(ctx, &wikia.TopArticlesOptions{Limit: 5})
		return err
	})
	timeCall("GetLatestActivity", func() error {
		_, err := client.GetLatestActivity(ctx, &wikia.ActivityOptions{Limit: 5})
		return err
	})
	timeCall("GetArticleList", func() error {
		_, err := client.GetArticleList(ctx, &wikia.ArticleListOptions{Limit: 5})
		return err
	})
	timeCall("SearchSuggestions", func() error {
		_, err := client.SearchSuggestions(ctx, "a")
		return err
	})
	fmt.Println()
}

// measureCrossWikiEndpoints times the endpoints that work without a wiki.
func measureCrossWikiEndpoints(ctx context.Context, client *wikia.Client) {
	fmt.Println("=== Cross-Wiki Endpoints ===")
	fmt.Println()

	timeCall("GetWikisByString", func() error {
		_, err := client.GetWikisByString(ctx, "star", &wikia.WikisByStringOptions{Limit: 5})
		return err
	})
	timeCall("GetTopWikis", func() error {
		_, err := client.GetTopWikis(ctx, &wikia.TopWikisOptions{Limit: 5})
		return err
	})
	timeCall("GetWamIndex", func() error {
		_, err := client.GetWamIndex(ctx, &wikia.WamIndexOptions{Limit: 5})
		return err
	})
	timeCall("GetMinMaxWamIndexDate", func() error {
		_, err := client.GetMinMaxWamIndexDate(ctx)
		return err
	})
	fmt.Println()
}

func main() {
	fmt.Println("Wikia API Client - Latency Measurements")
	fmt.Println("=======================================")
	fmt.Println()

	wikiName := os.Getenv("WIKIA_WIKI")
	if wikiName == "" {
		wikiName = "runescape"
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := wikia.NewClient(wikia.WithWiki(wikiName), wikia.WithLogger(logger))
	crossClient := wikia.NewClient(wikia.WithLogger(logger))
	ctx := context.Background()

	measureConnectionReuse(ctx, client)
	measureWikiEndpoints(ctx, client)
	measureCrossWikiEndpoints(ctx, crossClient)

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Notes:")
	fmt.Println("• Every call is exactly one GET; there is no client-side cache or retry")
	fmt.Println("• Connection pooling and HTTP/2 make follow-up calls cheaper than the first")
	fmt.Println("• Set WIKIA_WIKI to benchmark a different wiki")
}
