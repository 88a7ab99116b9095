package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ravener/wikia"
)

func testAPI(serverURL string) *API {
	return NewAPI(wikia.NewClient(wikia.WithWiki("dev"), wikia.WithBaseURL(serverURL)))
}

// =============================================================================
// SearchMCP Tests
// =============================================================================

func TestSearchMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Search/List" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "dragon" {
			t.Errorf("unexpected query param: %s", r.URL.Query().Get("query"))
		}
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("unexpected limit param: %s", r.URL.Query().Get("limit"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"batches":1,"items":[{"id":50,"title":"Dragon"}],"total":1}`))
	}))
	defer server.Close()

	result, err := testAPI(server.URL).SearchMCP(context.Background(), SearchArgs{Query: "dragon", Limit: 5})
	if err != nil {
		t.Fatalf("SearchMCP failed: %v", err)
	}

	items, ok := result.Results["items"].([]any)
	if !ok {
		t.Fatalf("Results[items] = %T, want array", result.Results["items"])
	}
	if len(items) != 1 {
		t.Errorf("len(items) = %d, want 1", len(items))
	}
}

func TestSearchMCP_EmptyQuery(t *testing.T) {
	_, err := testAPI("http://127.0.0.1:0").SearchMCP(context.Background(), SearchArgs{Query: ""})
	if err == nil {
		t.Error("Expected error for empty query")
	}
}

func TestSearchMCP_LongQuery(t *testing.T) {
	long := strings.Repeat("x", MaxQueryLength+1)
	_, err := testAPI("http://127.0.0.1:0").SearchMCP(context.Background(), SearchArgs{Query: long})
	if err == nil {
		t.Error("Expected error for oversized query")
	}
}

func TestSearchMCP_WikiRequired(t *testing.T) {
	hit := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	// Cross-wiki client, no wiki configured
	api := NewAPI(wikia.NewClient(wikia.WithBaseURL(server.URL)))

	_, err := api.SearchMCP(context.Background(), SearchArgs{Query: "dragon"})
	if !wikia.IsWikiRequired(err) {
		t.Fatalf("err = %v, want wiki required", err)
	}
	if hit {
		t.Error("No request should be sent without a wiki")
	}
}

// =============================================================================
// SearchSuggestionsMCP Tests
// =============================================================================

func TestSearchSuggestionsMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/SearchSuggestions/List" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"title":"Dragon"},{"title":"Dragon Slayer"}]}`))
	}))
	defer server.Close()

	result, err := testAPI(server.URL).SearchSuggestionsMCP(context.Background(), SearchSuggestionsArgs{Query: "dr"})
	if err != nil {
		t.Fatalf("SearchSuggestionsMCP failed: %v", err)
	}

	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
	if len(result.Titles) != 2 || result.Titles[0] != "Dragon" {
		t.Errorf("Titles = %v, want [Dragon Dragon Slayer]", result.Titles)
	}
}

func TestSearchSuggestionsMCP_EmptyQuery(t *testing.T) {
	_, err := testAPI("http://127.0.0.1:0").SearchSuggestionsMCP(context.Background(), SearchSuggestionsArgs{})
	if err == nil {
		t.Error("Expected error for empty query")
	}
}

// =============================================================================
// Article Tool Tests
// =============================================================================

func TestGetArticleAsSimpleJSONMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Articles/AsSimpleJson" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("id") != "50" {
			t.Errorf("unexpected id param: %s", r.URL.Query().Get("id"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sections":[{"title":"Dragon","level":1}]}`))
	}))
	defer server.Close()

	result, err := testAPI(server.URL).GetArticleAsSimpleJSONMCP(context.Background(), ArticleSimpleArgs{ID: 50})
	if err != nil {
		t.Fatalf("GetArticleAsSimpleJSONMCP failed: %v", err)
	}

	sections, ok := result.Sections.([]any)
	if !ok || len(sections) != 1 {
		t.Errorf("Sections = %#v, want one section", result.Sections)
	}
}

func TestGetArticleAsSimpleJSONMCP_InvalidID(t *testing.T) {
	api := testAPI("http://127.0.0.1:0")

	if _, err := api.GetArticleAsSimpleJSONMCP(context.Background(), ArticleSimpleArgs{ID: 0}); err == nil {
		t.Error("Expected error for zero id")
	}
	if _, err := api.GetArticleAsSimpleJSONMCP(context.Background(), ArticleSimpleArgs{ID: -1}); err == nil {
		t.Error("Expected error for negative id")
	}
}

func TestGetArticleDetailsMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ids") != "50,60" {
			t.Errorf("unexpected ids param: %s", r.URL.Query().Get("ids"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":{"50":{"title":"Dragon"},"60":{"title":"Sword"}},"basepath":"http://dev.wikia.com"}`))
	}))
	defer server.Close()

	result, err := testAPI(server.URL).GetArticleDetailsMCP(context.Background(), ArticleDetailsArgs{IDs: []int{50, 60}})
	if err != nil {
		t.Fatalf("GetArticleDetailsMCP failed: %v", err)
	}

	if result.Details["basepath"] != "http://dev.wikia.com" {
		t.Errorf("basepath = %v, want http://dev.wikia.com", result.Details["basepath"])
	}
}

func TestGetArticleDetailsMCP_NoIDs(t *testing.T) {
	_, err := testAPI("http://127.0.0.1:0").GetArticleDetailsMCP(context.Background(), ArticleDetailsArgs{})
	if err == nil {
		t.Error("Expected error for missing ids")
	}
}

func TestGetTopArticlesByHubMCP_EmptyHub(t *testing.T) {
	_, err := testAPI("http://127.0.0.1:0").GetTopArticlesByHubMCP(context.Background(), TopArticlesByHubArgs{})
	if err == nil {
		t.Error("Expected error for missing hub")
	}
}

func TestGetRelatedPagesMCP_InvalidIDs(t *testing.T) {
	api := testAPI("http://127.0.0.1:0")

	if _, err := api.GetRelatedPagesMCP(context.Background(), RelatedPagesArgs{}); err == nil {
		t.Error("Expected error for missing ids")
	}
	if _, err := api.GetRelatedPagesMCP(context.Background(), RelatedPagesArgs{IDs: []int{50, -3}}); err == nil {
		t.Error("Expected error for negative id")
	}
}

// =============================================================================
// Navigation and User Tool Tests
// =============================================================================

func TestGetNavigationDataMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Navigation/Data" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"navigation":{"wiki":[{"text":"Top Content","href":"/wiki/Top"}]}}`))
	}))
	defer server.Close()

	result, err := testAPI(server.URL).GetNavigationDataMCP(context.Background(), NavigationArgs{})
	if err != nil {
		t.Fatalf("GetNavigationDataMCP failed: %v", err)
	}

	nav, ok := result.Navigation.(map[string]any)
	if !ok {
		t.Fatalf("Navigation = %T, want object", result.Navigation)
	}
	if _, ok := nav["wiki"]; !ok {
		t.Error("Navigation should contain the wiki menu")
	}
}

func TestGetUserDetailsMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/User/Details" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("ids") != "119245" {
			t.Errorf("unexpected ids param: %s", r.URL.Query().Get("ids"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"user_id":119245,"name":"Example"}],"basepath":"http://dev.wikia.com"}`))
	}))
	defer server.Close()

	result, err := testAPI(server.URL).GetUserDetailsMCP(context.Background(), UserDetailsArgs{IDs: []int{119245}})
	if err != nil {
		t.Fatalf("GetUserDetailsMCP failed: %v", err)
	}

	if itemCount(result.Users["items"]) != 1 {
		t.Errorf("items = %v, want one user", result.Users["items"])
	}
}

func TestGetUserDetailsMCP_NoIDs(t *testing.T) {
	_, err := testAPI("http://127.0.0.1:0").GetUserDetailsMCP(context.Background(), UserDetailsArgs{})
	if err == nil {
		t.Error("Expected error for missing ids")
	}
}

// =============================================================================
// WAM Tool Tests
// =============================================================================

func TestGetMinMaxWamIndexDateMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/WAM/MinMaxWamIndexDate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"min_max_dates":{"min_date":1000,"max_date":2000}}`))
	}))
	defer server.Close()

	result, err := testAPI(server.URL).GetMinMaxWamIndexDateMCP(context.Background(), WamDateRangeArgs{})
	if err != nil {
		t.Fatalf("GetMinMaxWamIndexDateMCP failed: %v", err)
	}

	if result.MinDate != "1970-01-01T00:16:40Z" {
		t.Errorf("MinDate = %q, want 1970-01-01T00:16:40Z", result.MinDate)
	}
	if result.MaxDate != "1970-01-01T00:33:20Z" {
		t.Errorf("MaxDate = %q, want 1970-01-01T00:33:20Z", result.MaxDate)
	}
}

func TestGetWamIndexMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("wam_day") != "1234567890" {
			t.Errorf("unexpected wam_day param: %s", r.URL.Query().Get("wam_day"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"wam_index":{"159":{"wam_rank":1}},"wam_results_total":1}`))
	}))
	defer server.Close()

	result, err := testAPI(server.URL).GetWamIndexMCP(context.Background(), WamIndexArgs{WamDay: 1234567890})
	if err != nil {
		t.Fatalf("GetWamIndexMCP failed: %v", err)
	}

	if itemCount(result.Index["wam_index"]) != 1 {
		t.Errorf("wam_index = %v, want one wiki", result.Index["wam_index"])
	}
}

// =============================================================================
// Wiki Tool Tests
// =============================================================================

func TestGetWikisByStringMCP_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("string") != "runescape" {
			t.Errorf("unexpected string param: %s", r.URL.Query().Get("string"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":304,"name":"RuneScape Wiki"}],"total":1}`))
	}))
	defer server.Close()

	result, err := testAPI(server.URL).GetWikisByStringMCP(context.Background(), WikisByStringArgs{Query: "runescape"})
	if err != nil {
		t.Fatalf("GetWikisByStringMCP failed: %v", err)
	}

	if itemCount(result.Wikis["items"]) != 1 {
		t.Errorf("items = %v, want one wiki", result.Wikis["items"])
	}
}

func TestGetWikiDetailsMCP_NoIDs(t *testing.T) {
	_, err := testAPI("http://127.0.0.1:0").GetWikiDetailsMCP(context.Background(), WikiDetailsArgs{})
	if err == nil {
		t.Error("Expected error for missing ids")
	}
}

// =============================================================================
// Shared Error Path Tests
// =============================================================================

func TestMCPMethods_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "Internal Server Error"}`))
	}))
	defer server.Close()

	_, err := testAPI(server.URL).GetTopWikisMCP(context.Background(), TopWikisArgs{})
	if err == nil {
		t.Fatal("Expected error for server error")
	}
	if !wikia.IsStatus(err, http.StatusInternalServerError) {
		t.Errorf("err = %v, want status 500", err)
	}
}

func TestMCPMethods_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Don't send a response - wait for context cancellation
		<-r.Context().Done()
	}))
	defer server.Close()

	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := testAPI(server.URL).GetLatestActivityMCP(cancelCtx, LatestActivityArgs{})
	if err == nil {
		t.Error("Expected error for canceled context")
	}
}

func TestResultsMarshal(t *testing.T) {
	// Result structs are serialized by the MCP SDK with encoding/json;
	// the wrapped payloads must round-trip as plain JSON values.
	result := SearchResult{Results: map[string]any{"items": []any{map[string]any{"id": float64(50)}}}}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"results":{"items":[{"id":50}]}}` {
		t.Errorf("marshal = %s", data)
	}
}
