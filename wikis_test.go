package wikia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetWikisByString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Wikis/ByString" {
			t.Errorf("path = %q, want /Wikis/ByString", r.URL.Path)
		}
		q := r.URL.Query()
		// The search term goes out under the literal key "string".
		if got := q.Get("string"); got != "runescape" {
			t.Errorf("string = %q, want runescape", got)
		}
		if got := q.Get("includeDomain"); got != "true" {
			t.Errorf("includeDomain = %q, want true", got)
		}
		if got := q.Get("expand"); got != "1" {
			t.Errorf("expand = %q, want 1", got)
		}
		w.Write([]byte(`{"items":[],"total":0,"batches":0}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	body, err := client.GetWikisByString(context.Background(), "runescape", &WikisByStringOptions{
		IncludeDomain: true,
		Expand:        true,
	})
	if err != nil {
		t.Fatalf("GetWikisByString failed: %v", err)
	}
	if _, ok := body["total"]; !ok {
		t.Error("expected raw body with total field")
	}
}

func TestGetWikiDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Wikis/Details" {
			t.Errorf("path = %q, want /Wikis/Details", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("ids"); got != "159,831" {
			t.Errorf("ids = %q, want 159,831", got)
		}
		if got := q.Get("snippet"); got != "30" {
			t.Errorf("snippet = %q, want 30", got)
		}
		w.Write([]byte(`{"items":{"159":{"name":"RuneScape Wiki"}}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	items, err := client.GetWikiDetails(context.Background(), []int{159, 831}, &WikiDetailsOptions{Snippet: 30})
	if err != nil {
		t.Fatalf("GetWikiDetails failed: %v", err)
	}

	detail, ok := items.(map[string]any)
	if !ok {
		t.Fatalf("items = %T, want map", items)
	}
	if _, ok := detail["159"]; !ok {
		t.Error("expected wiki 159 in items")
	}
}

func TestGetTopWikis(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Wikis/List" {
			t.Errorf("path = %q, want /Wikis/List", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("hub"); got != "Gaming" {
			t.Errorf("hub = %q, want Gaming", got)
		}
		if got := q.Get("lang"); got != "en" {
			t.Errorf("lang = %q, want en", got)
		}
		if got := q.Get("expand"); got != "1" {
			t.Errorf("expand = %q, want 1", got)
		}
		w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.GetTopWikis(context.Background(), &TopWikisOptions{
		Hub:    "Gaming",
		Lang:   "en",
		Expand: true,
	})
	if err != nil {
		t.Fatalf("GetTopWikis failed: %v", err)
	}
}

func TestGetTopWikisNoOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query parameters, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	if _, err := client.GetTopWikis(context.Background(), nil); err != nil {
		t.Fatalf("GetTopWikis failed: %v", err)
	}
}
