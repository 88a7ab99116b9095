package wikia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetNavigationData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Navigation/Data" {
			t.Errorf("path = %q, want /Navigation/Data", r.URL.Path)
		}
		w.Write([]byte(`{"navigation":{"wiki":[{"text":"Top content","children":[]}],"wikia":[]}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	nav, err := client.GetNavigationData(context.Background())
	if err != nil {
		t.Fatalf("GetNavigationData failed: %v", err)
	}

	tree, ok := nav.(map[string]any)
	if !ok {
		t.Fatalf("navigation = %T, want map", nav)
	}
	if _, ok := tree["wiki"]; !ok {
		t.Error("expected wiki entries in navigation tree")
	}
}

func TestGetNavigationDataMissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	nav, err := client.GetNavigationData(context.Background())
	if err != nil {
		t.Fatalf("GetNavigationData failed: %v", err)
	}
	if nav != nil {
		t.Errorf("navigation = %v, want nil for missing field", nav)
	}
}
