package wikia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetUserDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/User/Details" {
			t.Errorf("path = %q, want /User/Details", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("ids"); got != "119245,26312" {
			t.Errorf("ids = %q, want 119245,26312", got)
		}
		if got := q.Get("size"); got != "150" {
			t.Errorf("size = %q, want 150", got)
		}
		w.Write([]byte(`{"items":[{"user_id":119245,"name":"Someone"}],"basepath":"http://foo.wikia.com"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	body, err := client.GetUserDetails(context.Background(), []int{119245, 26312}, &UserDetailsOptions{Size: 150})
	if err != nil {
		t.Fatalf("GetUserDetails failed: %v", err)
	}
	if _, ok := body["basepath"]; !ok {
		t.Error("expected raw body with basepath field")
	}
}

func TestGetUserDetailsNoOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("ids"); got != "119245" {
			t.Errorf("ids = %q, want 119245", got)
		}
		if q.Has("size") {
			t.Error("size was not supplied and must be omitted")
		}
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	if _, err := client.GetUserDetails(context.Background(), []int{119245}, nil); err != nil {
		t.Fatalf("GetUserDetails failed: %v", err)
	}
}
