package wikia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetMinMaxWamIndexDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/WAM/MinMaxWamIndexDate" {
			t.Errorf("path = %q, want /WAM/MinMaxWamIndexDate", r.URL.Path)
		}
		w.Write([]byte(`{"min_max_dates":{"min_date":1000,"max_date":2000}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	dates, err := client.GetMinMaxWamIndexDate(context.Background())
	if err != nil {
		t.Fatalf("GetMinMaxWamIndexDate failed: %v", err)
	}

	// Seconds from the API become millisecond instants.
	if want := time.UnixMilli(1000000); !dates.MinDate.Equal(want) {
		t.Errorf("MinDate = %v, want %v", dates.MinDate, want)
	}
	if want := time.UnixMilli(2000000); !dates.MaxDate.Equal(want) {
		t.Errorf("MaxDate = %v, want %v", dates.MaxDate, want)
	}
}

func TestGetWamIndexKeyTranslation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/WAM/WAMIndex" {
			t.Errorf("path = %q, want /WAM/WAMIndex", r.URL.Path)
		}
		q := r.URL.Query()
		// The API really does spell it veritical_id.
		if got := q.Get("veritical_id"); got != "5" {
			t.Errorf("veritical_id = %q, want 5", got)
		}
		if q.Has("verticalID") || q.Has("vertical_id") {
			t.Error("the corrected spellings must not be sent")
		}
		if got := q.Get("wam_day"); got != "1389312000" {
			t.Errorf("wam_day = %q, want 1389312000", got)
		}
		if got := q.Get("wiki_lang"); got != "en" {
			t.Errorf("wiki_lang = %q, want en", got)
		}
		if got := q.Get("fetch_admins"); got != "true" {
			t.Errorf("fetch_admins = %q, want true", got)
		}
		if got := q.Get("sort_column"); got != "wam_rank" {
			t.Errorf("sort_column = %q, want wam_rank", got)
		}
		w.Write([]byte(`{"wam_index":{},"wam_results_total":0}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	body, err := client.GetWamIndex(context.Background(), &WamIndexOptions{
		WamDay:      1389312000,
		VerticalID:  5,
		WikiLang:    "en",
		FetchAdmins: true,
		SortColumn:  "wam_rank",
	})
	if err != nil {
		t.Fatalf("GetWamIndex failed: %v", err)
	}
	if _, ok := body["wam_index"]; !ok {
		t.Error("expected raw body with wam_index field")
	}
}

func TestGetWamIndexOmitsUnsetOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query parameters, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"wam_index":{}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	if _, err := client.GetWamIndex(context.Background(), nil); err != nil {
		t.Fatalf("GetWamIndex failed: %v", err)
	}
}

func TestGetWamLanguages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/WAM/WAMLanguages" {
			t.Errorf("path = %q, want /WAM/WAMLanguages", r.URL.Path)
		}
		if got := r.URL.Query().Get("wam_day"); got != "1389312000" {
			t.Errorf("wam_day = %q, want 1389312000", got)
		}
		w.Write([]byte(`{"languages":["en","de","es"]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	body, err := client.GetWamLanguages(context.Background(), &WamLanguagesOptions{WamDay: 1389312000})
	if err != nil {
		t.Fatalf("GetWamLanguages failed: %v", err)
	}
	if _, ok := body["languages"]; !ok {
		t.Error("expected raw body with languages field")
	}
}
