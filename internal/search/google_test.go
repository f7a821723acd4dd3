// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// withGoogleServer points googleSearchBase at a test server for the
// duration of one test.
func withGoogleServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(handler)
	old := googleSearchBase
	googleSearchBase = ts.URL
	t.Cleanup(func() {
		googleSearchBase = old
		ts.Close()
	})
	return ts
}

func TestNewGoogleBackendRequiresCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  types.SearchConfig
		want bool
	}{
		{"both present", types.SearchConfig{APIKey: "k", EngineID: "cx"}, true},
		{"missing key", types.SearchConfig{EngineID: "cx"}, false},
		{"missing engine id", types.SearchConfig{APIKey: "k"}, false},
		{"both missing", types.SearchConfig{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewGoogleBackend(tt.cfg, nil)
			if (b != nil) != tt.want {
				t.Errorf("NewGoogleBackend(%+v) != nil is %v, want %v", tt.cfg, b != nil, tt.want)
			}
		})
	}
}

func TestGoogleSearchRequestShape(t *testing.T) {
	var gotQuery map[string]string
	withGoogleServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"key": r.URL.Query().Get("key"),
			"cx":  r.URL.Query().Get("cx"),
			"q":   r.URL.Query().Get("q"),
			"num": r.URL.Query().Get("num"),
		}
		json.NewEncoder(w).Encode(googleResponse{})
	})

	b := &GoogleBackend{APIKey: "secret", EngineID: "engine42"}
	if _, err := b.Search(context.Background(), "рост на 10%", 5); err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := map[string]string{"key": "secret", "cx": "engine42", "q": "рост на 10%", "num": "5"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("param %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestGoogleSearchCapsResultCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "10"},
		{-3, "10"},
		{25, "10"},
		{3, "3"},
	}
	for _, tt := range tests {
		var gotNum string
		withGoogleServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotNum = r.URL.Query().Get("num")
			json.NewEncoder(w).Encode(googleResponse{})
		})

		b := &GoogleBackend{APIKey: "k", EngineID: "cx"}
		if _, err := b.Search(context.Background(), "q", tt.n); err != nil {
			t.Fatalf("Search(n=%d): %v", tt.n, err)
		}
		if gotNum != tt.want {
			t.Errorf("Search(n=%d) sent num=%s, want %s", tt.n, gotNum, tt.want)
		}
	}
}

func TestGoogleSearchDefaultsMissingFields(t *testing.T) {
	withGoogleServer(t, func(w http.ResponseWriter, _ *http.Request) {
		// One complete item, one with only a link, one empty object.
		w.Write([]byte(`{"items":[
			{"title":"Full","link":"https://full","snippet":"text"},
			{"link":"https://partial"},
			{}
		]}`))
	})

	b := &GoogleBackend{APIKey: "k", EngineID: "cx"}
	got, err := b.Search(context.Background(), "q", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[1].Title != "" || got[1].Link != "https://partial" || got[1].Snippet != "" {
		t.Errorf("partial item = %+v", got[1])
	}
	if got[2] != (types.CandidateSource{}) {
		t.Errorf("empty item = %+v, want zero value", got[2])
	}
}

func TestGoogleSearchNon200(t *testing.T) {
	withGoogleServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	b := &GoogleBackend{APIKey: "k", EngineID: "cx"}
	if _, err := b.Search(context.Background(), "q", 10); err == nil {
		t.Fatal("Search on HTTP 403: want error")
	}
}

func TestGoogleSearchMalformedBody(t *testing.T) {
	withGoogleServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	})

	b := &GoogleBackend{APIKey: "k", EngineID: "cx"}
	if _, err := b.Search(context.Background(), "q", 10); err == nil {
		t.Fatal("Search on malformed body: want error")
	}
}

func TestGoogleSearchEmptyItems(t *testing.T) {
	withGoogleServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	})

	b := &GoogleBackend{APIKey: "k", EngineID: "cx"}
	got, err := b.Search(context.Background(), "q", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
