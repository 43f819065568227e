package safebrowsing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIsThreat_NoAPIKey(t *testing.T) {
	c := New("")
	if c.IsThreat(context.Background(), "http://example.com") {
		t.Error("missing API key must disable lookups")
	}
}

func TestIsThreat_MatchFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected key in query, got %q", r.URL.RawQuery)
		}
		var req lookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.ThreatInfo.ThreatEntries) != 1 || req.ThreatInfo.ThreatEntries[0].URL != "http://evil.test" {
			t.Errorf("unexpected threat entries: %+v", req.ThreatInfo.ThreatEntries)
		}
		w.Write([]byte(`{"matches":[{"threatType":"SOCIAL_ENGINEERING"}]}`))
	}))
	defer srv.Close()

	c := New("test-key", WithEndpoint(srv.URL))
	if !c.IsThreat(context.Background(), "http://evil.test") {
		t.Error("expected threat for matched URL")
	}
}

func TestIsThreat_NoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New("test-key", WithEndpoint(srv.URL))
	if c.IsThreat(context.Background(), "http://example.com") {
		t.Error("expected no threat for empty response")
	}
}

func TestIsThreat_FailsOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New("test-key", WithEndpoint(srv.URL))
	if c.IsThreat(context.Background(), "http://example.com") {
		t.Error("server error must degrade to no threat")
	}

	// Unreachable endpoint.
	c = New("test-key", WithEndpoint("http://127.0.0.1:1"))
	if c.IsThreat(context.Background(), "http://example.com") {
		t.Error("transport error must degrade to no threat")
	}
}

func TestIsThreat_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client disconnect
		// and cancels the request context; otherwise this handler
		// never returns and srv.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := New("test-key", WithEndpoint(srv.URL))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if c.IsThreat(ctx, "http://example.com") {
		t.Error("timeout must degrade to no threat")
	}
}
