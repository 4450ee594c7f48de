package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestReachable(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	t.Cleanup(healthy.Close)

	unhealthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(unhealthy.Close)

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(slow.Close)

	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()

	a := NewHealthAdapter(100 * time.Millisecond)
	ctx := context.Background()

	if !a.Reachable(ctx, healthy.URL+"/") {
		t.Fatal("healthy storage reported unreachable")
	}
	for name, url := range map[string]string{
		"non-200": unhealthy.URL,
		"timeout": slow.URL,
		"refused": downURL,
	} {
		if a.Reachable(ctx, url) {
			t.Fatalf("%s: expected unreachable", name)
		}
	}
}

func TestNewHealthAdapter_DefaultTimeout(t *testing.T) {
	if got := NewHealthAdapter(0).client.Timeout; got != ProbeTimeout {
		t.Fatalf("timeout = %v, want %v", got, ProbeTimeout)
	}
}
