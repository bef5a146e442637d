package imageproxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/tolgahan/oka/internal/reward"
)

func newTestHandler() *Handler {
	return NewHandler(reward.NewClient(), nil)
}

func TestProxyStreamsUpstreamImage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer upstream.Close()

	req := httptest.NewRequest(http.MethodGet, "/?url="+url.QueryEscape(upstream.URL), nil)
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != cacheControl {
		t.Errorf("cache control = %q, want %q", cc, cacheControl)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "png-bytes" {
		t.Errorf("body = %q, want png-bytes", body)
	}
}

func TestProxyRejectsMissingURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestProxyRejectsRelativeURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?url=/etc/passwd", nil)
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestProxyRejectsNonGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/?url=http://example.com/a.png", nil)
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestProxyMapsUpstreamFailureToBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	req := httptest.NewRequest(http.MethodGet, "/?url="+url.QueryEscape(upstream.URL), nil)
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}
