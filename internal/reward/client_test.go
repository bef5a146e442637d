package reward

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientCheck_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg-bytes"))
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	if err := c.Check(t.Context(), server.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientCheck_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	err := c.Check(t.Context(), server.URL)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	var unavail *ErrImageUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrImageUnavailable, got %T", err)
	}
	if unavail.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", unavail.StatusCode)
	}
}

func TestClientCheck_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the address refuses connections

	c := NewClient()
	err := c.Check(t.Context(), server.URL)
	var unavail *ErrImageUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrImageUnavailable for refused connection, got %v", err)
	}
}

func TestClientFetch_StreamsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	body, contentType, err := c.Fetch(t.Context(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer body.Close()

	if contentType != "image/png" {
		t.Errorf("expected image/png, got %q", contentType)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("unexpected body: %q", data)
	}
}
