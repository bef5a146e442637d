package reward

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrImageUnavailable reports that a previously issued image URL does not
// render. The image service is best-effort and fails transiently; this
// error is surfaced to the caller, which owns the retry affordance —
// unlike content failures it cannot be papered over with a placeholder.
type ErrImageUnavailable struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ErrImageUnavailable) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("image unavailable (status %d): %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("image unavailable: %s: %v", e.URL, e.Err)
}

func (e *ErrImageUnavailable) Unwrap() error { return e.Err }

const imageRequestTimeout = 60 * time.Second

// Client fetches generated images over plain HTTP GET.
type Client struct {
	http *http.Client
}

// NewClient creates an image client with a generation-friendly timeout
// (the image service renders on demand; first byte can take a while).
func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: imageRequestTimeout},
	}
}

// Check issues a GET against the URL and reports whether it renders.
// Non-2xx and transport failures come back as *ErrImageUnavailable.
func (c *Client) Check(ctx context.Context, imageURL string) error {
	resp, err := c.get(ctx, imageURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}

// Fetch streams the image. The caller must close the returned body.
// The content type of the upstream response is returned alongside.
func (c *Client) Fetch(ctx context.Context, imageURL string) (io.ReadCloser, string, error) {
	resp, err := c.get(ctx, imageURL)
	if err != nil {
		return nil, "", err
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) get(ctx context.Context, imageURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create image request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrImageUnavailable{URL: imageURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &ErrImageUnavailable{URL: imageURL, StatusCode: resp.StatusCode}
	}

	return resp, nil
}
