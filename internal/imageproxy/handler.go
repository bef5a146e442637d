// Package imageproxy exposes a pass-through endpoint for generated images.
// Browsers block cross-origin reads of the image service's responses, so
// the reward screen fetches through this server-side hop instead.
package imageproxy

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/tolgahan/oka/internal/reward"
)

// cacheControl pins proxied images for a day; generated images are
// immutable per URL.
const cacheControl = "public, max-age=86400"

// Handler proxies GET /?url=<absolute http(s) URL>.
type Handler struct {
	client *reward.Client
	log    *zap.Logger
}

// NewHandler creates the proxy handler.
func NewHandler(client *reward.Client, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{client: client, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	target := r.URL.Query().Get("url")
	if target == "" {
		http.Error(w, "missing url parameter", http.StatusBadRequest)
		return
	}

	parsed, err := url.Parse(target)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		http.Error(w, "url must be absolute http(s)", http.StatusBadRequest)
		return
	}

	body, contentType, err := h.client.Fetch(r.Context(), target)
	if err != nil {
		var unavail *reward.ErrImageUnavailable
		if errors.As(err, &unavail) {
			h.log.Warn("upstream image fetch failed",
				zap.String("url", target),
				zap.Int("status", unavail.StatusCode),
			)
			http.Error(w, "upstream image unavailable", http.StatusBadGateway)
			return
		}
		http.Error(w, "proxy error", http.StatusBadGateway)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", cacheControl)

	if _, err := io.Copy(w, body); err != nil {
		h.log.Warn("streaming proxied image interrupted", zap.Error(err))
	}
}
