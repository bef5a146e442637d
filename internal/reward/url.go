// Package reward turns a finished story into a printable coloring-page
// reward image, served by a stateless prompt-to-image HTTP service.
package reward

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultImageBaseURL   = "https://image.pollinations.ai"
	placeholderBaseURL    = "https://placehold.co/600x400/orange/white"
	coloringPromptPattern = "coloring page of %s, simple black lines, white background, no shading"
)

// URLOptions are optional query parameters for the image service.
// All zero values mean "omit" — the bare /prompt/<text> URL is the most
// reliable form; extra parameters have been observed to trigger upstream
// 500s, so nothing is defaulted here.
type URLOptions struct {
	Width  int
	Height int
	Seed   int
	NoLogo bool
	Model  string
}

// BuildImageURL composes the final image URL for a scene description:
// the coloring-page template around the scene, percent-encoded as a
// path segment, plus any requested query parameters.
func BuildImageURL(base, scene string, opts URLOptions) string {
	if base == "" {
		base = defaultImageBaseURL
	}

	prompt := fmt.Sprintf(coloringPromptPattern, strings.TrimSpace(scene))
	u := base + "/prompt/" + url.PathEscape(prompt)

	q := url.Values{}
	if opts.Width > 0 {
		q.Set("width", strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		q.Set("height", strconv.Itoa(opts.Height))
	}
	if opts.Seed > 0 {
		q.Set("seed", strconv.Itoa(opts.Seed))
	}
	if opts.NoLogo {
		q.Set("nologo", "true")
	}
	if opts.Model != "" {
		q.Set("model", opts.Model)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	return u
}

// PlaceholderURL returns the static placeholder image carrying the story
// title as display text. Used when scene generation fails; never empty.
// Spaces are encoded as %20, not '+' — the placeholder service renders
// '+' literally in some modes.
func PlaceholderURL(storyTitle string) string {
	text := strings.ReplaceAll(url.QueryEscape(storyTitle), "+", "%20")
	return placeholderBaseURL + "?text=" + text
}
