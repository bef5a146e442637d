// Package story generates short didactic children's stories featuring the
// child and their selected characters.
package story

import (
	"time"

	"github.com/tolgahan/oka/internal/catalog"
)

// Story is a generated tale. Immutable once created; it stays the
// "current story" until the next generation call replaces it.
type Story struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Content    string              `json:"content"`
	Theme      string              `json:"theme"`
	Characters []catalog.Character `json:"characters"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// Config holds story generation tuning.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns story generation defaults. Temperature is kept
// high relative to other calls: variety across stories is a feature.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}
