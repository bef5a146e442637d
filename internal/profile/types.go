// Package profile is the persisted user state engine: keyed profiles,
// reading history, and the transient per-session selections.
package profile

import (
	"time"

	"github.com/tolgahan/oka/internal/catalog"
	"github.com/tolgahan/oka/internal/story"
)

// ReadingSession is one completed recording+analysis. Created exactly
// once, never mutated, prepended to the profile history (newest first).
type ReadingSession struct {
	ID              string    `json:"id"`
	StoryID         string    `json:"storyId"`
	AudioRef        string    `json:"audioUrl,omitempty"`
	DurationSeconds int       `json:"durationSeconds"`
	WordCount       int       `json:"wordCount"`
	WPM             int       `json:"wpm"`
	AccuracyScore   int       `json:"accuracyScore,omitempty"` // 0-100
	Feedback        string    `json:"feedback,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Reward is an unlocked reward image.
type Reward struct {
	ID         string    `json:"id"`
	ImageURL   string    `json:"imageUrl"`
	UnlockedAt time.Time `json:"unlockedAt"`
	StoryTitle string    `json:"storyTitle"`
}

// UserProfile is one child's persisted record, keyed by display name.
// TotalReadings and AverageWPM are derived from History and recomputed on
// every mutation.
type UserProfile struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	TotalReadings int              `json:"totalReadings"`
	AverageWPM    int              `json:"averageWpm"`
	Rewards       []Reward         `json:"rewards"`
	History       []ReadingSession `json:"history"` // newest first
}

// State is the whole persisted record: the active user plus every saved
// profile, keyed by trimmed display name. Written as a single value on
// every mutation.
type State struct {
	User       *UserProfile           `json:"user"`
	SavedUsers map[string]UserProfile `json:"savedUsers"`
}

// StateRepo persists the State record under a fixed storage key.
type StateRepo interface {
	// Load reads the record. ok is false when nothing has been stored yet.
	Load() (state State, ok bool, err error)
	// Save writes the record wholesale.
	Save(state State) error
}

// Session groups the transient, non-persisted selections of the current
// interaction: the story being read and the chosen characters.
type Session struct {
	CurrentStory       *story.Story
	SelectedCharacters []catalog.Character
}
