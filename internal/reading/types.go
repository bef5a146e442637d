package reading

// Analysis is the outcome of evaluating one recorded read-aloud.
// It carries the fields a ReadingSession is built from; id, story linkage,
// and timestamps belong to the caller.
type Analysis struct {
	WPM             int    `json:"wpm"`
	AccuracyScore   int    `json:"accuracyScore"` // 0-100
	Feedback        string `json:"feedback"`
	WordCount       int    `json:"wordCount"` // reference text length, not the attempt
	DurationSeconds int    `json:"durationSeconds"`
}

// Config holds analysis tuning.
type Config struct {
	MaxTokens int
	// ExcerptRunes caps how much of the story text is sent with the audio.
	ExcerptRunes int
}

// DefaultConfig returns analysis defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    512,
		ExcerptRunes: 100,
	}
}
