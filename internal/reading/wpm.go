// Package reading analyzes a child's recorded read-aloud of a story and
// computes the headline words-per-minute metric locally.
package reading

import (
	"math"
	"strings"
)

// WPM computes words correctly read per minute. The duration divisor is
// clamped to 1 second so a zero-length recording cannot divide by zero.
// The word count comes from the model's analysis, but the arithmetic is
// done here: the headline metric must not depend on a language model
// doing division correctly.
func WPM(correctWordCount, durationSeconds int) int {
	if correctWordCount < 0 {
		correctWordCount = 0
	}
	safe := durationSeconds
	if safe < 1 {
		safe = 1
	}
	return int(math.Round(float64(correctWordCount) / float64(safe) * 60))
}

// WordCount returns the space-delimited token count of the reference text.
// It characterizes the story being read, not the child's attempt.
func WordCount(text string) int {
	if text == "" {
		return 0
	}
	return len(strings.Split(text, " "))
}
