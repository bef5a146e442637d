package profile

import "math"

// Aggregates are the derived statistics of a reading history.
type Aggregates struct {
	TotalReadings int
	AverageWPM    int
}

// Recalculate recomputes the aggregates from the full history. The history
// is small and bounded, so full recomputation is always correct and cannot
// drift the way an incremental average would.
func Recalculate(history []ReadingSession) Aggregates {
	if len(history) == 0 {
		return Aggregates{}
	}

	sum := 0
	for _, s := range history {
		sum += s.WPM
	}

	return Aggregates{
		TotalReadings: len(history),
		AverageWPM:    int(math.Round(float64(sum) / float64(len(history)))),
	}
}
