package summary

import "time"

// epoch is the release date of puzzle 0.
var epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PuzzleDay returns the puzzle number published on t's UTC date.
// Dates before the first puzzle map to 0.
func PuzzleDay(t time.Time) uint32 {
	d := t.UTC().Sub(epoch)
	if d < 0 {
		return 0
	}
	return uint32(d / (24 * time.Hour))
}

// Yesterday returns the puzzle before today's, which is the last one whose
// results are complete when the summary job runs.
func Yesterday(now time.Time) uint32 {
	if d := PuzzleDay(now); d > 0 {
		return d - 1
	}
	return 0
}
