// internal/summary/report.go
//
// Daily summary of captured results.
// Builds a Report from stored counters and renders it as post text:
//
//	#Wordle - Day 261
//	12,345 results captured
//	1,234 hard mode users
//	2,345 dark mode users
//	3: 🟩🟩🟩🟩 2,469 (20%)
//	...
//
// Each bar is 20 squares wide at 100%.

package summary

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/robalobadob/wordle-stats/internal/stats"
)

const barWidth = 20

// Source is the read side of a counter store.
type Source interface {
	GameCounts(ctx context.Context, day uint32) ([]stats.ScoreCount, error)
	ModeCount(ctx context.Context, day uint32, mode stats.Mode) (int64, error)
}

// Report holds the numbers for one puzzle day.
type Report struct {
	Day    uint32             `json:"day"`
	Total  int64              `json:"total"`
	Hard   int64              `json:"hardMode"`
	Dark   int64              `json:"darkMode"`
	Scores []stats.ScoreCount `json:"scores"`
}

// Build reads the counters for day from src.
func Build(ctx context.Context, src Source, day uint32) (*Report, error) {
	scores, err := src.GameCounts(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("game counts: %w", err)
	}
	hard, err := src.ModeCount(ctx, day, stats.ModeHard)
	if err != nil {
		return nil, fmt.Errorf("hard mode count: %w", err)
	}
	dark, err := src.ModeCount(ctx, day, stats.ModeDark)
	if err != nil {
		return nil, fmt.Errorf("dark mode count: %w", err)
	}

	if scores == nil {
		scores = []stats.ScoreCount{}
	}
	r := &Report{Day: day, Hard: hard, Dark: dark, Scores: scores}
	for _, s := range scores {
		r.Total += s.Count
	}
	return r, nil
}

// Percent returns count as a whole percentage of the report total.
func (r *Report) Percent(count int64) float64 {
	if r.Total == 0 {
		return 0
	}
	return math.Round(float64(count) / float64(r.Total) * 100)
}

// Text renders the report as a post body.
func (r *Report) Text() string {
	p := message.NewPrinter(language.English)
	lines := []string{
		fmt.Sprintf("#Wordle - Day %d", r.Day),
		p.Sprintf("%d results captured", r.Total),
		p.Sprintf("%d hard mode users", r.Hard),
		p.Sprintf("%d dark mode users", r.Dark),
	}
	for _, s := range r.Scores {
		pct := r.Percent(s.Count)
		bar := strings.Repeat("🟩", int(math.Round(barWidth*pct/100)))
		lines = append(lines, p.Sprintf("%d: %s %d (%.0f%%)", s.Score, bar, s.Count, pct))
	}
	return strings.Join(lines, "\n")
}
