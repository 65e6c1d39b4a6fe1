// internal/stats/memory.go
//
// In-memory Sink. Counters live in maps guarded by an RWMutex and are lost
// when the process exits.

package stats

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// GameKey identifies a (day, score) counter.
type GameKey struct {
	Day   uint32
	Score uint8
}

// Counts is a point-in-time copy of a MemorySink.
type Counts struct {
	Posts int64
	Games map[GameKey]int64
	Hard  map[uint32]int64
	Dark  map[uint32]int64
}

// MemorySink is a map-backed Sink.
type MemorySink struct {
	mu    sync.RWMutex // guards everything below
	posts int64
	games map[GameKey]int64
	hard  map[uint32]int64
	dark  map[uint32]int64
}

// NewMemorySink constructs an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		games: make(map[GameKey]int64),
		hard:  make(map[uint32]int64),
		dark:  make(map[uint32]int64),
	}
}

func (m *MemorySink) IncPosts(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts++
	return nil
}

func (m *MemorySink) IncGame(ctx context.Context, day uint32, score uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[GameKey{Day: day, Score: score}]++
	return nil
}

func (m *MemorySink) IncHardMode(ctx context.Context, day uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hard[day]++
	return nil
}

func (m *MemorySink) IncDarkMode(ctx context.Context, day uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dark[day]++
	return nil
}

// Snapshot copies the current counters.
func (m *MemorySink) Snapshot() Counts {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c := Counts{
		Posts: m.posts,
		Games: make(map[GameKey]int64, len(m.games)),
		Hard:  make(map[uint32]int64, len(m.hard)),
		Dark:  make(map[uint32]int64, len(m.dark)),
	}
	for k, v := range m.games {
		c.Games[k] = v
	}
	for k, v := range m.hard {
		c.Hard[k] = v
	}
	for k, v := range m.dark {
		c.Dark[k] = v
	}
	return c
}

// GameCounts returns the non-zero score counters for day, ascending by score.
func (m *MemorySink) GameCounts(ctx context.Context, day uint32) ([]ScoreCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []ScoreCount
	for k, v := range m.games {
		if k.Day == day && v > 0 {
			out = append(out, ScoreCount{Score: k.Score, Count: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out, nil
}

// ModeCount returns the hard or dark counter for day.
func (m *MemorySink) ModeCount(ctx context.Context, day uint32, mode Mode) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch mode {
	case ModeHard:
		return m.hard[day], nil
	case ModeDark:
		return m.dark[day], nil
	}
	return 0, fmt.Errorf("unknown mode %q", mode)
}

// PostCount returns the number of observed posts.
func (m *MemorySink) PostCount(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.posts, nil
}
