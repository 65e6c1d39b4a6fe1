// internal/stats/sink.go
//
// Counter sinks fed by the Recorder.
// A Sink is passed explicitly to whatever consumes parsed results, so nothing
// here depends on process-wide registries. Implementations:
//   - MemorySink:     map-backed, for tests and single-process use.
//   - PrometheusSink: counters on a caller-supplied registry.
//   - SQLiteSink:     durable counters, also read back by the summary job.

package stats

import (
	"context"
	"errors"
)

// Sink receives counter increments for observed posts.
type Sink interface {
	// IncPosts counts every inbound post, parsed or not.
	IncPosts(ctx context.Context) error
	// IncGame counts a parsed result keyed by (day, score).
	IncGame(ctx context.Context, day uint32, score uint8) error
	// IncHardMode counts a hard-mode result for day.
	IncHardMode(ctx context.Context, day uint32) error
	// IncDarkMode counts a dark-theme result for day.
	IncDarkMode(ctx context.Context, day uint32) error
}

type multi []Sink

// Multi fans every increment out to all sinks. Each sink is always called;
// the returned error joins the individual failures.
func Multi(sinks ...Sink) Sink { return multi(sinks) }

func (m multi) each(fn func(Sink) error) error {
	var errs []error
	for _, s := range m {
		if err := fn(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multi) IncPosts(ctx context.Context) error {
	return m.each(func(s Sink) error { return s.IncPosts(ctx) })
}

func (m multi) IncGame(ctx context.Context, day uint32, score uint8) error {
	return m.each(func(s Sink) error { return s.IncGame(ctx, day, score) })
}

func (m multi) IncHardMode(ctx context.Context, day uint32) error {
	return m.each(func(s Sink) error { return s.IncHardMode(ctx, day) })
}

func (m multi) IncDarkMode(ctx context.Context, day uint32) error {
	return m.each(func(s Sink) error { return s.IncDarkMode(ctx, day) })
}
