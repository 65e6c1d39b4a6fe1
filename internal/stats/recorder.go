package stats

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-stats/internal/parser"
)

// Recorder turns raw post text into counter increments.
type Recorder struct {
	sink Sink
}

// NewRecorder returns a Recorder writing to sink.
func NewRecorder(sink Sink) *Recorder {
	return &Recorder{sink: sink}
}

// Observe parses one post and records it.
//
// Returns the parsed result and true when the text was a puzzle share.
// Text that does not parse is not an error: it returns (nil, false, nil).
// A non-nil error only means a sink failed; the remaining increments are
// still attempted.
func (r *Recorder) Observe(ctx context.Context, text string) (*parser.Result, bool, error) {
	var errs []error
	if err := r.sink.IncPosts(ctx); err != nil {
		errs = append(errs, err)
	}

	res, err := parser.Parse(text)
	if err != nil {
		log.Debug().Err(err).Msg("post is not a puzzle result")
		return nil, false, r.sinkErr(errs)
	}
	log.Debug().Uint32("day", res.Day).Uint8("score", res.Score).Msg("parsed puzzle result")

	if err := r.sink.IncGame(ctx, res.Day, res.Score); err != nil {
		errs = append(errs, err)
	}
	if res.HardMode {
		if err := r.sink.IncHardMode(ctx, res.Day); err != nil {
			errs = append(errs, err)
		}
	}
	if res.DarkTheme() {
		if err := r.sink.IncDarkMode(ctx, res.Day); err != nil {
			errs = append(errs, err)
		}
	}
	return res, true, r.sinkErr(errs)
}

func (r *Recorder) sinkErr(errs []error) error {
	err := errors.Join(errs...)
	if err != nil {
		log.Warn().Err(err).Msg("record counters")
	}
	return err
}
