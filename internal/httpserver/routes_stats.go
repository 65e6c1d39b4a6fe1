// internal/httpserver/routes_stats.go
//
// Read-only routes over the stored counters:
//   - GET /stats/{day}         → per-score counts plus hard/dark totals (JSON)
//   - GET /stats/{day}/summary → the summary post text (text/plain)

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-stats/internal/summary"
)

// mountStats registers all /stats routes.
func (s *Server) mountStats(r chi.Router) {
	r.Route("/stats/{day}", func(r chi.Router) {
		r.Get("/", s.handleStats)
		r.Get("/summary", s.handleSummary)
	})
}

// report loads the report for the {day} URL parameter, writing an error
// response and returning nil when that fails.
func (s *Server) report(w http.ResponseWriter, r *http.Request) *summary.Report {
	day, err := strconv.ParseUint(chi.URLParam(r, "day"), 10, 32)
	if err != nil {
		http.Error(w, `{"error":"bad_day"}`, http.StatusBadRequest)
		return nil
	}
	if s.opts.Source == nil {
		http.Error(w, `{"error":"no_store"}`, http.StatusServiceUnavailable)
		return nil
	}
	rep, err := summary.Build(r.Context(), s.opts.Source, uint32(day))
	if err != nil {
		log.Error().Err(err).Uint64("day", day).Msg("build report")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return nil
	}
	return rep
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if rep := s.report(w, r); rep != nil {
		_ = json.NewEncoder(w).Encode(rep)
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if rep := s.report(w, r); rep != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(rep.Text()))
	}
}
