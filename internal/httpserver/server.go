// internal/httpserver/server.go
//
// HTTP server wiring for the stats service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     request logging).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Ingestion: POST /ingest (bearer JWT when a secret is configured).
//   - Read-only stats: mounted under /stats (see routes_stats.go).
//
// Notes:
//   - /metrics serves the registry handed in through Options, not the
//     Prometheus default registry.
//   - Text that is not a puzzle share is counted as a post and otherwise
//     ignored; it is never reported as an error.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-stats/internal/parser"
	"github.com/robalobadob/wordle-stats/internal/stats"
	"github.com/robalobadob/wordle-stats/internal/summary"
)

// maxIngestBytes bounds a single POST /ingest body.
const maxIngestBytes = 1 << 20

// Options are the server's collaborators.
type Options struct {
	Recorder     *stats.Recorder
	Source       summary.Source      // read side for /stats
	Gatherer     prometheus.Gatherer // backs /metrics
	IngestSecret string              // empty disables ingest auth
	ClientOrigin string
}

// Server bundles router and collaborators.
type Server struct {
	r    *chi.Mux
	opts Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-stats","endpoints":["/health","/metrics","POST /ingest","/stats/{day}","/stats/{day}/summary"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	if opts.Gatherer != nil {
		s.r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	s.r.With(s.requireIngestToken()).Post("/ingest", s.handleIngest)
	s.mountStats(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs method, path, status and duration for every request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("http request")
	})
}

// ------------------------------ INGEST -------------------------------------

// ingestReq accepts a single post, a batch, or both.
type ingestReq struct {
	Text  string   `json:"text"`
	Posts []string `json:"posts"`
}

type ingestRes struct {
	Received int              `json:"received"`
	Parsed   int              `json:"parsed"`
	Results  []*parser.Result `json:"results"`
}

// handleIngest runs every post through the recorder.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req ingestReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxIngestBytes)).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	posts := req.Posts
	if req.Text != "" {
		posts = append([]string{req.Text}, posts...)
	}
	if len(posts) == 0 {
		http.Error(w, `{"error":"no_posts"}`, http.StatusBadRequest)
		return
	}

	res := ingestRes{Received: len(posts), Results: []*parser.Result{}}
	failed := false
	for _, text := range posts {
		parsed, ok, err := s.opts.Recorder.Observe(r.Context(), text)
		if err != nil {
			failed = true
		}
		if ok {
			res.Parsed++
			res.Results = append(res.Results, parsed)
		}
	}
	if failed {
		http.Error(w, `{"error":"record_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}
