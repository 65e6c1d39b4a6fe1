package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-stats/internal/config"
	"github.com/robalobadob/wordle-stats/internal/db"
	"github.com/robalobadob/wordle-stats/internal/httpserver"
	"github.com/robalobadob/wordle-stats/internal/stats"
)

func newServeCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ingest and metrics HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer conn.Close()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			prom, err := stats.NewPrometheusSink(reg)
			if err != nil {
				return fmt.Errorf("register metrics: %w", err)
			}
			store := stats.NewSQLiteSink(conn)

			srv := httpserver.New(httpserver.Options{
				Recorder:     stats.NewRecorder(stats.Multi(store, prom)),
				Source:       store,
				Gatherer:     reg,
				IngestSecret: cfg.IngestSecret,
				ClientOrigin: cfg.ClientOrigin,
			})
			if cfg.IngestSecret == "" {
				log.Warn().Msg("INGEST_JWT_SECRET not set; /ingest is open")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("starting wordle-stats")
			if err := srv.Run(ctx, ":"+cfg.Port); err != nil {
				log.Error().Err(err).Msg("server exited")
				return err
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}
}
