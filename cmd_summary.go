package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-stats/internal/config"
	"github.com/robalobadob/wordle-stats/internal/db"
	"github.com/robalobadob/wordle-stats/internal/stats"
	"github.com/robalobadob/wordle-stats/internal/summary"
)

func newSummaryCmd(cfg config.Config) *cobra.Command {
	var day uint32
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Build and publish the summary for a puzzle day",
		Long: `Build the summary post for a puzzle day from the stored counters.

Without --day, summarises yesterday's puzzle. The text is posted to
SUMMARY_WEBHOOK_URL when set, otherwise printed to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("day") {
				day = summary.Yesterday(time.Now())
			}

			conn, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer conn.Close()

			rep, err := summary.Build(cmd.Context(), stats.NewSQLiteSink(conn), day)
			if err != nil {
				return err
			}
			log.Info().Uint32("day", day).Int64("total", rep.Total).Msg("summary built")

			var pub summary.Publisher = summary.WriterPublisher{W: cmd.OutOrStdout()}
			if cfg.WebhookURL != "" && !dryRun {
				pub = summary.NewWebhookPublisher(cfg.WebhookURL, cfg.WebhookToken)
			}
			return pub.Publish(cmd.Context(), rep.Text())
		},
	}

	cmd.Flags().Uint32Var(&day, "day", 0, "puzzle day to summarise (default: yesterday)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print instead of posting to the webhook")

	return cmd
}
