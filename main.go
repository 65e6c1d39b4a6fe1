// main.go
//
// Entry point for the wordle-stats service.
// Commands:
//   serve    start the ingest/metrics HTTP server
//   parse    parse one post from a file or stdin and print it as JSON
//   summary  build and publish the daily summary
//   token    mint a JWT for POST /ingest
//
// Configuration comes from the environment and an optional .env file
// (see internal/config).

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-stats/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	rootCmd := &cobra.Command{
		Use:          "wordle-stats",
		Short:        "Collect puzzle results from social posts",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newServeCmd(cfg))
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newSummaryCmd(cfg))
	rootCmd.AddCommand(newTokenCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		log.Debug().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
