package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-stats/internal/config"
	"github.com/robalobadob/wordle-stats/internal/httpserver"
)

func newTokenCmd(cfg config.Config) *cobra.Command {
	var subject string
	var days int

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for POST /ingest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.IngestSecret == "" {
				return fmt.Errorf("INGEST_JWT_SECRET is not set")
			}
			tok, exp, err := httpserver.SignIngestToken(cfg.IngestSecret, subject, time.Duration(days)*24*time.Hour)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "listener", "client name stored in the token")
	cmd.Flags().IntVar(&days, "days", 30, "token lifetime in days")

	return cmd
}
