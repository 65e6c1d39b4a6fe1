package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-stats/internal/parser"
)

// parseOutput is the JSON printed by the parse command.
type parseOutput struct {
	*parser.Result
	DarkTheme bool `json:"darkTheme"`
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a shared puzzle result and print it as JSON",
		Long: `Parse one post and print the extracted result as JSON.

If no file is provided, reads the post from stdin.
Exits non-zero when the text is not a puzzle result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) == 0 {
				src, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				src, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			res, err := parser.Parse(string(src))
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(parseOutput{Result: res, DarkTheme: res.DarkTheme()})
		},
	}
}
