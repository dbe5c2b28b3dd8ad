package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "platemeta",
		Short: "Normalize photographic plate logbook metadata into FITS header cards",
		Long: `Platemeta reads the transcribed observation logbook of a historical plate
archive and turns each entry into FITS header cards.

Dates, times and coordinates written in the logbook's many legacy notations are
normalized, multi-exposure fields are expanded into indexed keywords, and
telescope, observer and method names are translated from the reference tables.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML configuration file")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newAnnotateCmd(opts))
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newDefuseCmd())
	cmd.AddCommand(newTablesCmd(opts))
	cmd.AddCommand(newLogbookCmd())

	return cmd
}
