package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fai-plates/platemeta/internal/assemble"
	"github.com/fai-plates/platemeta/internal/batch"
	"github.com/fai-plates/platemeta/internal/cards"
	"github.com/fai-plates/platemeta/internal/config"
	"github.com/fai-plates/platemeta/internal/logbook"
	"github.com/fai-plates/platemeta/internal/results"
)

func newAnnotateCmd(root *rootOptions) *cobra.Command {
	var logbookPath string
	var headersPath string
	var outputPath string
	var format string
	var concurrency int
	var failFast bool

	cmd := &cobra.Command{
		Use:   "annotate [flags] SCAN...",
		Short: "Build header cards for scanned plates from the logbook",
		Long: `Looks up each scan's plate ID in the logbook and builds the header cards
for it. The plate ID is the last underscore separated part of the file name
before the extension, so "fai_schmidt_lc_0123.fits" is plate 0123.

Raw scan headers can be supplied as a YAML file mapping scan path to cards; the
stale IRAF cards are removed from them and plates that already carry both
RA-ORIG and an astrometric solution are skipped.`,
		Example: `  # Annotate two scans and print YAML to stdout
  platemeta annotate --logbook logbook.csv fai_0001.fits fai_0002.fits

  # Write JSON, stopping at the first bad logbook entry
  platemeta annotate --logbook logbook.parquet --format json --fail-fast -o cards.json scans/*.fits`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("logbook") {
				cfg.Logbook = logbookPath
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Concurrency = concurrency
			}
			if cmd.Flags().Changed("fail-fast") {
				cfg.FailFast = failFast
			}
			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("validating config: %w", err)
			}
			if cfg.Logbook == "" {
				return fmt.Errorf("--logbook is required")
			}

			var headers map[string]*cards.Set
			if headersPath != "" {
				headers, err = batch.LoadHeaders(headersPath)
				if err != nil {
					return err
				}
			}

			return executeAnnotate(cmd, cfg, args, headers, outputPath)
		},
	}

	cmd.Flags().StringVar(&logbookPath, "logbook", "", "Path to logbook file (.csv or .parquet)")
	cmd.Flags().StringVar(&headersPath, "headers", "", "YAML file with raw scan headers keyed by scan path")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", config.FormatYAML, "Output format (yaml or json)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Number of plates processed concurrently")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort on the first plate that fails")

	return cmd
}

func executeAnnotate(cmd *cobra.Command, cfg *config.Config, scans []string, headers map[string]*cards.Set, outputPath string) error {
	slog.Info("Loading logbook", "path", cfg.Logbook)
	book, err := logbook.NewLoader(cfg.Logbook).Load()
	if err != nil {
		return fmt.Errorf("failed to load logbook: %w", err)
	}
	slog.Info("Logbook loaded", "records", len(book))

	assembler := assemble.New(cfg.AssemblerTables(), cfg.Site, assemble.Options{
		EndTimeFromLT: cfg.EndTimeFromLT,
	})

	plates := batch.PlatesFromPaths(scans, headers)
	res, err := batch.Run(cmd.Context(), assembler, book, plates, batch.Options{
		Concurrency: cfg.Concurrency,
		FailFast:    cfg.FailFast,
	})
	if err != nil {
		return err
	}

	report := results.NewReport(cfg.Logbook, res)
	slog.Info("Annotation finished",
		"total", report.Run.Total,
		"annotated", report.Run.Annotated,
		"skipped", report.Run.Skipped,
		"failed", report.Run.Failed)

	if outputPath == "" {
		return results.Write(cmd.OutOrStdout(), report, cfg.Format)
	}
	if err := results.Save(outputPath, report, cfg.Format); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Results saved to: %s\n", outputPath)
	return nil
}
