package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fai-plates/platemeta/internal/logbook"
)

func newLogbookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logbook",
		Short: "Logbook maintenance tools",
	}

	cmd.AddCommand(newLogbookConvertCmd())

	return cmd
}

func newLogbookConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert SOURCE DEST.parquet",
		Short:   "Convert a logbook to Parquet",
		Example: `  platemeta logbook convert logbook.csv logbook.parquet`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := logbook.NewLoader(args[0]).Load()
			if err != nil {
				return fmt.Errorf("failed to load logbook: %w", err)
			}
			if err := logbook.SaveParquet(book, args[1]); err != nil {
				return err
			}
			slog.Info("Logbook converted", "source", args[0], "dest", args[1], "records", len(book))
			return nil
		},
	}

	return cmd
}
