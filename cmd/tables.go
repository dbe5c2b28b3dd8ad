package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fai-plates/platemeta/internal/config"
)

func newTablesCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the telescope, observer and method lookup tables",
		Long: `Prints the lookup tables used to translate logbook entries, including any
entries added by the configuration file, as YAML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg.AssemblerTables())
			if err != nil {
				return fmt.Errorf("failed to marshal YAML: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	return cmd
}
