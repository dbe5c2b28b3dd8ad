package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fai-plates/platemeta/internal/defuse"
)

func newDefuseCmd() *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "defuse TEXT",
		Short: "Encode free text the way it is embedded in header cards",
		Example: `  platemeta defuse "Максутова"
  platemeta defuse --decode 0JzQsNC60YHRg9GC0L7QstCw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !decode {
				fmt.Fprintln(cmd.OutOrStdout(), defuse.Defuse(args[0]))
				return nil
			}
			text, err := defuse.Undefuse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode a defused token")

	return cmd
}
