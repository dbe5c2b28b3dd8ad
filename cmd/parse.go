package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fai-plates/platemeta/internal/cards"
	"github.com/fai-plates/platemeta/internal/normalize"
)

// parseKinds lists the value kinds accepted by the parse command.
var parseKinds = []string{"exposure", "time", "lt", "lst", "ra", "dec", "date", "object"}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse KIND VALUE",
		Short: "Normalize a single raw logbook value",
		Long: `Parses one raw logbook value and prints its canonical form and the header
cards it expands to.

Kinds: ` + strings.Join(parseKinds, ", "),
		Example: `  platemeta parse exposure "1h;5h"
  platemeta parse ra "05h33m"
  platemeta parse dec "-01 28 02"
  platemeta parse date "31.08-01.09.67"
  platemeta parse lst "13h23m;5h13"`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: parseKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeParse(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	return cmd
}

func executeParse(w io.Writer, kind, raw string) error {
	switch kind {
	case "exposure":
		set, err := cards.ExposureCards(raw)
		if err != nil {
			return err
		}
		printCards(w, set)
	case "time":
		times, err := normalize.ReformatTimes(raw)
		if err != nil {
			return err
		}
		for _, t := range times {
			fmt.Fprintln(w, t)
		}
	case "lt", "lst":
		label := normalize.LocalTimeLabel
		if kind == "lst" {
			label = normalize.SiderealTimeLabel
		}
		set, err := cards.StartTimeCards(label, raw)
		if err != nil {
			return err
		}
		printCards(w, set)
	case "ra":
		deg, err := normalize.RAToDeg(raw)
		if err != nil {
			return err
		}
		text, err := normalize.ReformatRA(raw)
		if err != nil {
			return err
		}
		set := cards.NewSet()
		set.Set(cards.KeyRAOriginal, text)
		set.Set(cards.KeyRADegrees, deg)
		printCards(w, set)
	case "dec":
		deg, err := normalize.DecToDeg(raw)
		if err != nil {
			return err
		}
		text, err := normalize.ReformatDec(raw)
		if err != nil {
			return err
		}
		set := cards.NewSet()
		set.Set(cards.KeyDecOriginal, text)
		set.Set(cards.KeyDecDegrees, deg)
		printCards(w, set)
	case "date":
		set, err := cards.DateCards(raw)
		if err != nil {
			return err
		}
		printCards(w, set)
	case "object":
		printCards(w, cards.ObjectCards(raw))
	default:
		return fmt.Errorf("unknown kind %q (must be one of %s)", kind, strings.Join(parseKinds, ", "))
	}
	return nil
}

func printCards(w io.Writer, set *cards.Set) {
	for _, c := range set.Cards() {
		fmt.Fprintf(w, "%-8s = %v\n", c.Key, c.Value)
	}
}
