package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/missingtone/chord"
	"github.com/jsphweid/missingtone/level"
	"github.com/jsphweid/missingtone/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(levelsCmd)
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Lists the modes",
	Long:  `Lists the modes with their roots, chord types and round time`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return PrintLevels(cmd.OutOrStdout())
	},
}

func regimeName(r model.Regime) string {
	if r == model.Free {
		return "free"
	}
	return "stacked"
}

func PrintLevels(w io.Writer) error {
	for _, m := range level.Modes {
		l, err := level.Get(m)
		if err != nil {
			return err
		}
		roots := make([]string, len(l.Roots))
		for i, r := range l.Roots {
			roots[i] = r.Pretty()
		}
		types := make([]string, len(l.Types))
		for i, t := range l.Types {
			types[i] = chord.Symbol(t)
		}
		fmt.Fprintln(w, headerStyle.Render(m.String()))
		fmt.Fprintf(w, "  roots:  %s\n", strings.Join(roots, " "))
		fmt.Fprintf(w, "  types:  %s\n", strings.Join(types, " "))
		fmt.Fprintf(w, "  time:   %v\n", l.RoundTime)
		fmt.Fprintf(w, "  octave: %s\n", regimeName(l.Regime))
	}
	return nil
}
