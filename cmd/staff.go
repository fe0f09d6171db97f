package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jsphweid/missingtone/marker"
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/note"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(staffCmd)
}

var staffCmd = &cobra.Command{
	Use:   "staff <position|note>",
	Short: "Converts between staff positions and notes",
	Long: `Converts between staff positions and notes.

Position 0 is the middle line (B4), each step of 0.5 is one letter.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Staff(cmd.OutOrStdout(), args[0])
	},
}

func Staff(w io.Writer, arg string) error {
	if raw, err := strconv.ParseFloat(arg, 64); err == nil {
		pos := marker.Snap(raw)
		l, octave := pitch.FromStaffPosition(pos)
		n := model.Note{Spelling: pitch.Spelling{Letter: l}, Octave: octave}
		fmt.Fprintln(w, note.String(n))
		if pos != raw {
			fmt.Fprintln(w, dimStyle.Render("snapped to "+formatPosition(pos)))
		}
		printLedger(w, pitch.LedgerFor(pos))
		return nil
	}

	n, err := note.Parse(arg)
	if err != nil {
		return err
	}
	pos := pitch.StaffPosition(n.Spelling.Letter, n.Octave)
	fmt.Fprintln(w, formatPosition(pos))
	printLedger(w, pitch.LedgerFor(pos))
	return nil
}

func formatPosition(pos float64) string {
	return strconv.FormatFloat(pos, 'f', -1, 64)
}

func printLedger(w io.Writer, l pitch.Ledger) {
	if s := ledgerNames(l); s != "" {
		fmt.Fprintln(w, dimStyle.Render("ledger lines: "+s))
	}
}
