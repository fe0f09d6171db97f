package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/missingtone/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a midi file",
	Long:  `Prints the chords in a midi file, one line per onset`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Inspect(args[0], cmd.OutOrStdout())
	},
}

func Inspect(path string, w io.Writer) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	for i, line := range midi.Describe(midi.Chords(s)) {
		fmt.Fprintf(w, "chord %d: %s\n", i, line)
	}
	return nil
}
