package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jsphweid/missingtone/constants"
	"github.com/jsphweid/missingtone/level"
	"github.com/jsphweid/missingtone/midi"
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/util"
	"github.com/spf13/cobra"
)

var (
	exportRng        rngFlags
	exportMode       string
	exportWithAnswer bool
	exportCount      int
)

func init() {
	exportRng.register(exportCmd)
	exportCmd.Flags().StringVar(&exportMode, "mode", constants.DefaultMode, "easy, medium, hard or jazz")
	exportCmd.Flags().BoolVar(&exportWithAnswer, "with-answer", false, "follow the chord with the missing tone")
	exportCmd.Flags().IntVar(&exportCount, "count", 1, "number of random chords when no root and type are given")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [<root> <type>]",
	Short: "Writes chords as midi files",
	Long: `Writes chords as midi files into MISSINGTONE_OUT_DIR.

Without a root and type, chords are drawn from the mode.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return cobra.ExactArgs(2)(cmd, args)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := exportRng.rand()
		var chords []model.Chord
		if len(args) == 2 {
			c, err := BuildChord(rng, args[0], args[1], exportMode)
			if err != nil {
				return err
			}
			chords = append(chords, c)
		} else {
			m, err := level.ParseMode(exportMode)
			if err != nil {
				return err
			}
			l, err := level.Get(m)
			if err != nil {
				return err
			}
			for i := 0; i < exportCount; i++ {
				c, err := RandomChord(rng, l)
				if err != nil {
					return err
				}
				chords = append(chords, c)
			}
		}

		for _, c := range chords {
			path, err := Export(constants.GetOutDir(), c, exportWithAnswer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

// Export writes c to a fresh file in dir and returns its path.
func Export(dir string, c model.Chord, withAnswer bool) (string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, uuid.NewString()+".mid")
	if err := midi.WriteChordFile(path, c, withAnswer); err != nil {
		return "", err
	}
	log.Debug("exported chord", "path", path, "answer", withAnswer)
	return path, nil
}
