package cmd

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/missingtone/constants"
	"github.com/jsphweid/missingtone/util"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "missingtone",
	Short: "Chord ear training",
	Long: `Chords arrive with one tone missing. Name the missing tone.

Modes: easy, medium, hard, jazz.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// rngFlags are shared by every command that builds chords.
type rngFlags struct {
	seed  int64
	draws []int
}

func (f *rngFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", constants.GetSeed(), "random seed")
	cmd.Flags().IntSliceVar(&f.draws, "draws", nil, "replay these random draws instead of seeding")
}

func (f *rngFlags) rand() util.Rand {
	if len(f.draws) > 0 {
		return util.NewSequenceRand(f.draws...)
	}
	return rand.New(rand.NewSource(f.seed))
}
