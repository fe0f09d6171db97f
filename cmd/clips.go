package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/missingtone/constants"
	"github.com/jsphweid/missingtone/midi"
	"github.com/jsphweid/missingtone/util"
	"github.com/spf13/cobra"
)

var clipCount int

func init() {
	clipsCmd.Flags().IntVar(&clipCount, "count", midi.ClipKeys, "number of clips, starting at Ab3")
	rootCmd.AddCommand(clipsCmd)
}

var clipsCmd = &cobra.Command{
	Use:   "clips",
	Short: "Writes the short note clip bank",
	Long:  `Writes one short midi clip per key into MISSINGTONE_OUT_DIR/clips, named by clip index`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := constants.GetClipDir()
		if err := util.EnsureDir(dir); err != nil {
			return err
		}
		paths, err := midi.WriteClipBank(dir, clipCount)
		if err != nil {
			return err
		}
		log.Info("wrote clip bank", "dir", dir, "clips", len(paths))
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}
