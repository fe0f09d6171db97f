package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/missingtone/chord"
	"github.com/jsphweid/missingtone/constants"
	"github.com/jsphweid/missingtone/level"
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/note"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/jsphweid/missingtone/util"
	"github.com/spf13/cobra"
)

var (
	buildRng  rngFlags
	buildMode string
	buildJSON bool
)

func init() {
	buildRng.register(buildCmd)
	buildCmd.Flags().StringVar(&buildMode, "mode", constants.DefaultMode, "mode whose octave regime is used")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "print the chord as json")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build <root> <type>",
	Short: "Builds one chord with a missing tone",
	Long: `Builds one chord with a missing tone.

Types: Maj, Min, Dim, Aug, Sus2, Sus4, Maj7, Dom7, Min7, Dim7, HDim7 (any case).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := BuildChord(buildRng.rand(), args[0], args[1], buildMode)
		if err != nil {
			return err
		}
		if buildJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(NewChordView(c))
		}
		printChord(cmd.OutOrStdout(), c)
		return nil
	},
}

// BuildChord parses the root and type and builds with the mode's regime.
func BuildChord(rng util.Rand, root, typ, mode string) (model.Chord, error) {
	s, err := pitch.ParseSpelling(root)
	if err != nil {
		return model.Chord{}, err
	}
	t, err := chord.ParseType(typ)
	if err != nil {
		return model.Chord{}, err
	}
	m, err := level.ParseMode(mode)
	if err != nil {
		return model.Chord{}, err
	}
	l, err := level.Get(m)
	if err != nil {
		return model.Chord{}, err
	}
	if !level.Allows(l, s, t) {
		log.Debug("chord is outside the mode's pool", "mode", m, "root", s, "type", chord.Symbol(t))
	}
	return chord.Build(rng, s, t, l.Regime)
}

// RandomChord draws a root and type from the level and builds it.
func RandomChord(rng util.Rand, l model.Level) (model.Chord, error) {
	root, t := level.Pick(rng, l)
	return chord.Build(rng, root, t, l.Regime)
}

func printChord(w io.Writer, c model.Chord) {
	fmt.Fprintln(w, promptStyle.Render(chord.Prompt(c)))
	names := make([]string, len(c.Visible))
	for i, v := range c.Visible {
		names[i] = note.Format(v.Note)
	}
	fmt.Fprintf(w, "visible: %s\n", strings.Join(names, " "))
	if ledger := ledgerNames(c.Ledger); ledger != "" {
		fmt.Fprintln(w, dimStyle.Render("ledger lines: "+ledger))
	}
}

func ledgerNames(l pitch.Ledger) string {
	var res []string
	if l.Above2 {
		res = append(res, "2 above")
	} else if l.Above1 {
		res = append(res, "1 above")
	}
	if l.Below2 {
		res = append(res, "2 below")
	} else if l.Below1 {
		res = append(res, "1 below")
	}
	return strings.Join(res, ", ")
}

func ledgerView(l pitch.Ledger) model.LedgerView {
	return model.LedgerView{Above2: l.Above2, Above1: l.Above1, Below1: l.Below1, Below2: l.Below2}
}

func NewChordView(c model.Chord) model.ChordView {
	view := model.ChordView{
		Chord:       chord.Describe(c),
		Prompt:      chord.Prompt(c),
		DisplayRoot: note.String(c.DisplayRoot),
		Missing: model.MissingView{
			Spelling:   c.Missing.Spelling.String(),
			PitchClass: int(c.Missing.PitchClass),
		},
		Ledger: ledgerView(c.Ledger),
	}
	for _, v := range c.Visible {
		view.Visible = append(view.Visible, model.NoteView{
			Note:          note.String(v.Note),
			StaffPosition: v.StaffPosition,
			Ledger:        ledgerView(v.Ledger),
		})
	}
	return view
}
