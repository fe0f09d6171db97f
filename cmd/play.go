package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/missingtone/chord"
	"github.com/jsphweid/missingtone/constants"
	"github.com/jsphweid/missingtone/level"
	"github.com/jsphweid/missingtone/marker"
	"github.com/jsphweid/missingtone/note"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/jsphweid/missingtone/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	playRng    rngFlags
	playMode   string
	playRounds int
	playTimed  bool
)

func init() {
	playRng.register(playCmd)
	playCmd.Flags().StringVar(&playMode, "mode", constants.DefaultMode, "easy, medium, hard or jazz")
	playCmd.Flags().IntVar(&playRounds, "rounds", 10, "number of rounds, 0 plays until input ends")
	playCmd.Flags().BoolVar(&playTimed, "timed", false, "answers after the round time count as misses")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Plays rounds on the terminal",
	Long: `Plays rounds on the terminal.

Answer with a spelling (F#, Bb), a note (F#4) or a staff position (1.5).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := level.ParseMode(playMode)
		if err != nil {
			return err
		}
		l, err := level.Get(m)
		if err != nil {
			return err
		}
		opts := []session.Option{session.WithLogger(log.Default())}
		if playTimed {
			opts = append(opts, session.Timed())
		}
		g := session.New(l, playRng.rand(), opts...)
		return Play(cmd.InOrStdin(), cmd.OutOrStdout(), g, playRounds)
	},
}

// Play runs rounds until the count is reached or input ends.
func Play(in io.Reader, out io.Writer, g *session.Game, rounds int) error {
	scanner := bufio.NewScanner(in)
	for i := 0; rounds == 0 || i < rounds; i++ {
		r, err := g.StartRound(time.Now())
		if err != nil {
			return err
		}
		printChord(out, r.Chord)
		fmt.Fprint(out, "> ")

		var guess pitch.Spelling
		for {
			if !scanner.Scan() {
				fmt.Fprintln(out)
				printScore(out, g)
				return scanner.Err()
			}
			guess, err = parseGuess(strings.TrimSpace(scanner.Text()))
			if err == nil {
				break
			}
			fmt.Fprintf(out, "%v\n> ", err)
		}

		v, err := g.Submit(time.Now(), guess.Letter, guess.Accidental)
		switch {
		case errors.Is(err, session.ErrRoundExpired):
			fmt.Fprintln(out, incorrectStyle.Render("Too slow!"))
			fmt.Fprintln(out, chord.Explain(r.Chord))
		case err != nil:
			return err
		case v.Correct:
			fmt.Fprintln(out, correctStyle.Render("Correct!"))
		default:
			fmt.Fprintln(out, incorrectStyle.Render("Incorrect!"))
			fmt.Fprintln(out, chord.Explain(r.Chord))
		}
		fmt.Fprintln(out)
	}
	printScore(out, g)
	return nil
}

// parseGuess takes a staff position, a note or a bare spelling.
func parseGuess(s string) (pitch.Spelling, error) {
	if pos, err := strconv.ParseFloat(s, 64); err == nil {
		m := marker.New()
		m.MoveTo(pos)
		return m.Note().Spelling, nil
	}
	if n, err := note.Parse(s); err == nil {
		return n.Spelling, nil
	}
	return pitch.ParseSpelling(s)
}

func printScore(w io.Writer, g *session.Game) {
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("score: %d/%d", g.Points(), g.Rounds())))
}
