package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/missingtone/level"
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/jsphweid/missingtone/session"
	"github.com/jsphweid/missingtone/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChord(t *testing.T) {
	c, err := BuildChord(util.NewSequenceRand(2, 0), "C", "maj", "easy")
	require.NoError(t, err)

	view := NewChordView(c)
	assert := assert.New(t)
	assert.Equal("C Major", view.Chord)
	assert.Equal("Make a C Major chord", view.Prompt)
	assert.Equal("C4", view.DisplayRoot)
	assert.Equal("G", view.Missing.Spelling)
	require.Len(t, view.Visible, 2)
	assert.Equal("C4", view.Visible[0].Note)
	assert.Equal(-3.0, view.Visible[0].StaffPosition)
	assert.True(view.Visible[0].Ledger.Below1)
	assert.True(view.Ledger.Below1)
}

func TestBuildChordRejectsBadInput(t *testing.T) {
	_, err := BuildChord(util.NewSequenceRand(), "H", "maj", "easy")
	assert.Error(t, err)
	_, err = BuildChord(util.NewSequenceRand(), "C", "maj9", "easy")
	assert.Error(t, err)
	_, err = BuildChord(util.NewSequenceRand(), "C", "maj", "expert")
	assert.Error(t, err)
}

func TestParseGuess(t *testing.T) {
	cases := map[string]string{
		"F#":  "F#",
		"Bb4": "Bb",
		"db":  "Db",
		"1.5": "E",
		"0":   "B",
	}
	for in, want := range cases {
		got, err := parseGuess(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	_, err := parseGuess("H")
	assert.Error(t, err)
}

func newGame(t *testing.T) *session.Game {
	l, err := level.Get(model.Easy)
	require.NoError(t, err)
	// C Major, G missing
	return session.New(l, util.NewSequenceRand(0, 0, 2, 0), session.WithLogger(log.New(io.Discard)))
}

func TestPlayCorrect(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Play(strings.NewReader("G\n"), &out, newGame(t), 1))

	assert.Contains(t, out.String(), "Make a C Major chord")
	assert.Contains(t, out.String(), "visible: C4 E4")
	assert.Contains(t, out.String(), "Correct!")
	assert.Contains(t, out.String(), "score: 1/1")
}

func TestPlayIncorrectRetriesBadInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Play(strings.NewReader("nonsense\nF#\n"), &out, newGame(t), 1))

	assert.Contains(t, out.String(), "Incorrect!")
	assert.Contains(t, out.String(), "A C Major chord contains a G")
	assert.Contains(t, out.String(), "score: 0/1")
}

func TestPlayStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Play(strings.NewReader(""), &out, newGame(t), 0))
	assert.Contains(t, out.String(), "score: 0/0")
}

func TestStaff(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Staff(&out, "1.5"))
	assert.Equal(t, "E5\n", out.String())

	out.Reset()
	require.NoError(t, Staff(&out, "C4"))
	assert.True(t, strings.HasPrefix(out.String(), "-3\n"))
	assert.Contains(t, out.String(), "1 below")

	assert.Error(t, Staff(&out, "C"))
}

func TestStaffSnapsOffRangeInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Staff(&out, "10"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "C6", lines[0])
	assert.Contains(t, lines[1], "snapped to 4")
	assert.Contains(t, lines[2], "2 above")

	out.Reset()
	require.NoError(t, Staff(&out, "-0.3"))
	assert.Contains(t, out.String(), "A4")
	assert.Contains(t, out.String(), "snapped to -0.5")
	assert.NotContains(t, out.String(), "ledger")
}

func TestPrintLevels(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintLevels(&out))
	for _, m := range level.Modes {
		assert.Contains(t, out.String(), m.String())
	}
	assert.Contains(t, out.String(), "HDim7")
}

func TestExportThenInspect(t *testing.T) {
	c, err := BuildChord(util.NewSequenceRand(2, 0), "C", "maj", "easy")
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	path, err := Export(dir, c, true)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".mid", filepath.Ext(path))

	var out bytes.Buffer
	require.NoError(t, Inspect(path, &out))
	assert.Equal(t, "chord 0: C4 E4\nchord 1: G4\n", out.String())
}

func TestRandomChordStaysInLevel(t *testing.T) {
	l, err := level.Get(model.Jazz)
	require.NoError(t, err)
	c, err := RandomChord(util.NewSequenceRand(1, 3, 0, 0, 0, 0, 0), l)
	require.NoError(t, err)
	assert.True(t, level.Allows(l, c.Root, c.Type))
	assert.Equal(t, pitch.MustSpelling("C#"), c.Root)
}
