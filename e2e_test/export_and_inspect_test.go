//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/missingtone/cmd"
	"github.com/jsphweid/missingtone/constants"
	"github.com/jsphweid/missingtone/level"
	"github.com/jsphweid/missingtone/midi"
	"github.com/jsphweid/missingtone/note"
	"github.com/jsphweid/missingtone/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var outDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "missingtone-e2e")
	if err != nil {
		panic(err.Error())
	}
	outDir = dir
	os.Setenv("MISSINGTONE_OUT_DIR", dir)

	exitVal := m.Run()

	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func TestExportedChordInspectsBack(t *testing.T) {
	c, err := cmd.BuildChord(util.NewSequenceRand(2, 0), "C", "maj", "easy")
	require.NoError(t, err)

	path, err := cmd.Export(constants.GetOutDir(), c, false)
	require.NoError(t, err)
	assert.Equal(t, outDir, filepath.Dir(path))

	var out bytes.Buffer
	require.NoError(t, cmd.Inspect(path, &out))
	assert.Equal(t, "chord 0: C4 E4\n", out.String())
}

// Every mode's chords survive the midi round trip with the visible notes
// first and the answer after.
func TestEveryModeRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, m := range level.Modes {
		l, err := level.Get(m)
		require.NoError(t, err)

		for i := 0; i < 25; i++ {
			c, err := cmd.RandomChord(rng, l)
			require.NoError(t, err)

			path, err := cmd.Export(constants.GetOutDir(), c, true)
			require.NoError(t, err)
			s, err := midi.ReadMidiFile(path)
			require.NoError(t, err)

			chords := midi.Chords(s)
			require.Len(t, chords, 2, path)
			assert.Len(t, chords[0], len(c.Visible))
			require.Len(t, chords[1], 1)
			assert.Equal(t, int(c.Missing.PitchClass), int(note.FromKey(chords[1][0]).Spelling.PitchClass()))
		}
	}

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 100)
	for _, e := range entries {
		assert.True(t, strings.HasSuffix(e.Name(), ".mid"))
	}
}
