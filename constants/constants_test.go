package constants

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestOutDir(t *testing.T) {
	t.Setenv("MISSINGTONE_OUT_DIR", "")
	assert.Equal(t, "./out", GetOutDir())

	t.Setenv("MISSINGTONE_OUT_DIR", "/tmp/chords")
	assert.Equal(t, "/tmp/chords", GetOutDir())
	assert.Equal(t, filepath.Join("/tmp/chords", "clips"), GetClipDir())
}

func TestSeed(t *testing.T) {
	t.Setenv("MISSINGTONE_SEED", "42")
	assert.Equal(t, int64(42), GetSeed())

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	t.Setenv("MISSINGTONE_SEED", "not a number")
	assert.NotEqual(t, int64(0), GetSeed())
	assert.Contains(t, buf.String(), "MISSINGTONE_SEED")
	assert.Contains(t, buf.String(), "not a number")
}

func TestSeedUnsetIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	t.Setenv("MISSINGTONE_SEED", "")
	GetSeed()
	assert.Empty(t, buf.String())
}

func TestLogLevel(t *testing.T) {
	t.Setenv("MISSINGTONE_LOG_LEVEL", "")
	assert.Equal(t, "info", GetLogLevel())

	t.Setenv("MISSINGTONE_LOG_LEVEL", "debug")
	assert.Equal(t, "debug", GetLogLevel())
}
