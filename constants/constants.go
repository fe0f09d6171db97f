package constants

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

func GetOutDir() string {
	path := os.Getenv("MISSINGTONE_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetClipDir() string {
	return filepath.Join(GetOutDir(), "clips")
}

// GetSeed falls back to the clock when MISSINGTONE_SEED is unset or not a
// number. A value that does not parse is reported.
func GetSeed() int64 {
	if s := os.Getenv("MISSINGTONE_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return seed
		}
		log.Warn("ignoring MISSINGTONE_SEED, seeding from the clock", "value", s, "err", err)
	}
	return time.Now().UnixNano()
}

func GetLogLevel() string {
	level := os.Getenv("MISSINGTONE_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

const DefaultMode = "easy"

// exported chords
const (
	TicksPerQuarter = 480
	Tempo           = 90.0
	Channel         = 0
	Velocity        = 100
)
