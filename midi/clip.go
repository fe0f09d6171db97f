package midi

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/missingtone/constants"
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/note"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ClipKeys is enough for every note a chord can place, Ab3 through C#6.
const ClipKeys = 30

// Clip is one short note, an eighth long.
func Clip(n model.Note) (*smf.SMF, error) {
	s := smf.New()
	ticks := smf.MetricTicks(constants.TicksPerQuarter)
	s.TimeFormat = ticks

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(note.String(n)))
	tr.Add(0, smf.MetaTempo(constants.Tempo))
	k := note.Key(n)
	tr.Add(0, gomidi.NoteOn(constants.Channel, k, constants.Velocity))
	tr.Add(ticks.Ticks8th(), gomidi.NoteOff(constants.Channel, k))
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "adding track")
	}
	return s, nil
}

func ClipPath(dir string, n model.Note) string {
	return filepath.Join(dir, fmt.Sprintf("clip-%02d.mid", note.ClipIndex(n)))
}

// WriteClipBank writes count clips into dir, clip 0 first.
func WriteClipBank(dir string, count int) ([]string, error) {
	var paths []string
	first := note.Key(model.Note{Spelling: pitch.MustSpelling("Ab"), Octave: 3})
	for i := 0; i < count; i++ {
		n := note.FromKey(first + uint8(i))
		s, err := Clip(n)
		if err != nil {
			return paths, err
		}
		path := ClipPath(dir, n)
		if err := writeSMF(path, s); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeSMF(path string, s *smf.SMF) error {
	if err := s.WriteFile(path); err != nil {
		return errors.Wrapf(err, "write failed for %s", path)
	}
	return nil
}
