package midi

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/missingtone/chord"
	"github.com/jsphweid/missingtone/constants"
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/note"
	"github.com/jsphweid/missingtone/util"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s, e = nil, errors.Errorf("parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	return res, nil
}

// ChordToSMF writes the visible notes as one block chord lasting a whole
// note. With withAnswer the missing tone follows on its own.
func ChordToSMF(c model.Chord, withAnswer bool) (*smf.SMF, error) {
	s := smf.New()
	ticks := smf.MetricTicks(constants.TicksPerQuarter)
	s.TimeFormat = ticks
	length := ticks.Ticks4th() * 4

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(chord.Describe(c)))
	tr.Add(0, smf.MetaTempo(constants.Tempo))

	var keys []uint8
	for _, v := range c.Visible {
		keys = append(keys, note.Key(v.Note))
	}
	addBlock(&tr, keys, length)

	if withAnswer {
		answer := model.Note{Spelling: c.Missing.Spelling, Octave: c.Missing.Octave}
		addBlock(&tr, []uint8{note.Key(answer)}, length)
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "adding track")
	}
	return s, nil
}

func addBlock(tr *smf.Track, keys []uint8, length uint32) {
	for _, k := range keys {
		tr.Add(0, gomidi.NoteOn(constants.Channel, k, constants.Velocity))
	}
	for i, k := range keys {
		var delta uint32
		if i == 0 {
			delta = length
		}
		tr.Add(delta, gomidi.NoteOff(constants.Channel, k))
	}
}

func WriteChordFile(path string, c model.Chord, withAnswer bool) error {
	s, err := ChordToSMF(c, withAnswer)
	if err != nil {
		return err
	}
	return writeSMF(path, s)
}

// Chords groups note-ons across all tracks by the tick they start on. Keys
// within a chord are sorted, chords are in time order.
func Chords(s *smf.SMF) [][]uint8 {
	byTick := make(map[uint64][]uint8)
	for _, events := range s.Tracks {
		var absTicks uint64
		for _, event := range events {
			absTicks += uint64(event.Delta)
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				byTick[absTicks] = append(byTick[absTicks], key)
			}
		}
	}

	var res [][]uint8
	for _, tick := range util.SortedKeys(byTick) {
		keys := byTick[tick]
		slices.Sort(keys)
		res = append(res, keys)
	}
	return res
}

// Describe spells each chord's keys with flat-preferring names.
func Describe(chords [][]uint8) []string {
	var res []string
	for _, keys := range chords {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = note.String(note.FromKey(k))
		}
		res = append(res, strings.Join(names, " "))
	}
	return res
}
