// Package session runs rounds of the game: pick a chord for the level, wait
// for the player's note, score it.
package session

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jsphweid/missingtone/chord"
	"github.com/jsphweid/missingtone/level"
	"github.com/jsphweid/missingtone/model"
	"github.com/jsphweid/missingtone/pitch"
	"github.com/jsphweid/missingtone/score"
	"github.com/jsphweid/missingtone/util"
	"github.com/pkg/errors"
)

var (
	ErrNoActiveRound = errors.New("no active round")
	ErrRoundExpired  = errors.New("round expired")
)

type Round struct {
	ID        uuid.UUID
	Chord     model.Chord
	Prompt    string
	StartedAt time.Time
	Deadline  time.Time
}

// Progress is the fraction of the round time used so far, clamped to [0, 1].
// The renderer moves the chord across the screen by this amount.
func (r *Round) Progress(now time.Time) float64 {
	total := r.Deadline.Sub(r.StartedAt)
	if total <= 0 {
		return 1
	}
	p := float64(now.Sub(r.StartedAt)) / float64(total)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func (r *Round) Expired(now time.Time) bool {
	return !now.Before(r.Deadline)
}

type Game struct {
	level   model.Level
	rng     util.Rand
	tally   score.Tally
	current *Round
	timed   bool
	logger  *log.Logger
}

type Option func(*Game)

func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// Timed makes submissions after the deadline count as misses.
func Timed() Option {
	return func(g *Game) {
		g.timed = true
	}
}

func New(l model.Level, rng util.Rand, opts ...Option) *Game {
	g := &Game{
		level:  l,
		rng:    rng,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Level() model.Level {
	return g.level
}

// StartRound replaces any unanswered round with a fresh chord.
func (g *Game) StartRound(now time.Time) (*Round, error) {
	root, t := level.Pick(g.rng, g.level)
	c, err := chord.Build(g.rng, root, t, g.level.Regime)
	if err != nil {
		return nil, errors.Wrapf(err, "building %v %s", root, chord.Symbol(t))
	}

	if g.current != nil {
		g.logger.Debug("round abandoned", "id", g.current.ID)
		g.tally.Miss()
	}

	r := &Round{
		ID:        uuid.New(),
		Chord:     c,
		Prompt:    chord.Prompt(c),
		StartedAt: now,
		Deadline:  now.Add(g.level.RoundTime),
	}
	g.current = r
	g.logger.Debug("round started", "id", r.ID, "root", root, "type", chord.Symbol(t), "mode", g.level.Mode)
	return r, nil
}

func (g *Game) Current() *Round {
	return g.current
}

// Submit scores the player's note for the current round and closes it.
func (g *Game) Submit(now time.Time, letter pitch.Letter, accidental pitch.Accidental) (model.Verdict, error) {
	r := g.current
	if r == nil {
		return model.Verdict{}, ErrNoActiveRound
	}
	g.current = nil

	if g.timed && r.Expired(now) {
		g.tally.Miss()
		g.logger.Info("round expired", "id", r.ID, "answer", r.Chord.Missing.Spelling)
		return model.Verdict{Answer: r.Chord.Missing.Spelling}, errors.Wrapf(ErrRoundExpired, "round %s", r.ID)
	}

	v := score.Evaluate(letter, accidental, r.Chord)
	g.tally.Record(v)
	g.logger.Info("round scored", "id", r.ID, "correct", v.Correct, "submitted", v.Submitted, "answer", v.Answer)
	return v, nil
}

func (g *Game) Points() int {
	return g.tally.Points
}

func (g *Game) Rounds() int {
	return g.tally.Rounds
}
