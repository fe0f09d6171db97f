package model

import (
	"time"

	"github.com/jsphweid/missingtone/pitch"
)

type Mode int

const (
	Easy Mode = iota
	Medium
	Hard
	Jazz
)

func (m Mode) String() string {
	switch m {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Jazz:
		return "jazz"
	}
	return "unknown"
}

type Level struct {
	Mode      Mode
	Roots     []pitch.Spelling
	Types     []ChordType
	RoundTime time.Duration
	Regime    Regime
}
