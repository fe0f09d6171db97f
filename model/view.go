package model

type LedgerView struct {
	Above2 bool `json:"above_2"`
	Above1 bool `json:"above_1"`
	Below1 bool `json:"below_1"`
	Below2 bool `json:"below_2"`
}

type NoteView struct {
	Note          string     `json:"note"`
	StaffPosition float64    `json:"staff_position"`
	Ledger        LedgerView `json:"ledger"`
}

type MissingView struct {
	Spelling   string `json:"spelling"`
	PitchClass int    `json:"pitch_class"`
}

type ChordView struct {
	Chord       string      `json:"chord"`
	Prompt      string      `json:"prompt"`
	DisplayRoot string      `json:"display_root"`
	Visible     []NoteView  `json:"visible"`
	Missing     MissingView `json:"missing"`
	Ledger      LedgerView  `json:"ledger"`
}
