package note

import "github.com/jsphweid/intervaldex/interval"

type shiftKind int

const (
	byInterval shiftKind = iota
	byNotation
	bySemitones
)

// Shift is what a note can be transposed by: an interval, interval notation,
// or a semitone count.
type Shift struct {
	kind      shiftKind
	interval  interval.Interval
	notation  string
	semitones int
}

func ByInterval(i interval.Interval) Shift {
	return Shift{kind: byInterval, interval: i}
}

func ByNotation(s string) Shift {
	return Shift{kind: byNotation, notation: s}
}

func BySemitones(n int) Shift {
	return Shift{kind: bySemitones, semitones: n}
}

// Interval normalises the shift. Only notation can fail.
func (s Shift) Interval() (interval.Interval, error) {
	switch s.kind {
	case byNotation:
		return interval.Parse(s.notation)
	case bySemitones:
		return interval.FromSemitones(s.semitones), nil
	}
	return s.interval, nil
}
