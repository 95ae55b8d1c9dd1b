package note

import "errors"

var (
	ErrInvalidNotation    = errors.New("invalid note notation")
	ErrInvalidLetter      = errors.New("invalid note letter")
	ErrInvalidAccidentals = errors.New("invalid accidentals")
	ErrInvalidOctave      = errors.New("invalid octave")
	ErrMixedComparison    = errors.New("cannot compare a pitch with a pitch class")
	ErrOutOfRange         = errors.New("value out of range")
)
