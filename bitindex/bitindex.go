package bitindex

import (
	"fmt"

	"github.com/jsphweid/intervaldex/interval"
)

type Mode int

const (
	// Exact gives every spelling its own bit.
	Exact Mode = iota
	// Enharmonic shares a bit between spellings of the same size, e.g. M3 and d4.
	Enharmonic
)

func (m Mode) String() string {
	if m == Enharmonic {
		return "enharmonic"
	}
	return "exact"
}

// ParseMode reads "exact" or "enharmonic"; empty means exact.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "exact", "":
		return Exact, nil
	case "enharmonic":
		return Enharmonic, nil
	}
	return Exact, fmt.Errorf("unknown mode %q", s)
}

// MaxNumber is the widest interval with a bit: a double octave.
const MaxNumber = 15

var (
	notations []string
	exactBits = make(map[string]uint64)
)

func init() {
	for number := 1; number <= MaxNumber; number++ {
		for _, q := range qualitiesFor(number) {
			i, err := interval.New(q, number, 1)
			if err != nil {
				panic(err)
			}
			s := i.String()
			exactBits[s] = 1 << uint(len(notations))
			notations = append(notations, s)
		}
	}
}

func qualitiesFor(number int) []string {
	if number == 1 {
		return []string{"P", "A"}
	}
	switch (number - 1) % 7 {
	case 0, 3, 4:
		return []string{"d", "P", "A"}
	}
	return []string{"d", "m", "M", "A"}
}

// Notations lists every interval with a bit, in bit order of the exact table.
func Notations() []string {
	res := make([]string, len(notations))
	copy(res, notations)
	return res
}

// Bit returns the bit for notation, or 0 when it has none. Notation is read
// leniently, so "+M3" and "M3" share a bit.
func Bit(notation string, mode Mode) uint64 {
	i, err := interval.Parse(notation)
	if err != nil {
		return 0
	}
	return BitOf(i, mode)
}

// BitOf looks i up in the exact table. In enharmonic mode any ascending
// interval below 64 semitones has a bit, however it is spelled.
func BitOf(i interval.Interval, mode Mode) uint64 {
	if mode == Enharmonic {
		cs := i.ChromaticSteps()
		if cs < 0 || cs >= 64 {
			return 0
		}
		return 1 << uint(cs)
	}
	return exactBits[i.String()]
}

// Mask ORs the bits of every notation. Unknown notation adds nothing.
func Mask(notations []string, mode Mode) uint64 {
	var mask uint64
	for _, n := range notations {
		mask |= Bit(n, mode)
	}
	return mask
}

func MaskOf(intervals []interval.Interval, mode Mode) uint64 {
	var mask uint64
	for _, i := range intervals {
		mask |= BitOf(i, mode)
	}
	return mask
}
