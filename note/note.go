package note

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/intervaldex/interval"
	"github.com/jsphweid/intervaldex/util"
)

// NoOctave marks a pitch class.
const NoOctave = math.MinInt32

const letters = "CDEFGAB"

var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

var notationRe = regexp.MustCompile(`^([A-Ga-g])(#*|b*)(-?[0-9]?)$`)

// Note is a pitch such as D#4, or a pitch class such as D# when it has no
// octave. Accidentals are a signed count: sharps are positive, flats negative.
type Note struct {
	letter      int
	accidentals int
	octave      int
}

func New(letter string, accidentals string, octave int) (Note, error) {
	idx := strings.Index(letters, strings.ToUpper(letter))
	if len(letter) != 1 || idx < 0 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}
	count, err := countAccidentals(accidentals)
	if err != nil {
		return Note{}, err
	}
	return Note{letter: idx, accidentals: count, octave: octave}, nil
}

func countAccidentals(s string) (int, error) {
	sharps := strings.Count(s, "#")
	flats := strings.Count(s, "b")
	if sharps+flats != len(s) || (sharps > 0 && flats > 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccidentals, s)
	}
	return sharps - flats, nil
}

// Parse reads scientific pitch notation, e.g. "C", "D#4" or "Ebb-1".
func Parse(s string) (Note, error) {
	m := notationRe.FindStringSubmatch(s)
	if m == nil {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	octave := NoOctave
	if m[3] != "" {
		o, err := strconv.Atoi(m[3])
		if err != nil {
			return Note{}, fmt.Errorf("%w: %q", ErrInvalidOctave, m[3])
		}
		octave = o
	}
	return New(m[1], m[2], octave)
}

func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

var middleC = Note{letter: 0, octave: 4}
var a4 = Note{letter: 5, octave: 4}

// FromMidi spells a MIDI note number, 60 being C4.
func FromMidi(n int) (Note, error) {
	if n < 0 || n > 127 {
		return Note{}, fmt.Errorf("%w: midi note %d", ErrOutOfRange, n)
	}
	return middleC.Transpose(interval.FromSemitones(n - 60)).Simplify(), nil
}

// FromFrequency returns the equal-tempered pitch nearest to hz, tuned to A4 at
// 440 Hz.
func FromFrequency(hz float64) (Note, error) {
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		return Note{}, fmt.Errorf("%w: frequency %v", ErrOutOfRange, hz)
	}
	semitones := int(math.Round(12 * math.Log2(hz/440)))
	return a4.Transpose(interval.FromSemitones(semitones)).Simplify(), nil
}

func (n Note) Letter() string { return string(letters[n.letter]) }

func (n Note) Accidentals() int { return n.accidentals }

// Octave is NoOctave for a pitch class.
func (n Note) Octave() int { return n.octave }

// DiatonicOffset is the letter's position counted from C.
func (n Note) DiatonicOffset() int { return n.letter }

// ChromaticOffset is the semitone offset from C, accidentals included, so it
// may fall outside 0..11 (B# is 12, Cb is -1).
func (n Note) ChromaticOffset() int {
	return letterSemitones[n.letter] + n.accidentals
}

func (n Note) IsPitch() bool      { return n.octave != NoOctave }
func (n Note) IsPitchClass() bool { return n.octave == NoOctave }

func (n Note) ToPitch(octave int) Note {
	return Note{letter: n.letter, accidentals: n.accidentals, octave: octave}
}

func (n Note) ToPitchClass() Note {
	return Note{letter: n.letter, accidentals: n.accidentals, octave: NoOctave}
}

// Transpose moves the letter by the interval's diatonic steps and then picks
// whatever accidentals land on its exact chromatic target, however many that
// takes. E#4 up a M3 is G##4.
func (n Note) Transpose(i interval.Interval) Note {
	steps := n.letter + i.DiatonicSteps()
	letter := util.Mod(steps, 7)
	carry := util.FloorDiv(steps, 7)

	octave := n.octave
	if n.IsPitch() {
		octave += carry
	}
	target := n.ChromaticOffset() + i.ChromaticSteps()
	accidentals := target - letterSemitones[letter] - 12*carry
	return Note{letter: letter, accidentals: accidentals, octave: octave}
}

// TransposeBy resolves s to an interval first.
func (n Note) TransposeBy(s Shift) (Note, error) {
	i, err := s.Interval()
	if err != nil {
		return Note{}, err
	}
	return n.Transpose(i), nil
}

func (n Note) octaveDiff(other Note) (int, error) {
	if n.IsPitch() != other.IsPitch() {
		return 0, fmt.Errorf("%w: %v and %v", ErrMixedComparison, n, other)
	}
	if n.IsPitch() {
		return other.octave - n.octave, nil
	}
	// pitch classes are read upwards
	if other.ChromaticOffset() < n.ChromaticOffset() {
		return 1, nil
	}
	return 0, nil
}

// Distance counts semitones from n up to other. Between pitch classes it is
// never negative.
func (n Note) Distance(other Note) (int, error) {
	octaves, err := n.octaveDiff(other)
	if err != nil {
		return 0, err
	}
	return other.ChromaticOffset() - n.ChromaticOffset() + 12*octaves, nil
}

func (n Note) IntervalTo(other Note) (interval.Interval, error) {
	octaves, err := n.octaveDiff(other)
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.FromSteps(
		other.letter-n.letter+7*octaves,
		other.ChromaticOffset()-n.ChromaticOffset()+12*octaves,
	)
}

func (n Note) IntervalFrom(other Note) (interval.Interval, error) {
	return other.IntervalTo(n)
}

// Frequency in Hz with A4 at 440 Hz. Pitch classes have none.
func (n Note) Frequency() (float64, error) {
	d, err := n.Distance(a4)
	if err != nil {
		return 0, err
	}
	return 440 * math.Pow(2, -float64(d)/12), nil
}

func (n Note) Midi() (int, error) {
	d, err := n.Distance(middleC)
	if err != nil {
		return 0, err
	}
	midi := 60 - d
	if midi < 0 || midi > 127 {
		return 0, fmt.Errorf("%w: %v has midi note %d", ErrOutOfRange, n, midi)
	}
	return midi, nil
}

var defaultSpellings = [12]struct {
	letter      int
	accidentals int
}{
	{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {3, 0},
	{3, 1}, {4, 0}, {4, 1}, {5, 0}, {5, 1}, {6, 0},
}

// Simplify respells the note with as few accidentals as possible, preferring
// sharps. C## becomes D and B#3 becomes C4.
func (n Note) Simplify() Note {
	chromatic := n.ChromaticOffset()
	spelling := defaultSpellings[util.Mod(chromatic, 12)]
	octave := n.octave
	if n.IsPitch() {
		octave += util.FloorDiv(chromatic, 12)
	}
	return Note{letter: spelling.letter, accidentals: spelling.accidentals, octave: octave}
}

func (n Note) IsEqual(other Note) bool {
	return n == other
}

// IsEnharmonic reports whether both notes sound the same. Pitch classes only
// need to agree modulo the octave.
func (n Note) IsEnharmonic(other Note) bool {
	if n.IsPitch() != other.IsPitch() {
		return false
	}
	if n.IsPitchClass() {
		return util.Mod(n.ChromaticOffset(), 12) == util.Mod(other.ChromaticOffset(), 12)
	}
	d, _ := n.Distance(other)
	return d == 0
}

func (n Note) String() string {
	var b strings.Builder
	b.WriteByte(letters[n.letter])
	if n.accidentals > 0 {
		b.WriteString(strings.Repeat("#", n.accidentals))
	} else {
		b.WriteString(strings.Repeat("b", -n.accidentals))
	}
	if n.IsPitch() {
		b.WriteString(strconv.Itoa(n.octave))
	}
	return b.String()
}

func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
