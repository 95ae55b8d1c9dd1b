package interval

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/jsphweid/intervaldex/util"
)

var notationRe = regexp.MustCompile(`^([+-]?)(P|M|m|A+|d+)([0-9]+)$`)

// Interval is the signed distance between two notes, e.g. M3 or -P5. The zero
// value is not a valid interval; build one with New, Parse, FromSemitones or
// FromSteps.
type Interval struct {
	quality   Quality
	number    int
	sign      int
	diatonic  int
	chromatic int
}

func New(quality string, number int, sign int) (Interval, error) {
	q, err := ParseQuality(quality)
	if err != nil {
		return Interval{}, err
	}
	if number < 1 {
		return Interval{}, fmt.Errorf("%w: %d", ErrInvalidNumber, number)
	}
	if sign != 1 && sign != -1 {
		return Interval{}, fmt.Errorf("%w: %d", ErrInvalidSign, sign)
	}
	if !fitsNumber(q, number) {
		return Interval{}, fmt.Errorf("%w: %s%d", ErrIncompatibleQuality, q, number)
	}
	return build(q, number, sign), nil
}

func build(q Quality, number int, sign int) Interval {
	return Interval{
		quality:   q,
		number:    number,
		sign:      sign,
		diatonic:  sign * (number - 1),
		chromatic: sign * (defaultSemitones(number) + adjustment(q, number)),
	}
}

// Parse reads short-hand notation: an optional sign, a quality and a number,
// e.g. "P5", "-m3" or "+d44".
func Parse(s string) (Interval, error) {
	m := notationRe.FindStringSubmatch(s)
	if m == nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	number, err := strconv.Atoi(m[3])
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	sign := 1
	if m[1] == "-" {
		sign = -1
	}
	return New(m[2], number, sign)
}

// MustParse is Parse for notation known to be valid. It panics otherwise.
func MustParse(s string) Interval {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

// canonical spelling for each semitone count within an octave
var semitoneSpellings = [12]struct {
	quality Quality
	number  int
}{
	{Quality{perfect, 1}, 1},
	{Quality{minor, 1}, 2},
	{Quality{major, 1}, 2},
	{Quality{minor, 1}, 3},
	{Quality{major, 1}, 3},
	{Quality{perfect, 1}, 4},
	{Quality{augmented, 1}, 4},
	{Quality{perfect, 1}, 5},
	{Quality{minor, 1}, 6},
	{Quality{major, 1}, 6},
	{Quality{minor, 1}, 7},
	{Quality{major, 1}, 7},
}

// FromSemitones picks the simplest interval spanning n semitones. Many
// intervals share a size, so the result prefers P, then M, then m, then A.
func FromSemitones(n int) Interval {
	size := util.Abs(n)
	spelling := semitoneSpellings[size%12]
	return build(spelling.quality, spelling.number+7*(size/12), util.Sign(n))
}

// FromSteps finds the one interval spanning exactly diatonicSteps letters and
// chromaticSteps semitones. A unison takes its direction from the semitones.
func FromSteps(diatonicSteps int, chromaticSteps int) (Interval, error) {
	sign := util.Sign(diatonicSteps)
	if diatonicSteps == 0 {
		sign = util.Sign(chromaticSteps)
	}
	number := util.Abs(diatonicSteps) + 1
	q, err := resolveQuality(number, sign*chromaticSteps-defaultSemitones(number))
	if err != nil {
		return Interval{}, err
	}
	return build(q, number, sign), nil
}

func (i Interval) Quality() Quality { return i.quality }
func (i Interval) Number() int      { return i.number }
func (i Interval) Sign() int        { return i.sign }

// DiatonicSteps is the signed count of letters crossed, 0 for a unison.
func (i Interval) DiatonicSteps() int { return i.diatonic }

// ChromaticSteps is the signed size in semitones.
func (i Interval) ChromaticSteps() int { return i.chromatic }

func (i Interval) Add(other Interval) (Interval, error) {
	return FromSteps(i.diatonic+other.diatonic, i.chromatic+other.chromatic)
}

func (i Interval) Sub(other Interval) (Interval, error) {
	return FromSteps(i.diatonic-other.diatonic, i.chromatic-other.chromatic)
}

// Neg points the interval the other way.
func (i Interval) Neg() Interval {
	return build(i.quality, i.number, -i.sign)
}

// SimpleTerm folds a compound number into the first octave and keeps the
// quality, so M9 becomes M2. It keeps the letter pattern, not the sound: use
// Simplify for an enharmonically equal result.
func (i Interval) SimpleTerm() Interval {
	return build(i.quality, util.Abs(i.diatonic)%7+1, i.sign)
}

// Simplify respells the interval in its simplest enharmonic form.
func (i Interval) Simplify() Interval {
	return FromSemitones(i.chromatic)
}

// Invert returns the complement within the octave: M3 becomes m6 and A4
// becomes d5. The sign is kept. An augmented octave inverts to d1, which
// keeps its sign but spans -1 semitones; FromSteps spells that size -A1.
func (i Interval) Invert() Interval {
	number := 8
	if i.number != 1 {
		number = 9 - ((i.number-2)%7 + 2)
	}
	return build(i.quality.invert(), number, i.sign)
}

func (i Interval) FrequencyRatio() float64 {
	return math.Pow(2, float64(i.chromatic)/12)
}

func (i Interval) Cents() float64 {
	return float64(100 * i.chromatic)
}

func (i Interval) IsCompound() bool {
	return i.number >= 8
}

func (i Interval) IsEnharmonic(other Interval) bool {
	return i.chromatic == other.chromatic
}

func (i Interval) Equal(other Interval) bool {
	return i == other
}

func (i Interval) String() string {
	s := fmt.Sprintf("%v%d", i.quality, i.number)
	if i.sign < 0 {
		return "-" + s
	}
	return s
}

func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Interval) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
