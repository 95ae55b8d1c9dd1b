package interval

import (
	"fmt"
	"strings"
)

const (
	perfect    = 'P'
	major      = 'M'
	minor      = 'm'
	augmented  = 'A'
	diminished = 'd'
)

// Quality is P, M, m, or a stack of one or more A or d.
type Quality struct {
	kind  byte
	count int
}

func ParseQuality(s string) (Quality, error) {
	if s == "" {
		return Quality{}, fmt.Errorf("%w: empty", ErrInvalidQuality)
	}
	switch s {
	case "P", "M", "m":
		return Quality{kind: s[0], count: 1}, nil
	}
	kind := s[0]
	if kind != augmented && kind != diminished {
		return Quality{}, fmt.Errorf("%w: %q", ErrInvalidQuality, s)
	}
	if strings.Count(s, string(kind)) != len(s) {
		return Quality{}, fmt.Errorf("%w: %q", ErrInvalidQuality, s)
	}
	return Quality{kind: kind, count: len(s)}, nil
}

func (q Quality) String() string {
	if q.kind == 0 {
		return ""
	}
	return strings.Repeat(string(q.kind), q.count)
}

func (q Quality) IsPerfect() bool    { return q.kind == perfect }
func (q Quality) IsMajor() bool      { return q.kind == major }
func (q Quality) IsMinor() bool      { return q.kind == minor }
func (q Quality) IsAugmented() bool  { return q.kind == augmented }
func (q Quality) IsDiminished() bool { return q.kind == diminished }

// Alterations is how many times an augmented or diminished quality is stacked,
// zero for P, M and m.
func (q Quality) Alterations() int {
	if q.IsAugmented() || q.IsDiminished() {
		return q.count
	}
	return 0
}

func (q Quality) invert() Quality {
	switch q.kind {
	case major:
		return Quality{kind: minor, count: 1}
	case minor:
		return Quality{kind: major, count: 1}
	case augmented:
		return Quality{kind: diminished, count: q.count}
	case diminished:
		return Quality{kind: augmented, count: q.count}
	}
	return q
}

// semitone offset of each degree of the major scale
var degreeSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

func isPerfectDegree(number int) bool {
	switch (number - 1) % 7 {
	case 0, 3, 4:
		return true
	}
	return false
}

func fitsNumber(q Quality, number int) bool {
	switch q.kind {
	case perfect:
		return isPerfectDegree(number)
	case major, minor:
		return !isPerfectDegree(number)
	}
	return true
}

// defaultSemitones is the size of the perfect or major interval with this number.
func defaultSemitones(number int) int {
	return degreeSemitones[(number-1)%7] + 12*((number-1)/7)
}

// adjustment is the offset a quality applies to the default size of number.
func adjustment(q Quality, number int) int {
	switch q.kind {
	case minor:
		return -1
	case augmented:
		return q.count
	case diminished:
		if isPerfectDegree(number) {
			return -q.count
		}
		return -q.count - 1
	}
	return 0
}

// resolveQuality is the inverse of adjustment: the quality that moves the
// default size of number by diff semitones.
func resolveQuality(number int, diff int) (Quality, error) {
	if isPerfectDegree(number) {
		switch {
		case diff == 0:
			return Quality{kind: perfect, count: 1}, nil
		case diff > 0:
			return Quality{kind: augmented, count: diff}, nil
		case number > 1:
			return Quality{kind: diminished, count: -diff}, nil
		}
		return Quality{}, fmt.Errorf("%w: unison shrunk by %d", ErrNoSuchInterval, -diff)
	}
	switch {
	case diff == 0:
		return Quality{kind: major, count: 1}, nil
	case diff == -1:
		return Quality{kind: minor, count: 1}, nil
	case diff > 0:
		return Quality{kind: augmented, count: diff}, nil
	}
	return Quality{kind: diminished, count: -diff - 1}, nil
}
