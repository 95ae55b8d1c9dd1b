package catalog

var chordEntries = []Entry{
	{"major", []string{"P1", "M3", "P5"}},
	{"minor", []string{"P1", "m3", "P5"}},
	{"augmented", []string{"P1", "M3", "A5"}},
	{"diminished", []string{"P1", "m3", "d5"}},
	{"suspended second", []string{"P1", "M2", "P5"}},
	{"suspended fourth", []string{"P1", "P4", "P5"}},
	{"power", []string{"P1", "P5"}},
	{"major sixth", []string{"P1", "M3", "P5", "M6"}},
	{"minor sixth", []string{"P1", "m3", "P5", "M6"}},
	{"dominant seventh", []string{"P1", "M3", "P5", "m7"}},
	{"major seventh", []string{"P1", "M3", "P5", "M7"}},
	{"minor seventh", []string{"P1", "m3", "P5", "m7"}},
	{"minor major seventh", []string{"P1", "m3", "P5", "M7"}},
	{"diminished seventh", []string{"P1", "m3", "d5", "d7"}},
	{"half-diminished seventh", []string{"P1", "m3", "d5", "m7"}},
	{"augmented seventh", []string{"P1", "M3", "A5", "m7"}},
	{"augmented major seventh", []string{"P1", "M3", "A5", "M7"}},
	{"dominant seventh flat five", []string{"P1", "M3", "d5", "m7"}},
	{"dominant seventh suspended fourth", []string{"P1", "P4", "P5", "m7"}},
	{"add nine", []string{"P1", "M3", "P5", "M9"}},
	{"minor add nine", []string{"P1", "m3", "P5", "M9"}},
	{"six nine", []string{"P1", "M3", "P5", "M6", "M9"}},
	{"dominant ninth", []string{"P1", "M3", "P5", "m7", "M9"}},
	{"major ninth", []string{"P1", "M3", "P5", "M7", "M9"}},
	{"minor ninth", []string{"P1", "m3", "P5", "m7", "M9"}},
	{"dominant seventh flat nine", []string{"P1", "M3", "P5", "m7", "m9"}},
	{"dominant seventh sharp nine", []string{"P1", "M3", "P5", "m7", "A9"}},
	{"dominant eleventh", []string{"P1", "M3", "P5", "m7", "M9", "P11"}},
	{"minor eleventh", []string{"P1", "m3", "P5", "m7", "M9", "P11"}},
	{"major seventh sharp eleven", []string{"P1", "M3", "P5", "M7", "M9", "A11"}},
	{"dominant thirteenth", []string{"P1", "M3", "P5", "m7", "M9", "P11", "M13"}},
	{"major thirteenth", []string{"P1", "M3", "P5", "M7", "M9", "P11", "M13"}},
	{"minor thirteenth", []string{"P1", "m3", "P5", "m7", "M9", "P11", "M13"}},
}

var chordAliases = map[string]string{
	"":        "major",
	"M":       "major",
	"maj":     "major",
	"m":       "minor",
	"min":     "minor",
	"-":       "minor",
	"aug":     "augmented",
	"+":       "augmented",
	"dim":     "diminished",
	"o":       "diminished",
	"sus2":    "suspended second",
	"sus4":    "suspended fourth",
	"sus":     "suspended fourth",
	"5":       "power",
	"6":       "major sixth",
	"M6":      "major sixth",
	"m6":      "minor sixth",
	"7":       "dominant seventh",
	"dom7":    "dominant seventh",
	"maj7":    "major seventh",
	"M7":      "major seventh",
	"m7":      "minor seventh",
	"min7":    "minor seventh",
	"mM7":     "minor major seventh",
	"mmaj7":   "minor major seventh",
	"dim7":    "diminished seventh",
	"o7":      "diminished seventh",
	"m7b5":    "half-diminished seventh",
	"ø":       "half-diminished seventh",
	"aug7":    "augmented seventh",
	"+7":      "augmented seventh",
	"maj7#5":  "augmented major seventh",
	"7b5":     "dominant seventh flat five",
	"7sus4":   "dominant seventh suspended fourth",
	"add9":    "add nine",
	"madd9":   "minor add nine",
	"6/9":     "six nine",
	"9":       "dominant ninth",
	"maj9":    "major ninth",
	"M9":      "major ninth",
	"m9":      "minor ninth",
	"7b9":     "dominant seventh flat nine",
	"7#9":     "dominant seventh sharp nine",
	"11":      "dominant eleventh",
	"m11":     "minor eleventh",
	"maj7#11": "major seventh sharp eleven",
	"13":      "dominant thirteenth",
	"maj13":   "major thirteenth",
	"m13":     "minor thirteenth",
}

// Chords is the built-in chord catalog.
func Chords() *Catalog {
	return MustNew("chords", chordEntries, chordAliases)
}
