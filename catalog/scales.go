package catalog

var scaleEntries = []Entry{
	{"major", []string{"P1", "M2", "M3", "P4", "P5", "M6", "M7"}},
	{"natural minor", []string{"P1", "M2", "m3", "P4", "P5", "m6", "m7"}},
	{"harmonic minor", []string{"P1", "M2", "m3", "P4", "P5", "m6", "M7"}},
	{"melodic minor", []string{"P1", "M2", "m3", "P4", "P5", "M6", "M7"}},
	{"dorian", []string{"P1", "M2", "m3", "P4", "P5", "M6", "m7"}},
	{"phrygian", []string{"P1", "m2", "m3", "P4", "P5", "m6", "m7"}},
	{"lydian", []string{"P1", "M2", "M3", "A4", "P5", "M6", "M7"}},
	{"mixolydian", []string{"P1", "M2", "M3", "P4", "P5", "M6", "m7"}},
	{"locrian", []string{"P1", "m2", "m3", "P4", "d5", "m6", "m7"}},
	{"phrygian dominant", []string{"P1", "m2", "M3", "P4", "P5", "m6", "m7"}},
	{"lydian dominant", []string{"P1", "M2", "M3", "A4", "P5", "M6", "m7"}},
	{"altered", []string{"P1", "m2", "m3", "d4", "d5", "m6", "m7"}},
	{"major pentatonic", []string{"P1", "M2", "M3", "P5", "M6"}},
	{"minor pentatonic", []string{"P1", "m3", "P4", "P5", "m7"}},
	{"blues", []string{"P1", "m3", "P4", "d5", "P5", "m7"}},
	{"whole tone", []string{"P1", "M2", "M3", "A4", "A5", "A6"}},
	{"diminished whole half", []string{"P1", "M2", "m3", "P4", "d5", "m6", "M6", "M7"}},
	{"diminished half whole", []string{"P1", "m2", "m3", "M3", "A4", "P5", "M6", "m7"}},
	{"chromatic", []string{"P1", "m2", "M2", "m3", "M3", "P4", "A4", "P5", "m6", "M6", "m7", "M7"}},
}

var scaleAliases = map[string]string{
	"ionian":        "major",
	"minor":         "natural minor",
	"aeolian":       "natural minor",
	"super locrian": "altered",
	"spanish":       "phrygian dominant",
	"octatonic":     "diminished whole half",
}

// Scales is the built-in scale catalog.
func Scales() *Catalog {
	return MustNew("scales", scaleEntries, scaleAliases)
}
