package note

// Compare orders pitch classes before pitches, then by octave, chromatic
// offset and letter. It returns -1, 0 or 1.
func Compare(a, b Note) int {
	if a.IsPitchClass() != b.IsPitchClass() {
		if a.IsPitchClass() {
			return -1
		}
		return 1
	}
	keys := [3][2]int{
		{a.octave, b.octave},
		{a.ChromaticOffset(), b.ChromaticOffset()},
		{a.letter, b.letter},
	}
	for _, k := range keys {
		switch {
		case k[0] < k[1]:
			return -1
		case k[0] > k[1]:
			return 1
		}
	}
	return 0
}
