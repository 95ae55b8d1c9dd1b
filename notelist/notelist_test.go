package notelist

import (
	"testing"

	"github.com/jsphweid/intervaldex/interval"
	"github.com/jsphweid/intervaldex/note"
	"github.com/jsphweid/intervaldex/search"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, s string) List {
	l, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestParse(t *testing.T) {
	assert := assert.New(t)
	l := mustParse(t, "C4  E4 G4")
	assert.Len(l, 3)
	assert.Equal("C4 E4 G4", l.String())

	_, err := Parse("C4 H4")
	assert.ErrorIs(err, note.ErrInvalidNotation)
}

func TestIntervals(t *testing.T) {
	assert := assert.New(t)
	intervals, err := mustParse(t, "C E G Bb").Intervals()
	assert.NoError(err)
	var got []string
	for _, i := range intervals {
		got = append(got, i.String())
	}
	assert.Equal([]string{"P1", "M3", "P5", "m7"}, got)

	intervals, err = List{}.Intervals()
	assert.NoError(err)
	assert.Empty(intervals)
}

func TestMixedCollectionCannotBeSearched(t *testing.T) {
	assert := assert.New(t)
	l := mustParse(t, "C4 E G4")
	assert.True(l.IsMixed())

	_, err := l.Intervals()
	assert.ErrorIs(err, ErrCannotSearchMixedCollection)
	_, err = l.Exact(search.Default(), search.Exact)
	assert.ErrorIs(err, ErrCannotSearchMixedCollection)
}

func TestExact(t *testing.T) {
	assert := assert.New(t)
	res, err := mustParse(t, "C4 E4 G4").Exact(search.Default(), search.Exact)
	assert.NoError(err)
	assert.Equal("chords", res[0].Catalog)
	assert.Equal([]search.Match{{Name: "major", Ratio: 1}}, res[0].Matches)

	res, err = mustParse(t, "D F# A C").Exact(search.Default(), search.Exact)
	assert.NoError(err)
	assert.Equal([]search.Match{{Name: "dominant seventh", Ratio: 1}}, res[0].Matches)

	res, err = mustParse(t, "C Fb G").Exact(search.Default(), search.Enharmonic)
	assert.NoError(err)
	assert.Equal([]search.Match{{Name: "major", Ratio: 1}}, res[0].Matches)

	// C to F## is a doubly augmented fourth
	res, err = mustParse(t, "C E F##").Exact(search.Default(), search.Enharmonic)
	assert.NoError(err)
	assert.Equal([]search.Match{{Name: "major", Ratio: 1}}, res[0].Matches)
}

func TestSubsetsAndSupersets(t *testing.T) {
	assert := assert.New(t)
	scale := mustParse(t, "C D E F G A B")
	res, err := scale.Subsets(search.Default(), search.Exact)
	assert.NoError(err)
	var chords []string
	for _, m := range res[0].Matches {
		chords = append(chords, m.Name)
	}
	assert.Contains(chords, "major")
	assert.Contains(chords, "major sixth")

	res, err = mustParse(t, "A C E").Supersets(search.Default(), search.Exact)
	assert.NoError(err)
	var scales []string
	for _, m := range res[1].Matches {
		scales = append(scales, m.Name)
	}
	assert.Contains(scales, "natural minor")
	assert.Contains(scales, "dorian")
	assert.NotContains(scales, "major")
}

func TestAddRemoveToggle(t *testing.T) {
	assert := assert.New(t)
	c, e, g := note.MustParse("C"), note.MustParse("E"), note.MustParse("G")

	l := List{}.Add(c, e)
	assert.Equal("C E", l.String())
	assert.True(l.Contains(e))
	assert.False(l.Contains(g))

	l = l.Toggle(g)
	assert.Equal("C E G", l.String())
	l = l.Toggle(e)
	assert.Equal("C G", l.String())

	l = l.Add(c).Remove(c)
	assert.Equal("G", l.String())
}

func TestSort(t *testing.T) {
	l := mustParse(t, "G4 C4 E C5 B#3")
	sorted := l.Sort()
	assert.Equal(t, "E B#3 C4 G4 C5", sorted.String())
	assert.Equal(t, "G4 C4 E C5 B#3", l.String())
}

func TestTranspose(t *testing.T) {
	l := mustParse(t, "C4 E4 G4").Transpose(interval.MustParse("m3"))
	assert.Equal(t, "Eb4 G4 Bb4", l.String())
}
