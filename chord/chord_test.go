package chord

import (
	"testing"

	"github.com/jsphweid/intervaldex/search"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
)

func TestCreateChordKey(t *testing.T) {
	assert.Equal(t, "60-64-67", CreateChordKey([]uint8{67, 60, 64}))
	assert.Equal(t, "", CreateChordKey(nil))
}

func TestTrackerFollowsNoteOnAndOff(t *testing.T) {
	assert := assert.New(t)
	tr := NewTracker()

	assert.True(tr.Handle(midi.NoteOn(0, 64, 100)))
	assert.True(tr.Handle(midi.NoteOn(0, 60, 100)))
	assert.False(tr.Handle(midi.NoteOn(0, 60, 90)))
	assert.True(tr.Handle(midi.NoteOn(1, 67, 100)))
	assert.Equal([]uint8{60, 64, 67}, tr.Keys())
	assert.Equal("60-64-67", CreateChordKey(tr.Keys()))

	assert.True(tr.Handle(midi.NoteOff(0, 64)))
	assert.False(tr.Handle(midi.NoteOff(0, 64)))
	assert.Equal([]uint8{60, 67}, tr.Keys())

	// note on with zero velocity releases the key
	assert.True(tr.Handle(midi.NoteOn(0, 60, 0)))
	assert.Equal([]uint8{67}, tr.Keys())

	assert.False(tr.Handle(midi.ControlChange(0, 64, 127)))
}

func TestSpell(t *testing.T) {
	l, err := Spell([]uint8{67, 60, 64, 61})
	assert.NoError(t, err)
	assert.Equal(t, "C4 C#4 E4 G4", l.String())

	_, err = Spell([]uint8{128})
	assert.Error(t, err)
}

func TestPitchClasses(t *testing.T) {
	l, err := PitchClasses([]uint8{52, 60, 64, 67, 72})
	assert.NoError(t, err)
	assert.Equal(t, "E C G", l.String())
}

func TestIdentify(t *testing.T) {
	assert := assert.New(t)
	engine := search.Default()

	res, err := Identify([]uint8{48, 64, 67, 72}, engine, search.Exact, search.Equal)
	assert.NoError(err)
	assert.Equal([]search.Match{{Name: "major", Ratio: 1}}, res[0].Matches)

	// A# is spelled as a sharp, so the seventh only matches enharmonically
	res, err = Identify([]uint8{60, 64, 67, 70}, engine, search.Enharmonic, search.Equal)
	assert.NoError(err)
	assert.Equal([]search.Match{{Name: "dominant seventh", Ratio: 1}}, res[0].Matches)

	res, err = Identify(nil, engine, search.Exact, search.Equal)
	assert.NoError(err)
	assert.Empty(res[0].Matches)
}
