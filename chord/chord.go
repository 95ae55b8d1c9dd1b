package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/intervaldex/note"
	"github.com/jsphweid/intervaldex/notelist"
	"github.com/jsphweid/intervaldex/search"
	"gitlab.com/gomidi/midi/v2"
)

type OnNotes = map[uint8]bool

func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, key := range notes {
		res += fmt.Sprintf("%v", key)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}

// Tracker keeps the set of keys currently held down.
type Tracker struct {
	pressed OnNotes
}

func NewTracker() *Tracker {
	return &Tracker{pressed: make(OnNotes)}
}

// Handle applies a note on or note off and reports whether the held keys
// changed. Other messages are ignored.
func (t *Tracker) Handle(msg midi.Message) bool {
	var channel, key, velocity uint8
	switch {
	case msg.GetNoteStart(&channel, &key, &velocity):
		if t.pressed[key] {
			return false
		}
		t.pressed[key] = true
		return true
	case msg.GetNoteEnd(&channel, &key):
		if !t.pressed[key] {
			return false
		}
		delete(t.pressed, key)
		return true
	}
	return false
}

// Keys are the held keys, lowest first.
func (t *Tracker) Keys() []uint8 {
	keys := make([]uint8, 0, len(t.pressed))
	for k := range t.pressed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Spell turns MIDI keys into pitches, lowest first.
func Spell(keys []uint8) (notelist.List, error) {
	var l notelist.List
	for _, k := range keys {
		n, err := note.FromMidi(int(k))
		if err != nil {
			return nil, err
		}
		l = append(l, n)
	}
	return l.Sort(), nil
}

// PitchClasses reduces spelled keys to pitch classes over the bass, dropping
// octave doublings.
func PitchClasses(keys []uint8) (notelist.List, error) {
	pitches, err := Spell(keys)
	if err != nil {
		return nil, err
	}
	var res notelist.List
	for _, n := range pitches {
		pc := n.ToPitchClass()
		if !res.Contains(pc) {
			res = res.Add(pc)
		}
	}
	return res, nil
}

// Identify names what the held keys spell, reading them from the bass up.
func Identify(keys []uint8, engine *search.Engine, mode search.Mode, rel search.Relation) ([]search.Result, error) {
	classes, err := PitchClasses(keys)
	if err != nil {
		return nil, err
	}
	intervals, err := classes.Intervals()
	if err != nil {
		return nil, err
	}
	return engine.SearchIntervals(intervals, mode, rel), nil
}
