package midi

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/intervaldex/chord"
	"github.com/jsphweid/intervaldex/note"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func NoteOn(n note.Note, channel uint8, velocity uint8) (gomidi.Message, error) {
	key, err := n.Midi()
	if err != nil {
		return nil, err
	}
	return gomidi.NoteOn(channel, uint8(key), velocity), nil
}

func NoteOff(n note.Note, channel uint8) (gomidi.Message, error) {
	key, err := n.Midi()
	if err != nil {
		return nil, err
	}
	return gomidi.NoteOff(channel, uint8(key)), nil
}

// NoteOf spells the key of a note on or note off message.
func NoteOf(msg gomidi.Message) (note.Note, bool) {
	var channel, key, velocity uint8
	switch {
	case msg.GetNoteStart(&channel, &key, &velocity), msg.GetNoteEnd(&channel, &key):
		n, err := note.FromMidi(int(key))
		return n, err == nil
	}
	return note.Note{}, false
}

// Watcher turns a stream of MIDI messages into chords. Bursts of changes,
// like the keys of one chord landing a few milliseconds apart, are reported
// once.
type Watcher struct {
	mu        sync.Mutex
	tracker   *chord.Tracker
	debounced func(f func())
	onChord   func(keys []uint8)
}

func NewWatcher(wait time.Duration, onChord func(keys []uint8)) *Watcher {
	return &Watcher{
		tracker:   chord.NewTracker(),
		debounced: debounce.New(wait),
		onChord:   onChord,
	}
}

func (w *Watcher) Receive(msg gomidi.Message, timestampms int32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.tracker.Handle(msg) {
		return
	}
	keys := w.tracker.Keys()
	w.debounced(func() {
		w.onChord(keys)
	})
}

// Listen feeds the MIDI in port into a Watcher until stop is called.
func Listen(port int, wait time.Duration, onChord func(keys []uint8)) (stop func(), e error) {
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	in, err := gomidi.InPort(port)
	if err != nil {
		return nil, fmt.Errorf("can't find midi in port %d: %w", port, err)
	}
	w := NewWatcher(wait, onChord)
	stop, err = gomidi.ListenTo(in, w.Receive)
	if err != nil {
		return nil, fmt.Errorf("can't listen to midi in port %d: %w", port, err)
	}
	return stop, nil
}
