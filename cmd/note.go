package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jsphweid/intervaldex/model"
	"github.com/jsphweid/intervaldex/note"
	"github.com/spf13/cobra"
)

var (
	fromMidi      int
	fromFrequency float64
)

func init() {
	noteCmd.Flags().IntVar(&fromMidi, "midi", -1, "spell a MIDI note number instead")
	noteCmd.Flags().Float64Var(&fromFrequency, "hz", 0, "spell the pitch nearest to a frequency instead")
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(transposeCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note [notation]",
	Short: "Describes a note",
	Long:  `Describes a note in scientific pitch notation (C, D#4, Ebb-1), a MIDI number or a frequency.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := noteFromArgs(args)
		if err != nil {
			return err
		}
		r := describeNote(n)
		fmt.Printf("note:             %v\n", r.Notation)
		fmt.Printf("pitch class:      %v\n", r.PitchClass)
		fmt.Printf("diatonic offset:  %v\n", r.DiatonicOffset)
		fmt.Printf("chromatic offset: %v\n", r.ChromaticOffset)
		fmt.Printf("simplified:       %v\n", r.Simplified)
		if r.Midi != nil {
			fmt.Printf("midi:             %v\n", *r.Midi)
		}
		if r.Frequency != nil {
			fmt.Printf("frequency:        %.3f Hz\n", *r.Frequency)
		}
		return nil
	},
}

func noteFromArgs(args []string) (note.Note, error) {
	switch {
	case len(args) == 1:
		return note.Parse(args[0])
	case fromMidi >= 0:
		return note.FromMidi(fromMidi)
	case fromFrequency != 0:
		return note.FromFrequency(fromFrequency)
	}
	return note.Note{}, errors.New("need a note, --midi or --hz")
}

func describeNote(n note.Note) model.NoteResponse {
	r := model.NoteResponse{
		Notation:        n.String(),
		PitchClass:      n.IsPitchClass(),
		DiatonicOffset:  n.DiatonicOffset(),
		ChromaticOffset: n.ChromaticOffset(),
		Simplified:      n.Simplify().String(),
	}
	if m, err := n.Midi(); err == nil {
		r.Midi = &m
	}
	if f, err := n.Frequency(); err == nil {
		r.Frequency = &f
	}
	return r
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <note> <interval|semitones>",
	Short: "Transposes a note",
	Long: `Transposes a note by an interval (M3, -P5) or a number of semitones.
Put -- before descending intervals: transpose C4 -- -P5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := note.Parse(args[0])
		if err != nil {
			return err
		}
		res, err := n.TransposeBy(parseShift(args[1]))
		if err != nil {
			return err
		}
		fmt.Println(res)
		return nil
	},
}

// parseShift reads a semitone count when s is a number, notation otherwise.
func parseShift(s string) note.Shift {
	if semitones, err := strconv.Atoi(s); err == nil {
		return note.BySemitones(semitones)
	}
	return note.ByNotation(s)
}
