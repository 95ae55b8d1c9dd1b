package cmd

import (
	"fmt"

	"github.com/jsphweid/intervaldex/interval"
	"github.com/jsphweid/intervaldex/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <notation|semitones>",
	Short: "Describes an interval",
	Long:  `Describes an interval given in short-hand notation (P5, -m3) or as a semitone count.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseShift(args[0]).Interval()
		if err != nil {
			return err
		}
		r := describeInterval(i)
		fmt.Printf("interval:        %v\n", r.Notation)
		fmt.Printf("diatonic steps:  %v\n", r.DiatonicSteps)
		fmt.Printf("chromatic steps: %v\n", r.ChromaticSteps)
		fmt.Printf("compound:        %v\n", r.Compound)
		fmt.Printf("inversion:       %v\n", r.Inversion)
		fmt.Printf("simplified:      %v\n", r.Simplified)
		fmt.Printf("simple term:     %v\n", r.SimpleTerm)
		fmt.Printf("frequency ratio: %.6f\n", r.FrequencyRatio)
		fmt.Printf("cents:           %v\n", r.Cents)
		return nil
	},
}

func describeInterval(i interval.Interval) model.IntervalResponse {
	return model.IntervalResponse{
		Notation:       i.String(),
		DiatonicSteps:  i.DiatonicSteps(),
		ChromaticSteps: i.ChromaticSteps(),
		Compound:       i.IsCompound(),
		Inversion:      i.Invert().String(),
		Simplified:     i.Simplify().String(),
		SimpleTerm:     i.SimpleTerm().String(),
		FrequencyRatio: i.FrequencyRatio(),
		Cents:          i.Cents(),
	}
}
