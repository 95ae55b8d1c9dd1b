package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/intervaldex/bitindex"
	"github.com/jsphweid/intervaldex/notelist"
	"github.com/jsphweid/intervaldex/search"
	"github.com/spf13/cobra"
)

var (
	relationFlag string
	modeFlag     string
)

func init() {
	for _, c := range []*cobra.Command{searchCmd, identifyCmd} {
		c.Flags().StringVarP(&relationFlag, "relation", "r", "exact", "exact, subset or superset")
		c.Flags().StringVarP(&modeFlag, "mode", "m", "exact", "exact, or enharmonic to treat M3 and d4 alike")
		rootCmd.AddCommand(c)
	}
}

var searchCmd = &cobra.Command{
	Use:   "search <intervals...>",
	Short: "Names the chords and scales an interval set spells",
	Long: `Names the chords and scales an interval set spells, e.g. search P1 M3 P5.
With --relation subset it lists entries contained in the intervals,
with --relation superset entries containing them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rel, err := search.ParseRelation(relationFlag)
		if err != nil {
			return err
		}
		mode, err := bitindex.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		needle := search.ParseNeedle(strings.Join(args, " "))
		for _, n := range needle {
			if bitindex.Bit(n, mode) == 0 {
				fmt.Printf("ignoring %q: not an indexed interval\n", n)
			}
		}
		printResults(engine.Search(needle, mode, rel))
		return nil
	},
}

var identifyCmd = &cobra.Command{
	Use:   "identify <notes...>",
	Short: "Names the chords and scales a set of notes spells",
	Long:  `Names the chords and scales a set of notes spells, reading intervals up from the first note, e.g. identify C E G.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rel, err := search.ParseRelation(relationFlag)
		if err != nil {
			return err
		}
		mode, err := bitindex.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		notes, err := notelist.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		intervals, err := notes.Intervals()
		if err != nil {
			return err
		}
		fmt.Printf("intervals: %v\n", intervals)
		printResults(engine.SearchIntervals(intervals, mode, rel))
		return nil
	},
}

func printResults(results []search.Result) {
	for _, r := range results {
		fmt.Printf("%v:\n", r.Catalog)
		if len(r.Matches) == 0 {
			fmt.Println("  (none)")
		}
		for _, m := range r.Matches {
			fmt.Printf("  %v (%.2f)\n", m.Name, m.Ratio)
		}
	}
}
