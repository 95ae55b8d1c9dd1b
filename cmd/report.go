package cmd

import (
	"fmt"
	"math/bits"

	"github.com/jsphweid/intervaldex/bitindex"
	"github.com/jsphweid/intervaldex/search"
	"github.com/jsphweid/intervaldex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Reports catalog sizes, index bit usage and entries that collide under enharmonic matching.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		fmt.Printf("indexed intervals: %v\n", len(bitindex.Notations()))
		for _, ix := range engine.Indexes() {
			printReport(analyzeIndex(ix))
		}
		return nil
	},
}

type catalogReport struct {
	name           string
	numEntries     int
	numIntervals   []int
	exactBits      int
	enharmonicBits int
	collisions     [][]string
}

func analyzeIndex(ix *search.Index) catalogReport {
	report := catalogReport{name: ix.Catalog().Name}

	var exactUsed, enharmonicUsed uint64
	for _, e := range ix.Entries(search.Exact) {
		report.numEntries += 1
		report.numIntervals = append(report.numIntervals, e.Length)
		exactUsed |= e.Bitmask
	}

	byMask := make(map[uint64][]string)
	for _, e := range ix.Entries(search.Enharmonic) {
		enharmonicUsed |= e.Bitmask
		byMask[e.Bitmask] = append(byMask[e.Bitmask], e.Name)
	}
	for _, mask := range util.GetSortedKeys(byMask) {
		if len(byMask[mask]) > 1 {
			report.collisions = append(report.collisions, byMask[mask])
		}
	}

	report.exactBits = bits.OnesCount64(exactUsed)
	report.enharmonicBits = bits.OnesCount64(enharmonicUsed)
	return report
}

func printReport(report catalogReport) {
	fmt.Printf("%v:\n", report.name)
	fmt.Printf("  entries: %v\n", report.numEntries)
	fmt.Printf("  intervals: %v\n", util.Sum(report.numIntervals))
	fmt.Printf("  exact bits used: %v\n", report.exactBits)
	fmt.Printf("  enharmonic bits used: %v\n", report.enharmonicBits)
	for _, names := range report.collisions {
		fmt.Printf("  enharmonic collision: %v\n", names)
	}
}
