package cmd

import (
	"fmt"

	"github.com/jsphweid/intervaldex/bitindex"
	"github.com/jsphweid/intervaldex/search"
	"github.com/spf13/cobra"
)

func init() {
	indexCmd.Flags().StringVarP(&modeFlag, "mode", "m", "exact", "exact or enharmonic index")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [catalog]",
	Short: "Dumps the bitmask index",
	Long:  `Dumps the bitmask index of every catalog, or of the one named.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := bitindex.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		indexes := engine.Indexes()
		if len(args) == 1 {
			ix, err := engine.Index(args[0])
			if err != nil {
				return err
			}
			indexes = []*search.Index{ix}
		}
		for _, ix := range indexes {
			fmt.Printf("%v (%v):\n", ix.Catalog().Name, mode)
			for _, e := range ix.Entries(mode) {
				fmt.Printf("  %016x %2d %v\n", e.Bitmask, e.Length, e.Name)
			}
		}
		return nil
	},
}
