package cmd

import (
	"github.com/jsphweid/intervaldex/catalog"
	"github.com/jsphweid/intervaldex/constants"
	"github.com/jsphweid/intervaldex/search"
	"github.com/spf13/cobra"
)

var catalogPath string

var rootCmd = &cobra.Command{
	Use:   "intervaldex",
	Short: "Interval and note algebra with chord and scale search",
	Long: `intervaldex parses notes and intervals, transposes and inverts them,
and names the chords and scales an interval set spells.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", constants.GetCatalogPath(), "extra YAML catalog to search")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadEngine searches the built-in chords and scales, plus the --catalog file
// when one is given.
func loadEngine() (*search.Engine, error) {
	catalogs := []*catalog.Catalog{catalog.Chords(), catalog.Scales()}
	if catalogPath != "" {
		c, err := catalog.LoadFile(catalogPath)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, c)
	}
	return search.NewEngine(catalogs...), nil
}
