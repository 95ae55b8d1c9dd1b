package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/intervaldex/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Inspects a catalog entry",
	Long:  `Resolves a chord or scale name or alias and prints its intervals.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		found := false
		for _, ix := range engine.Indexes() {
			c := ix.Catalog()
			name, err := c.Canonical(args[0])
			if err != nil {
				continue
			}
			found = true
			inspect(c, name)
		}
		if !found {
			return fmt.Errorf("%w: %q", catalog.ErrUnknownName, args[0])
		}
		return nil
	},
}

func inspect(c *catalog.Catalog, name string) {
	intervals, _ := c.Lookup(name)
	fmt.Printf("%v: %v\n", c.Name, name)
	fmt.Printf("  intervals: %v\n", strings.Join(intervals, " "))
	aliases := c.AliasesOf(name)
	for i, a := range aliases {
		aliases[i] = fmt.Sprintf("%q", a)
	}
	fmt.Printf("  aliases:   %v\n", strings.Join(aliases, ", "))
}
