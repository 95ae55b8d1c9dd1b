package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jsphweid/intervaldex/bitindex"
	"github.com/jsphweid/intervaldex/chord"
	"github.com/jsphweid/intervaldex/constants"
	"github.com/jsphweid/intervaldex/midi"
	"github.com/jsphweid/intervaldex/search"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var inPort int

func init() {
	listenCmd.Flags().IntVarP(&inPort, "port", "p", constants.GetMidiInPort(), "MIDI in port")
	listenCmd.Flags().StringVarP(&relationFlag, "relation", "r", "exact", "exact, subset or superset")
	listenCmd.Flags().StringVarP(&modeFlag, "mode", "m", "exact", "exact, or enharmonic to treat M3 and d4 alike")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI keyboard",
	Long:  `Listens on a MIDI in port and names each chord held down, once the keys settle.`,
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

		defer gomidi.CloseDriver()
		stop, err := midi.Listen(inPort, constants.GetDebounce(), func(keys []uint8) {
			if len(keys) == 0 {
				return
			}
			notes, err := chord.Spell(keys)
			if err != nil {
				fmt.Printf("ERROR: %s\n", err)
				return
			}
			results, err := chord.Identify(keys, engine, mode, rel)
			if err != nil {
				fmt.Printf("ERROR: %s\n", err)
				return
			}
			fmt.Printf("%v\n", notes)
			printResults(results)
		})
		if err != nil {
			return err
		}
		defer stop()

		fmt.Printf("listening on MIDI in port %d, ctrl-c to stop\n", inPort)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		return nil
	},
}
