package constants

import (
	"os"
	"strconv"
	"time"
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetMidiInPort() int {
	port := os.Getenv("MIDI_IN_PORT")
	if port == "" {
		return 0
	}
	num, err := strconv.Atoi(port)
	if err != nil {
		panic("MIDI_IN_PORT must be a number: " + err.Error())
	}
	return num
}

func GetDebounce() time.Duration {
	ms := os.Getenv("DEBOUNCE_MS")
	if ms == "" {
		return DefaultDebounce
	}
	num, err := strconv.Atoi(ms)
	if err != nil {
		panic("DEBOUNCE_MS must be a number: " + err.Error())
	}
	return time.Duration(num) * time.Millisecond
}

// GetCatalogPath is an optional YAML catalog searched alongside the built-ins.
func GetCatalogPath() string {
	return os.Getenv("CATALOG_PATH")
}

// chord keys landing within this window count as one chord
const DefaultDebounce = 50 * time.Millisecond

const MaxSearchIntervals = 64
