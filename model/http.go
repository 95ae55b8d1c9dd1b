package model

import "github.com/jsphweid/intervaldex/search"

type SearchRequestBody struct {
	Intervals []string `json:"intervals"`
	Notes     string   `json:"notes"`
	Mode      string   `json:"mode"`
	Relation  string   `json:"relation"`
}

type SearchResponse struct {
	Intervals []string        `json:"intervals"`
	Results   []search.Result `json:"results"`
}

type IntervalResponse struct {
	Notation       string  `json:"notation"`
	DiatonicSteps  int     `json:"diatonic_steps"`
	ChromaticSteps int     `json:"chromatic_steps"`
	Compound       bool    `json:"compound"`
	Inversion      string  `json:"inversion"`
	Simplified     string  `json:"simplified"`
	SimpleTerm     string  `json:"simple_term"`
	FrequencyRatio float64 `json:"frequency_ratio"`
	Cents          float64 `json:"cents"`
}

type NoteResponse struct {
	Notation        string   `json:"notation"`
	PitchClass      bool     `json:"pitch_class"`
	DiatonicOffset  int      `json:"diatonic_offset"`
	ChromaticOffset int      `json:"chromatic_offset"`
	Simplified      string   `json:"simplified"`
	Midi            *int     `json:"midi,omitempty"`
	Frequency       *float64 `json:"frequency,omitempty"`
}

type TransposeResponse struct {
	From     string `json:"from"`
	Interval string `json:"interval"`
	To       string `json:"to"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
