package model

import "github.com/jsphweid/intervaldex/search"

type Keys = []uint8

type IdentifyRequestBody struct {
	Keys Keys   `json:"keys"`
	Mode string `json:"mode"`
}

type IdentifyResponse struct {
	Notes    string          `json:"notes"`
	ChordKey string          `json:"chord_key"`
	Results  []search.Result `json:"results"`
}
