//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/intervaldex/cmd"
	"github.com/jsphweid/intervaldex/model"
	"github.com/jsphweid/intervaldex/search"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := cmd.LoadServeEngine(); err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()

	os.Exit(exitVal)
}

func createReqBody(v any) io.Reader {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func do(req *http.Request, out any) *http.Response {
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			panic(err.Error())
		}
	}
	return resp
}

func TestSearchMajorTriadE2E(t *testing.T) {
	body := createReqBody(model.SearchRequestBody{Intervals: []string{"P1", "M3", "P5"}})
	req := httptest.NewRequest(http.MethodPost, "/search", body)

	var searchResponse model.SearchResponse
	resp := do(req, &searchResponse)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get("X-Request-Id"))
	assert.Equal(model.SearchResponse{
		Intervals: []string{"P1", "M3", "P5"},
		Results: []search.Result{
			{Catalog: "chords", Matches: []search.Match{{Name: "major", Ratio: 1}}},
			{Catalog: "scales", Matches: []search.Match{}},
		},
	}, searchResponse)
}

func TestSearchByNotesE2E(t *testing.T) {
	body := createReqBody(model.SearchRequestBody{Notes: "A C E", Relation: "subset"})
	req := httptest.NewRequest(http.MethodPost, "/search", body)

	var searchResponse model.SearchResponse
	resp := do(req, &searchResponse)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal([]string{"P1", "m3", "P5"}, searchResponse.Intervals)
	assert.Equal("chords", searchResponse.Results[0].Catalog)
	assert.Contains(searchResponse.Results[0].Matches, search.Match{Name: "minor", Ratio: 1})
}

func TestSearchRejectsUnknownRelationE2E(t *testing.T) {
	body := createReqBody(model.SearchRequestBody{Intervals: []string{"P1"}, Relation: "sideways"})
	req := httptest.NewRequest(http.MethodPost, "/search", body)

	var errorResponse model.ErrorResponse
	resp := do(req, &errorResponse)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)
	assert.Contains(errorResponse.Error, "sideways")
}

func TestSearchEnharmonicModeE2E(t *testing.T) {
	body := createReqBody(model.SearchRequestBody{Intervals: []string{"P1", "M3", "AA4"}, Mode: "enharmonic"})
	req := httptest.NewRequest(http.MethodPost, "/search", body)

	var searchResponse model.SearchResponse
	resp := do(req, &searchResponse)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal([]search.Match{{Name: "major", Ratio: 1}}, searchResponse.Results[0].Matches)
}

func TestSearchRejectsUnknownModeE2E(t *testing.T) {
	body := createReqBody(model.SearchRequestBody{Intervals: []string{"P1"}, Mode: "fuzzy"})
	req := httptest.NewRequest(http.MethodPost, "/search", body)

	var errorResponse model.ErrorResponse
	resp := do(req, &errorResponse)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)
	assert.Contains(errorResponse.Error, "fuzzy")
}

func TestSearchRejectsMixedNotesE2E(t *testing.T) {
	body := createReqBody(model.SearchRequestBody{Notes: "C4 E G"})
	req := httptest.NewRequest(http.MethodPost, "/search", body)

	var errorResponse model.ErrorResponse
	resp := do(req, &errorResponse)

	assert.Equal(t, 400, resp.StatusCode)
	assert.NotEmpty(t, errorResponse.Error)
}

func TestIdentifyCChordE2E(t *testing.T) {
	body := createReqBody(model.IdentifyRequestBody{Keys: []uint8{67, 60, 64}})
	req := httptest.NewRequest(http.MethodPost, "/identify", body)

	var identifyResponse model.IdentifyResponse
	resp := do(req, &identifyResponse)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("C4 E4 G4", identifyResponse.Notes)
	assert.Equal("60-64-67", identifyResponse.ChordKey)
	assert.Equal([]search.Match{{Name: "major", Ratio: 1}}, identifyResponse.Results[0].Matches)
}

func TestIntervalE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/interval/M10", nil)

	var intervalResponse model.IntervalResponse
	resp := do(req, &intervalResponse)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("M10", intervalResponse.Notation)
	assert.Equal(9, intervalResponse.DiatonicSteps)
	assert.Equal(16, intervalResponse.ChromaticSteps)
	assert.True(intervalResponse.Compound)
	assert.Equal("M3", intervalResponse.Simplified)
	assert.InDelta(1600, intervalResponse.Cents, 1e-6)
}

func TestBadIntervalE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/interval/X3", nil)

	var errorResponse model.ErrorResponse
	resp := do(req, &errorResponse)

	assert.Equal(t, 400, resp.StatusCode)
	assert.NotEmpty(t, errorResponse.Error)
}

func TestNoteE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/note/A4", nil)

	var noteResponse model.NoteResponse
	resp := do(req, &noteResponse)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("A4", noteResponse.Notation)
	assert.False(noteResponse.PitchClass)
	if assert.NotNil(noteResponse.Midi) {
		assert.Equal(69, *noteResponse.Midi)
	}
	if assert.NotNil(noteResponse.Frequency) {
		assert.InDelta(440, *noteResponse.Frequency, 1e-9)
	}
}

func TestTransposeE2E(t *testing.T) {
	cases := []struct {
		path string
		want model.TransposeResponse
	}{
		{"/transpose/C4/M3", model.TransposeResponse{From: "C4", Interval: "M3", To: "E4"}},
		{"/transpose/E4/-P5", model.TransposeResponse{From: "E4", Interval: "-P5", To: "A3"}},
		{"/transpose/C/7", model.TransposeResponse{From: "C", Interval: "P5", To: "G"}},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, c.path, nil)

			var transposeResponse model.TransposeResponse
			resp := do(req, &transposeResponse)

			assert.Equal(t, 200, resp.StatusCode)
			assert.Equal(t, c.want, transposeResponse)
		})
	}
}

func TestRequestIdIsEchoedE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/interval/P5", nil)
	req.Header.Set("X-Request-Id", "abc")

	resp := do(req, nil)

	assert.Equal(t, "abc", resp.Header.Get("X-Request-Id"))
}
