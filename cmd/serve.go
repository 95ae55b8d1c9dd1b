package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/intervaldex/bitindex"
	"github.com/jsphweid/intervaldex/chord"
	"github.com/jsphweid/intervaldex/constants"
	"github.com/jsphweid/intervaldex/interval"
	"github.com/jsphweid/intervaldex/model"
	"github.com/jsphweid/intervaldex/note"
	"github.com/jsphweid/intervaldex/notelist"
	"github.com/jsphweid/intervaldex/search"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveEngine *search.Engine

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the search over HTTP",
	Long:  `Serves interval, note, transpose and search endpoints on $PORT (default 8080).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadServeEngine(); err != nil {
			return err
		}
		serve()
		return nil
	},
}

// LoadServeEngine loads the catalogs the handlers search.
func LoadServeEngine() error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}
	serveEngine = engine
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}
	if err := json.Unmarshal(reqBody, v); err != nil {
		return fmt.Errorf("could not unmarshal request body: %w", err)
	}
	return nil
}

func withRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	var input model.SearchRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	rel, err := search.ParseRelation(input.Relation)
	if err != nil {
		writeError(w, err)
		return
	}

	mode, err := bitindex.ParseMode(input.Mode)
	if err != nil {
		writeError(w, err)
		return
	}

	needle := input.Intervals
	if input.Notes != "" {
		notes, err := notelist.Parse(input.Notes)
		if err != nil {
			writeError(w, err)
			return
		}
		intervals, err := notes.Intervals()
		if err != nil {
			writeError(w, err)
			return
		}
		needle = make([]string, len(intervals))
		for i, iv := range intervals {
			needle[i] = iv.String()
		}
	}
	if len(needle) > constants.MaxSearchIntervals {
		writeError(w, fmt.Errorf("at most %d intervals per search", constants.MaxSearchIntervals))
		return
	}
	if needle == nil {
		needle = make([]string, 0)
	}

	writeJSON(w, http.StatusOK, model.SearchResponse{
		Intervals: needle,
		Results:   serveEngine.Search(needle, mode, rel),
	})
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}
	if len(input.Keys) == 0 {
		writeError(w, fmt.Errorf("no keys to identify"))
		return
	}
	mode, err := bitindex.ParseMode(input.Mode)
	if err != nil {
		writeError(w, err)
		return
	}

	notes, err := chord.Spell(input.Keys)
	if err != nil {
		writeError(w, err)
		return
	}
	results, err := chord.Identify(input.Keys, serveEngine, mode, search.Equal)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.IdentifyResponse{
		Notes:    notes.String(),
		ChordKey: chord.CreateChordKey(input.Keys),
		Results:  results,
	})
}

func HandleInterval(w http.ResponseWriter, r *http.Request) {
	i, err := interval.Parse(mux.Vars(r)["notation"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describeInterval(i))
}

func HandleNote(w http.ResponseWriter, r *http.Request) {
	n, err := note.Parse(mux.Vars(r)["notation"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, describeNote(n))
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	n, err := note.Parse(vars["note"])
	if err != nil {
		writeError(w, err)
		return
	}
	shift := parseShift(vars["interval"])
	i, err := shift.Interval()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransposeResponse{
		From:     n.String(),
		Interval: i.String(),
		To:       n.Transpose(i).String(),
	})
}

// NewRouter wires every endpoint behind CORS and request ids.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestId)
	router.HandleFunc("/search", HandleSearch).Methods("POST")
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")
	router.HandleFunc("/interval/{notation}", HandleInterval).Methods("GET")
	router.HandleFunc("/note/{notation}", HandleNote).Methods("GET")
	router.HandleFunc("/transpose/{note}/{interval}", HandleTranspose).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	port := constants.GetPort()
	log.Printf("listening on :%v", port)
	log.Fatal(http.ListenAndServe(":"+port, NewRouter()))
}
