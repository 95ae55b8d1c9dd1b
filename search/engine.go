package search

import (
	"fmt"

	"github.com/jsphweid/intervaldex/catalog"
	"github.com/jsphweid/intervaldex/interval"
)

type Result struct {
	Catalog string  `json:"catalog"`
	Matches []Match `json:"matches"`
}

// Engine queries several catalogs at once, in the order they were given.
type Engine struct {
	indexes []*Index
}

func NewEngine(catalogs ...*catalog.Catalog) *Engine {
	e := &Engine{}
	for _, c := range catalogs {
		e.indexes = append(e.indexes, NewIndex(c))
	}
	return e
}

// Default searches the built-in chords, then scales.
func Default() *Engine {
	return NewEngine(catalog.Chords(), catalog.Scales())
}

func (e *Engine) Index(name string) (*Index, error) {
	for _, ix := range e.indexes {
		if ix.catalog.Name == name {
			return ix, nil
		}
	}
	return nil, fmt.Errorf("%w: catalog %q", catalog.ErrUnknownName, name)
}

func (e *Engine) Indexes() []*Index {
	return e.indexes
}

func (e *Engine) Search(needle []string, mode Mode, rel Relation) []Result {
	res := make([]Result, 0, len(e.indexes))
	for _, ix := range e.indexes {
		res = append(res, Result{Catalog: ix.catalog.Name, Matches: ix.Query(needle, mode, rel)})
	}
	return res
}

func (e *Engine) SearchIntervals(needle []interval.Interval, mode Mode, rel Relation) []Result {
	res := make([]Result, 0, len(e.indexes))
	for _, ix := range e.indexes {
		res = append(res, Result{Catalog: ix.catalog.Name, Matches: ix.QueryIntervals(needle, mode, rel)})
	}
	return res
}
