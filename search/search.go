package search

import (
	"fmt"
	"math/bits"
	"strings"
	"sync"

	"github.com/jsphweid/intervaldex/bitindex"
	"github.com/jsphweid/intervaldex/catalog"
	"github.com/jsphweid/intervaldex/interval"
)

type Mode = bitindex.Mode

const (
	Exact      = bitindex.Exact
	Enharmonic = bitindex.Enharmonic
)

// Relation is read from the catalog entry's side: Subset finds entries that
// are subsets of the query, Superset finds entries that contain it.
type Relation int

const (
	Equal Relation = iota
	Subset
	Superset
)

func (r Relation) String() string {
	switch r {
	case Subset:
		return "subset"
	case Superset:
		return "superset"
	}
	return "exact"
}

func ParseRelation(s string) (Relation, error) {
	switch s {
	case "exact", "equal", "":
		return Equal, nil
	case "subset", "subsets":
		return Subset, nil
	case "superset", "supersets":
		return Superset, nil
	}
	return Equal, fmt.Errorf("unknown relation %q", s)
}

type Entry struct {
	Name    string
	Bitmask uint64
	Length  int
}

type Match struct {
	Name  string  `json:"name"`
	Ratio float64 `json:"ratio"`
}

// Index answers queries against one catalog. Bitmasks for each mode are
// built on first use and never change afterwards, so an Index is safe to
// share between goroutines.
type Index struct {
	catalog *catalog.Catalog
	once    [2]sync.Once
	entries [2][]Entry
}

func NewIndex(c *catalog.Catalog) *Index {
	return &Index{catalog: c}
}

func (ix *Index) Catalog() *catalog.Catalog {
	return ix.catalog
}

// Entries returns the index for mode, building it if needed.
func (ix *Index) Entries(mode Mode) []Entry {
	ix.once[mode].Do(func() {
		entries := make([]Entry, 0, ix.catalog.Len())
		for _, e := range ix.catalog.Entries() {
			entries = append(entries, Entry{
				Name:    e.Name,
				Bitmask: bitindex.Mask(e.Intervals, mode),
				Length:  len(e.Intervals),
			})
		}
		ix.entries[mode] = entries
	})
	return ix.entries[mode]
}

// Query matches needle, a list of interval notations, against every entry.
// Notation without a bit is ignored rather than rejected.
func (ix *Index) Query(needle []string, mode Mode, rel Relation) []Match {
	return ix.QueryMask(bitindex.Mask(needle, mode), mode, rel)
}

func (ix *Index) QueryIntervals(needle []interval.Interval, mode Mode, rel Relation) []Match {
	return ix.QueryMask(bitindex.MaskOf(needle, mode), mode, rel)
}

func (ix *Index) QueryMask(needle uint64, mode Mode, rel Relation) []Match {
	res := make([]Match, 0)
	for _, e := range ix.Entries(mode) {
		if matches(rel, needle, e.Bitmask) {
			res = append(res, Match{Name: e.Name, Ratio: ratio(rel, needle, e.Bitmask)})
		}
	}
	return res
}

func (ix *Index) Exact(needle []string, mode Mode) []string {
	return names(ix.Query(needle, mode, Equal))
}

func (ix *Index) Subsets(needle []string, mode Mode) []string {
	return names(ix.Query(needle, mode, Subset))
}

func (ix *Index) Supersets(needle []string, mode Mode) []string {
	return names(ix.Query(needle, mode, Superset))
}

func matches(rel Relation, needle, candidate uint64) bool {
	switch rel {
	case Subset:
		return ^needle&candidate == 0
	case Superset:
		return needle&^candidate == 0
	}
	return needle == candidate
}

// ratio is the smaller set's size over the larger one's.
func ratio(rel Relation, needle, candidate uint64) float64 {
	n, c := bits.OnesCount64(needle), bits.OnesCount64(candidate)
	switch rel {
	case Subset:
		n, c = c, n
	case Equal:
		return 1
	}
	if c == 0 {
		return 0
	}
	return float64(n) / float64(c)
}

func names(matches []Match) []string {
	res := make([]string, len(matches))
	for i, m := range matches {
		res[i] = m.Name
	}
	return res
}

// ParseNeedle splits space separated notation such as "P1 M3 P5".
func ParseNeedle(s string) []string {
	return strings.Fields(s)
}
