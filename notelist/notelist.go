package notelist

import (
	"errors"
	"sort"
	"strings"

	"github.com/jsphweid/intervaldex/interval"
	"github.com/jsphweid/intervaldex/note"
	"github.com/jsphweid/intervaldex/search"
)

var ErrCannotSearchMixedCollection = errors.New("cannot search a mix of pitches and pitch classes")

// List is an ordered collection of notes. The first note is the root when
// intervals are derived. Methods return new lists.
type List []note.Note

// Parse reads space separated notes, e.g. "C4 E4 G4".
func Parse(s string) (List, error) {
	var l List
	for _, field := range strings.Fields(s) {
		n, err := note.Parse(field)
		if err != nil {
			return nil, err
		}
		l = append(l, n)
	}
	return l, nil
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, n := range l {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

func (l List) Contains(n note.Note) bool {
	for _, m := range l {
		if m.IsEqual(n) {
			return true
		}
	}
	return false
}

func (l List) Add(notes ...note.Note) List {
	res := make(List, 0, len(l)+len(notes))
	res = append(res, l...)
	return append(res, notes...)
}

// Remove drops every note equal to n.
func (l List) Remove(n note.Note) List {
	res := make(List, 0, len(l))
	for _, m := range l {
		if !m.IsEqual(n) {
			res = append(res, m)
		}
	}
	return res
}

// Toggle removes n when present and appends it otherwise.
func (l List) Toggle(n note.Note) List {
	if l.Contains(n) {
		return l.Remove(n)
	}
	return l.Add(n)
}

func (l List) Sort() List {
	res := l.Add()
	sort.SliceStable(res, func(i, j int) bool {
		return note.Compare(res[i], res[j]) < 0
	})
	return res
}

func (l List) Transpose(i interval.Interval) List {
	res := make(List, len(l))
	for idx, n := range l {
		res[idx] = n.Transpose(i)
	}
	return res
}

// IsMixed reports whether the list holds both pitches and pitch classes.
func (l List) IsMixed() bool {
	for _, n := range l {
		if n.IsPitch() != l[0].IsPitch() {
			return true
		}
	}
	return false
}

// Intervals measures every note from the first one.
func (l List) Intervals() ([]interval.Interval, error) {
	if l.IsMixed() {
		return nil, ErrCannotSearchMixedCollection
	}
	res := make([]interval.Interval, 0, len(l))
	for _, n := range l {
		i, err := l[0].IntervalTo(n)
		if err != nil {
			return nil, err
		}
		res = append(res, i)
	}
	return res, nil
}

func (l List) search(e *search.Engine, mode search.Mode, rel search.Relation) ([]search.Result, error) {
	intervals, err := l.Intervals()
	if err != nil {
		return nil, err
	}
	return e.SearchIntervals(intervals, mode, rel), nil
}

// Exact finds the catalog entries spelled by exactly these notes.
func (l List) Exact(e *search.Engine, mode search.Mode) ([]search.Result, error) {
	return l.search(e, mode, search.Equal)
}

// Subsets finds catalog entries contained in these notes.
func (l List) Subsets(e *search.Engine, mode search.Mode) ([]search.Result, error) {
	return l.search(e, mode, search.Subset)
}

// Supersets finds catalog entries containing these notes.
func (l List) Supersets(e *search.Engine, mode search.Mode) ([]search.Result, error) {
	return l.search(e, mode, search.Superset)
}
