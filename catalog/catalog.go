package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/intervaldex/bitindex"
	"github.com/jsphweid/intervaldex/interval"
)

var (
	ErrUnknownName    = errors.New("unknown name")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Entry is one named interval set, intervals measured from the root.
type Entry struct {
	Name      string
	Intervals []string
}

// Catalog is an ordered set of named interval lists. Aliases are resolved
// once in New, so every lookup is a single map read.
type Catalog struct {
	Name    string
	entries []Entry
	names   map[string]struct{}
	lookup  map[string][]string
	aliases map[string]string
}

func New(name string, entries []Entry, aliases map[string]string) (*Catalog, error) {
	c := &Catalog{
		Name:    name,
		names:   make(map[string]struct{}, len(entries)),
		lookup:  make(map[string][]string, len(entries)+len(aliases)),
		aliases: make(map[string]string, len(aliases)),
	}
	for _, e := range entries {
		if _, dup := c.names[e.Name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate entry %q", ErrInvalidCatalog, name, e.Name)
		}
		for _, n := range e.Intervals {
			if _, err := interval.Parse(n); err != nil {
				return nil, fmt.Errorf("%w: %s: entry %q: %v", ErrInvalidCatalog, name, e.Name, err)
			}
			if bitindex.Bit(n, bitindex.Exact) == 0 {
				return nil, fmt.Errorf("%w: %s: entry %q: %q cannot be indexed", ErrInvalidCatalog, name, e.Name, n)
			}
		}
		c.entries = append(c.entries, e)
		c.names[e.Name] = struct{}{}
		c.lookup[e.Name] = e.Intervals
	}
	for alias, target := range aliases {
		if _, ok := c.names[target]; !ok {
			return nil, fmt.Errorf("%w: %s: alias %q points to unknown %q", ErrInvalidCatalog, name, alias, target)
		}
		c.aliases[alias] = target
		if _, taken := c.names[alias]; !taken {
			c.lookup[alias] = c.lookup[target]
		}
	}
	return c, nil
}

func MustNew(name string, entries []Entry, aliases map[string]string) *Catalog {
	c, err := New(name, entries, aliases)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup accepts a canonical name or an alias.
func (c *Catalog) Lookup(name string) ([]string, error) {
	intervals, ok := c.lookup[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownName, c.Name, name)
	}
	return intervals, nil
}

// Canonical resolves an alias to its entry name. Entry names win over
// aliases spelled the same way.
func (c *Catalog) Canonical(name string) (string, error) {
	if _, ok := c.names[name]; ok {
		return name, nil
	}
	if target, ok := c.aliases[name]; ok {
		return target, nil
	}
	return "", fmt.Errorf("%w: %s %q", ErrUnknownName, c.Name, name)
}

// Entries are in declaration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// AliasesOf lists every alias resolving to name.
func (c *Catalog) AliasesOf(name string) []string {
	var res []string
	for alias, target := range c.aliases {
		if target == name {
			res = append(res, alias)
		}
	}
	sort.Strings(res)
	return res
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
