package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type yamlEntry struct {
	Name      string   `yaml:"name"`
	Intervals []string `yaml:"intervals"`
	Aliases   []string `yaml:"aliases"`
}

type yamlCatalog struct {
	Name    string            `yaml:"name"`
	Entries []yamlEntry       `yaml:"entries"`
	Aliases map[string]string `yaml:"aliases"`
}

// LoadYAML reads a catalog such as
//
//	name: triads
//	entries:
//	  - name: major
//	    intervals: [P1, M3, P5]
//	    aliases: [maj, M]
//
// An empty name falls back to the one in the document.
func LoadYAML(name string, r io.Reader) (*Catalog, error) {
	var doc yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if name == "" {
		name = doc.Name
	}
	entries := make([]Entry, 0, len(doc.Entries))
	aliases := make(map[string]string, len(doc.Aliases))
	for alias, target := range doc.Aliases {
		aliases[alias] = target
	}
	for _, e := range doc.Entries {
		entries = append(entries, Entry{Name: e.Name, Intervals: e.Intervals})
		for _, alias := range e.Aliases {
			aliases[alias] = e.Name
		}
	}
	return New(name, entries, aliases)
}

// LoadFile reads a YAML catalog, naming it after the file when the document
// has no name.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := LoadYAML("", f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return c, nil
}
