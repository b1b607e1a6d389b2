// Package locations holds the enumerated set of place names a leg may
// depart from or arrive at.
package locations

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/itinerary-form/catalog"
)

// ErrEmpty is returned when a catalog source yields no usable names.
var ErrEmpty = errors.New("location catalog is empty")

// Catalog is an immutable set of place names.
// Names are trimmed; blank entries are dropped and duplicates collapse to the
// first spelling seen.
type Catalog struct {
	names []string
	index map[string]struct{}
}

// file is the YAML shape of a catalog source.
type file struct {
	Locations []string `yaml:"locations"`
}

// New builds a Catalog from names in any order.
func New(names []string) *Catalog {
	c := &Catalog{index: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := c.index[n]; dup {
			continue
		}
		c.index[n] = struct{}{}
		c.names = append(c.names, n)
	}
	sort.Strings(c.names)
	return c
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("locations.Parse: %w", err)
	}
	c := New(f.Locations)
	if c.Len() == 0 {
		return nil, ErrEmpty
	}
	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	c, err := Parse(catalog.Locations)
	if err != nil {
		return nil, fmt.Errorf("locations.Default: %w", err)
	}
	return c, nil
}

// Load reads a YAML catalog from path. An empty path selects Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locations.Load: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("locations.Load %s: %w", path, err)
	}
	return c, nil
}

// Names returns the catalog sorted alphabetically.
// The slice is a copy; callers may modify it.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Contains reports whether name is in the catalog. Matching is exact.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Len returns the number of distinct names.
func (c *Catalog) Len() int {
	return len(c.names)
}
