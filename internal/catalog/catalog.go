package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gopak/pakman/internal/assets"
	"gopkg.in/yaml.v3"
)

type Package struct {
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description" json:"description"`
	InstalledAt string `yaml:"installed_at,omitempty" json:"installed_at,omitempty"`
}

// Catalog maps package names to records.
type Catalog map[string]Package

type defaultsFile struct {
	Packages []Package `yaml:"packages"`
}

// Default returns a fresh copy of the catalog shipped with the binary.
func Default() (Catalog, error) {
	return Parse(assets.DefaultCatalog)
}

// Parse reads a catalog YAML document with a top level `packages` list.
func Parse(b []byte) (Catalog, error) {
	var f defaultsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	c := make(Catalog, len(f.Packages))
	for _, p := range f.Packages {
		if p.Name == "" {
			return nil, fmt.Errorf("parsing catalog: package without name")
		}
		if _, ok := c[p.Name]; ok {
			return nil, fmt.Errorf("duplicate package name: %s", p.Name)
		}
		c[p.Name] = p
	}
	return c, nil
}

func (c Catalog) Get(name string) (Package, bool) {
	p, ok := c[name]
	return p, ok
}

func (c Catalog) Has(name string) bool {
	_, ok := c[name]
	return ok
}

func (c Catalog) Put(p Package) { c[p.Name] = p }

func (c Catalog) Delete(name string) (Package, bool) {
	p, ok := c[name]
	if ok {
		delete(c, name)
	}
	return p, ok
}

// Clone returns a shallow copy; Package is a value type so this is a full copy.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Sorted returns the records ordered by name.
func (c Catalog) Sorted() []Package {
	out := make([]Package, 0, len(c))
	for _, p := range c {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Matches reports whether query is a case-insensitive substring of the name or description.
func Matches(p Package, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
