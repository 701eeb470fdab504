package manager

import (
	"sort"

	"github.com/gopak/pakman/internal/catalog"
)

// Entry is a catalog record annotated with its install status.
type Entry struct {
	catalog.Package
	Installed bool
}

// Upgrade describes an installed package that is behind the catalog.
type Upgrade struct {
	Name string
	From string
	To   string
}

func sortEntries(es []Entry) {
	sort.Slice(es, func(i, j int) bool { return es[i].Name < es[j].Name })
}
