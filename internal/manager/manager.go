package manager

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gopak/pakman/internal/catalog"
	"github.com/gopak/pakman/internal/config"
	"github.com/gopak/pakman/internal/logging"
	"github.com/gopak/pakman/internal/store"
)

var (
	ErrEmptyName        = errors.New("please specify package name")
	ErrAlreadyInstalled = errors.New("already installed")
	ErrNotInstalled     = errors.New("not found among installed packages")
	ErrNotInCatalog     = errors.New("not found in the available catalog")
	ErrUpToDate         = errors.New("already up to date")
)

// SaveError reports a mutation that was applied in memory but could not be
// written to disk.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return "failed to save changes: " + e.Err.Error() }

func (e *SaveError) Unwrap() error { return e.Err }

type Options struct {
	DefaultVersion    string
	CustomDescription string
	Now               func() time.Time
}

// OptionsFromConfig maps the loaded configuration onto manager options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{DefaultVersion: cfg.DefaultVersion, CustomDescription: cfg.CustomDescription}
}

type Manager struct {
	store *store.Store
	opts  Options
}

func New(s *store.Store, opts Options) *Manager {
	if opts.DefaultVersion == "" {
		opts.DefaultVersion = config.DefaultVersion
	}
	if opts.CustomDescription == "" {
		opts.CustomDescription = config.DefaultCustomDescription
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{store: s, opts: opts}
}

// DefaultVersion is the version recorded when Install gets none.
func (m *Manager) DefaultVersion() string { return m.opts.DefaultVersion }

// Install records name as installed. The description comes from the catalog
// when the name is listed there; the version is the given one or the default.
func (m *Manager) Install(name, version string) (catalog.Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.Package{}, ErrEmptyName
	}
	if version == "" {
		version = m.opts.DefaultVersion
	}
	var pkg catalog.Package
	err := m.store.Update(func(db *store.Database) error {
		if db.Installed.Has(name) {
			return fmt.Errorf("package '%s' is %w", name, ErrAlreadyInstalled)
		}
		desc := m.opts.CustomDescription
		if av, ok := db.Available.Get(name); ok {
			desc = av.Description
		}
		pkg = catalog.Package{
			Name:        name,
			Version:     version,
			Description: desc,
			InstalledAt: m.opts.Now().UTC().Format(time.RFC3339),
		}
		db.Installed.Put(pkg)
		return nil
	})
	if err != nil {
		return catalog.Package{}, err
	}
	logging.Debug(fmt.Sprintf("install %s %s", name, version))
	return pkg, m.save()
}

// Remove deletes name from the installed catalog.
func (m *Manager) Remove(name string) (catalog.Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.Package{}, ErrEmptyName
	}
	var pkg catalog.Package
	err := m.store.Update(func(db *store.Database) error {
		p, ok := db.Installed.Delete(name)
		if !ok {
			return fmt.Errorf("package '%s' %w", name, ErrNotInstalled)
		}
		pkg = p
		return nil
	})
	if err != nil {
		return catalog.Package{}, err
	}
	logging.Debug(fmt.Sprintf("remove %s %s", pkg.Name, pkg.Version))
	return pkg, m.save()
}

// Lookup finds name among the installed packages, then in the catalog.
func (m *Manager) Lookup(name string) (catalog.Package, bool) {
	var (
		p  catalog.Package
		ok bool
	)
	m.store.View(func(db *store.Database) {
		if p, ok = db.Installed.Get(name); ok {
			return
		}
		p, ok = db.Available.Get(name)
	})
	return p, ok
}

func (m *Manager) IsInstalled(name string) bool {
	return m.store.Installed().Has(name)
}

// Installed returns the installed packages sorted by name.
func (m *Manager) Installed() []catalog.Package {
	return m.store.Installed().Sorted()
}

// Available returns the catalog sorted by name, flagging installed entries.
func (m *Manager) Available() []Entry {
	var out []Entry
	m.store.View(func(db *store.Database) {
		for _, p := range db.Available.Sorted() {
			out = append(out, Entry{Package: p, Installed: db.Installed.Has(p.Name)})
		}
	})
	return out
}

// InCatalog reports whether name is offered by the available catalog.
func (m *Manager) InCatalog(name string) bool {
	return m.store.Available().Has(name)
}

// Search matches query against names and descriptions of both catalogs.
// A name present in both is reported once, with the available record.
func (m *Manager) Search(query string) []Entry {
	var out []Entry
	m.store.View(func(db *store.Database) {
		seen := map[string]struct{}{}
		for _, p := range db.Available.Sorted() {
			if catalog.Matches(p, query) {
				seen[p.Name] = struct{}{}
				out = append(out, Entry{Package: p, Installed: db.Installed.Has(p.Name)})
			}
		}
		for _, p := range db.Installed.Sorted() {
			if _, dup := seen[p.Name]; dup {
				continue
			}
			if catalog.Matches(p, query) {
				out = append(out, Entry{Package: p, Installed: true})
			}
		}
	})
	sortEntries(out)
	logging.Debug(fmt.Sprintf("search %q: %d results", query, len(out)))
	return out
}

func (m *Manager) save() error {
	if err := m.store.Save(); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}
