package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gopak/pakman/internal/assets"
	"github.com/gopak/pakman/internal/catalog"
	"github.com/gopak/pakman/internal/logging"
	"github.com/xeipuuv/gojsonschema"
)

// Database is the whole persisted document.
type Database struct {
	Installed catalog.Catalog `json:"installed"`
	Available catalog.Catalog `json:"available"`
}

type Store struct {
	path string
	db   Database
	mu   sync.RWMutex
}

// Open loads the database at path. A missing file is initialized with the
// default catalog and written immediately.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		available, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		s.db = Database{Installed: catalog.Catalog{}, Available: available}
		logging.Debug("initializing package database at " + path)
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading database %s: %w", path, err)
	}
	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("parsing database %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.db); err != nil {
		return nil, fmt.Errorf("parsing database %s: %w", path, err)
	}
	if err := checkKeys("installed", s.db.Installed); err != nil {
		return nil, fmt.Errorf("parsing database %s: %w", path, err)
	}
	if err := checkKeys("available", s.db.Available); err != nil {
		return nil, fmt.Errorf("parsing database %s: %w", path, err)
	}
	if s.db.Installed == nil {
		s.db.Installed = catalog.Catalog{}
	}
	if len(s.db.Available) == 0 {
		available, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		s.db.Available = available
	}
	logging.Debug(fmt.Sprintf("loaded %s: %d installed, %d available", path, len(s.db.Installed), len(s.db.Available)))
	return s, nil
}

func (s *Store) Path() string { return s.path }

// Save writes the database atomically through a temp file in the same directory.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.db, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshaling database: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp database: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming temp database: %w", err)
	}
	return nil
}

// Installed returns a copy of the installed catalog.
func (s *Store) Installed() catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Installed.Clone()
}

// Available returns a copy of the available catalog.
func (s *Store) Available() catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Available.Clone()
}

// View runs fn with read access to the database. fn must not retain the maps.
func (s *Store) View(fn func(db *Database)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.db)
}

// Update runs fn with write access to the database. Nothing is saved.
func (s *Store) Update(fn func(db *Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.db)
}

// checkKeys rejects records filed under a key other than their own name.
func checkKeys(section string, c catalog.Catalog) error {
	for _, key := range c.Names() {
		if name := c[key].Name; name != key {
			return fmt.Errorf("%s: key %q holds package %q", section, key, name)
		}
	}
	return nil
}

// Validate checks a serialized database against the embedded JSON Schema.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(assets.DatabaseSchema)
	docLoader := gojsonschema.NewBytesLoader(data)
	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New("schema validation failed: " + strings.Join(msgs, "; "))
}

// ValidateFile reads and validates the database file at path.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Validate(data)
}
