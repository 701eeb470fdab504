package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopak/pakman/internal/catalog"
)

func TestOpen_InitializesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(s.Installed()) != 0 {
		t.Fatalf("fresh database should have nothing installed")
	}
	if !s.Available().Has("firefox") || !s.Available().Has("python") {
		t.Fatalf("default catalog not loaded")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("database not written: %v", err)
	}
	var raw map[string]map[string]catalog.Package
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("written database is not JSON: %v", err)
	}
	if _, ok := raw["installed"]; !ok {
		t.Fatalf("installed key missing: %s", data)
	}
	if raw["available"]["git"].Version != "2.42.0" {
		t.Fatalf("unexpected git record: %+v", raw["available"]["git"])
	}
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "packages.json")
	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	err = s1.Update(func(db *Database) error {
		db.Installed.Put(catalog.Package{Name: "persist-pkg", Version: "2.0.0", Description: "Custom package"})
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := s1.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("Open (reload): %v", err)
	}
	got, ok := s2.Installed().Get("persist-pkg")
	if !ok {
		t.Fatal("installed package not found after reload")
	}
	if got.Version != "2.0.0" {
		t.Errorf("Version = %q, want %q", got.Version, "2.0.0")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind")
	}
}

func TestOpen_RepopulatesEmptyAvailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	doc := `{"installed": {"vim": {"name": "vim", "version": "9.0", "description": "editor"}}, "available": {}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(s.Available()) != 20 {
		t.Fatalf("available not repopulated: %d", len(s.Available()))
	}
	if !s.Installed().Has("vim") {
		t.Fatalf("installed entries lost")
	}
}

func TestOpen_MissingInstalledKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	if err := os.WriteFile(path, []byte(`{"available": null}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Installed() == nil {
		t.Fatalf("installed should be an empty catalog")
	}
	err = s.Update(func(db *Database) error {
		db.Installed.Put(catalog.Package{Name: "x", Version: "1"})
		return nil
	})
	if err != nil {
		t.Fatalf("Update on loaded nil map: %v", err)
	}
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatalf("expected parse error")
	}
	b, _ := os.ReadFile(path)
	if string(b) != "{not json" {
		t.Fatalf("corrupt file must not be overwritten")
	}
}

func TestOpen_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	doc := `{"installed": {"vim": {"name": "vim", "version": 9}}, "available": {}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Open(path)
	if err == nil {
		t.Fatalf("expected schema error")
	}
}

func TestOpen_ReadErrorSurfaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	_, err := Open(path)
	if err == nil || !strings.Contains(err.Error(), "reading database") {
		t.Fatalf("expected read error, got %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		t.Fatalf("path must be left as it was: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("defaults must not be written")
	}
}

func TestOpen_KeyNameMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	doc := `{"installed": {"a": {"name": "b", "version": "1.0", "description": "x"}}, "available": {}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Open(path)
	if err == nil || !strings.Contains(err.Error(), `key "a" holds package "b"`) {
		t.Fatalf("expected key mismatch error, got %v", err)
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	if _, err := Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := ValidateFile(path); err != nil {
		t.Fatalf("freshly written database should validate: %v", err)
	}
	if err := ValidateFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestInstalledReturnsCopy(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "packages.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c := s.Installed()
	c.Put(catalog.Package{Name: "leak"})
	if s.Installed().Has("leak") {
		t.Fatalf("Installed must return a copy")
	}
}
