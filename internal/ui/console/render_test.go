package console

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopak/pakman/internal/catalog"
	"github.com/gopak/pakman/internal/manager"
	"github.com/gopak/pakman/internal/store"
)

func newTestUI(t *testing.T) (*ConsoleUI, *bytes.Buffer) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "packages.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	var out bytes.Buffer
	return NewConsoleUI(manager.New(s, manager.Options{})).WithOutput(&out), &out
}

func TestRenderEntries_MarksInstalled(t *testing.T) {
	es := []manager.Entry{
		{Package: catalog.Package{Name: "fish", Version: "3.0.0", Description: "shell"}},
		{Package: catalog.Package{Name: "nano", Version: "2.0.0", Description: "editor"}, Installed: true},
	}
	out := renderEntries(es)
	lines := strings.Split(out, "\n")
	var fish, nano string
	for _, l := range lines {
		if strings.Contains(l, "fish") {
			fish = l
		}
		if strings.Contains(l, "nano") {
			nano = l
		}
	}
	if fish == "" || nano == "" {
		t.Fatalf("rows not rendered: %q", out)
	}
	if strings.Contains(fish, installedMarker) {
		t.Fatalf("fish is not installed: %q", fish)
	}
	if !strings.Contains(nano, installedMarker) {
		t.Fatalf("nano should be marked installed: %q", nano)
	}
	if !strings.Contains(out, "Description") {
		t.Fatalf("header missing: %q", out)
	}
}

func TestRenderUpgrades(t *testing.T) {
	out := renderUpgrades([]manager.Upgrade{{Name: "go", From: "1.25.4", To: "1.26.0"}})
	if !strings.Contains(out, "go") || !strings.Contains(out, "1.25.4") || !strings.Contains(out, "1.26.0") {
		t.Fatalf("upgrade row missing: %q", out)
	}
}

func TestRunList(t *testing.T) {
	ui, out := newTestUI(t)
	if err := ui.RunList(); err != nil {
		t.Fatalf("RunList: %v", err)
	}
	if !strings.Contains(out.String(), "No installed packages") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	out.Reset()
	if err := ui.Install("vim", "9.1"); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if !strings.Contains(out.String(), "Package 'vim' version 9.1 successfully installed") {
		t.Fatalf("unexpected install output: %q", out.String())
	}

	out.Reset()
	ui.RunList()
	if !strings.Contains(out.String(), "Installed packages:") || !strings.Contains(out.String(), "Vi IMproved text editor") {
		t.Fatalf("unexpected list output: %q", out.String())
	}
	if !strings.Contains(out.String(), "│ Name") || !strings.Contains(out.String(), "Description") {
		t.Fatalf("header not in title case: %q", out.String())
	}

	out.Reset()
	ui.RunAvailable()
	if !strings.Contains(out.String(), "Status") || strings.Contains(out.String(), "STATUS") {
		t.Fatalf("unexpected available header: %q", out.String())
	}
}

func TestRunSearch(t *testing.T) {
	ui, out := newTestUI(t)
	ui.RunSearch("zzz")
	if !strings.Contains(out.String(), "No packages found for query 'zzz'") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	out.Reset()
	ui.RunSearch("database")
	s := out.String()
	if !strings.Contains(s, "Found packages for query 'database':") {
		t.Fatalf("unexpected output: %q", s)
	}
	for _, n := range []string{"mysql", "postgresql", "mongodb"} {
		if !strings.Contains(s, n) {
			t.Fatalf("%s missing from %q", n, s)
		}
	}
}

func TestInstall_CustomHint(t *testing.T) {
	ui, out := newTestUI(t)
	if err := ui.Install("firefx", ""); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if !strings.Contains(out.String(), "did you mean 'firefox'?") {
		t.Fatalf("expected catalog hint: %q", out.String())
	}
}

func TestInstall_ShortCustomNameNoHint(t *testing.T) {
	ui, out := newTestUI(t)
	if err := ui.Install("b", ""); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if strings.Contains(out.String(), "did you mean") {
		t.Fatalf("unexpected hint for a one letter name: %q", out.String())
	}
}

func TestRemove_HintAndError(t *testing.T) {
	ui, out := newTestUI(t)
	ui.Install("firefox", "")
	out.Reset()

	err := ui.Remove("firefx")
	if !errors.Is(err, manager.ErrNotInstalled) {
		t.Fatalf("expected ErrNotInstalled, got %v", err)
	}
	ui.HintRemove("firefx", err)
	if !strings.Contains(out.String(), "Did you mean 'firefox'?") {
		t.Fatalf("expected hint: %q", out.String())
	}

	out.Reset()
	if err := ui.RunRemoveImperative("firefox", true); err != nil {
		t.Fatalf("RunRemoveImperative: %v", err)
	}
	if !strings.Contains(out.String(), "Package 'firefox' version 0.1.0 successfully removed") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestReport_SaveErrorIsWarning(t *testing.T) {
	ui, out := newTestUI(t)
	ui.Report(&manager.SaveError{Err: os.ErrPermission})
	if !strings.Contains(out.String(), "Warning: failed to save changes") {
		t.Fatalf("expected warning: %q", out.String())
	}
	out.Reset()
	ui.Report(manager.ErrEmptyName)
	if !strings.Contains(out.String(), "Error: please specify package name") {
		t.Fatalf("expected error: %q", out.String())
	}
}

func TestUpgradeAndPlan(t *testing.T) {
	ui, out := newTestUI(t)
	ui.Install("git", "")
	out.Reset()

	ui.PlanUpgrade("")
	if !strings.Contains(out.String(), "upgrade: git 0.1.0 -> 2.42.0") {
		t.Fatalf("unexpected plan: %q", out.String())
	}
	out.Reset()
	if err := ui.Upgrade(""); err != nil {
		t.Fatalf("Upgrade: %v", err)
	}
	if !strings.Contains(out.String(), "Package 'git' upgraded 0.1.0 -> 2.42.0") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	out.Reset()
	ui.RunOutdated()
	if !strings.Contains(out.String(), "All installed packages are up to date") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestPlanInstall(t *testing.T) {
	ui, out := newTestUI(t)
	ui.Install("curl", "")
	out.Reset()
	ui.PlanInstall("curl", "")
	ui.PlanInstall("nginx", "")
	ui.PlanInstall("mytool", "2.0")
	s := out.String()
	for _, want := range []string{
		"skip (already installed): curl 0.1.0",
		"install: nginx -> 0.1.0",
		"install (custom): mytool -> 2.0",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in %q", want, s)
		}
	}
}
