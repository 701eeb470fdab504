package manager

import (
	"fmt"
	"strings"

	"github.com/gopak/pakman/internal/logging"
	"github.com/gopak/pakman/internal/store"
)

func upgradeNeeded(installed, available string) bool {
	if installed == "" || available == "" {
		return false
	}
	return CompareVersions(available, installed) > 0
}

func pending(db *store.Database) []Upgrade {
	var out []Upgrade
	for _, p := range db.Installed.Sorted() {
		av, ok := db.Available.Get(p.Name)
		if !ok {
			continue
		}
		if upgradeNeeded(p.Version, av.Version) {
			out = append(out, Upgrade{Name: p.Name, From: p.Version, To: av.Version})
		}
	}
	return out
}

// Outdated lists installed packages older than their catalog version.
func (m *Manager) Outdated() []Upgrade {
	var out []Upgrade
	m.store.View(func(db *store.Database) { out = pending(db) })
	return out
}

// Upgrade moves one installed package to its catalog version.
func (m *Manager) Upgrade(name string) (Upgrade, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Upgrade{}, ErrEmptyName
	}
	var up Upgrade
	err := m.store.Update(func(db *store.Database) error {
		p, ok := db.Installed.Get(name)
		if !ok {
			return fmt.Errorf("package '%s' %w", name, ErrNotInstalled)
		}
		av, ok := db.Available.Get(name)
		if !ok {
			return fmt.Errorf("package '%s' %w", name, ErrNotInCatalog)
		}
		if !upgradeNeeded(p.Version, av.Version) {
			return fmt.Errorf("package '%s' %s is %w", name, p.Version, ErrUpToDate)
		}
		up = Upgrade{Name: name, From: p.Version, To: av.Version}
		p.Version = av.Version
		db.Installed.Put(p)
		return nil
	})
	if err != nil {
		return Upgrade{}, err
	}
	logging.Debug(fmt.Sprintf("upgrade %s %s -> %s", up.Name, up.From, up.To))
	return up, m.save()
}

// UpgradeAll upgrades every outdated package and saves once.
func (m *Manager) UpgradeAll() ([]Upgrade, error) {
	var ups []Upgrade
	err := m.store.Update(func(db *store.Database) error {
		ups = pending(db)
		for _, u := range ups {
			p := db.Installed[u.Name]
			p.Version = u.To
			db.Installed.Put(p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(ups) == 0 {
		return nil, nil
	}
	logging.Debug(fmt.Sprintf("upgraded %d packages", len(ups)))
	return ups, m.save()
}
