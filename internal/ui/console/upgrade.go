package console

import (
	"errors"
	"fmt"

	"github.com/gopak/pakman/internal/manager"
	"github.com/jedib0t/go-pretty/v6/table"
)

func (c *ConsoleUI) RunOutdated() error {
	ups := c.m.Outdated()
	if len(ups) == 0 {
		c.println("All installed packages are up to date")
		return nil
	}
	c.println("Outdated packages:")
	fmt.Fprint(c.out, renderUpgrades(ups))
	return nil
}

// Upgrade upgrades name, or every outdated package when name is empty.
func (c *ConsoleUI) Upgrade(name string) error {
	var se *manager.SaveError
	if name != "" {
		up, err := c.m.Upgrade(name)
		if err != nil && !errors.As(err, &se) {
			return err
		}
		c.success(fmt.Sprintf("Package '%s' upgraded %s -> %s", up.Name, up.From, up.To))
		return err
	}
	ups, err := c.m.UpgradeAll()
	if err != nil && !errors.As(err, &se) {
		return err
	}
	if len(ups) == 0 {
		c.println("Nothing to upgrade")
		return nil
	}
	for _, up := range ups {
		c.success(fmt.Sprintf("Package '%s' upgraded %s -> %s", up.Name, up.From, up.To))
	}
	return err
}

// PlanUpgrade prints what Upgrade would do without changing anything.
func (c *ConsoleUI) PlanUpgrade(name string) {
	ups := c.m.Outdated()
	found := false
	for _, up := range ups {
		if name != "" && up.Name != name {
			continue
		}
		found = true
		c.println(fmt.Sprintf("upgrade: %s %s -> %s", up.Name, up.From, up.To))
	}
	if !found {
		c.println("Nothing to upgrade")
	}
}

func renderUpgrades(ups []manager.Upgrade) string {
	tw := newTable()
	tw.AppendHeader(table.Row{"Name", "Installed", "Available"})
	for _, up := range ups {
		tw.AppendRow(table.Row{up.Name, up.From, colorGreen(up.To)})
	}
	return tw.Render() + "\n"
}
