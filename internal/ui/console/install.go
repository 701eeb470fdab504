package console

import (
	"errors"
	"fmt"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/gopak/pakman/internal/manager"
)

// Install installs one package and prints the outcome line.
func (c *ConsoleUI) Install(name, version string) error {
	p, err := c.m.Install(name, version)
	var se *manager.SaveError
	if err != nil && !errors.As(err, &se) {
		return err
	}
	c.success(fmt.Sprintf("Package '%s' version %s successfully installed", p.Name, p.Version))
	if !c.m.InCatalog(p.Name) {
		if sug := c.m.SuggestAvailable(p.Name); len(sug) > 0 {
			c.Hint(fmt.Sprintf("'%s' is not in the catalog and was recorded as a custom package; did you mean %s?", p.Name, quoteList(sug)))
		}
	}
	return err
}

// InstallInteractive offers every catalog package that is not installed yet.
func (c *ConsoleUI) InstallInteractive() error {
	labels := make([]string, 0)
	nameByLabel := map[string]string{}
	for _, e := range c.m.Available() {
		if e.Installed {
			continue
		}
		lbl := fmt.Sprintf("%s %s  %s", e.Name, e.Version, e.Description)
		labels = append(labels, lbl)
		nameByLabel[lbl] = e.Name
	}
	if len(labels) == 0 {
		c.println("Nothing to install")
		return nil
	}

	selected := make([]string, 0)
	ms := &survey.MultiSelect{Message: "Select packages to install", Options: labels, PageSize: 20}
	if err := survey.AskOne(ms, &selected); err != nil {
		return err
	}
	if len(selected) == 0 {
		c.println("Nothing selected")
		return nil
	}

	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: fmt.Sprintf("Install %d package(s)?", len(selected)), Default: true}, &ok); err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for _, l := range selected {
		if err := c.Install(nameByLabel[l], ""); err != nil {
			return err
		}
	}
	return nil
}

// PlanInstall prints what Install would do without changing anything.
func (c *ConsoleUI) PlanInstall(name, version string) {
	if version == "" {
		version = c.m.DefaultVersion()
	}
	if c.m.IsInstalled(name) {
		p, _ := c.m.Lookup(name)
		c.println(fmt.Sprintf("skip (already installed): %s %s", p.Name, p.Version))
		return
	}
	if c.m.InCatalog(name) {
		c.println(fmt.Sprintf("install: %s -> %s", name, version))
		return
	}
	c.println(fmt.Sprintf("install (custom): %s -> %s", name, version))
}

func quoteList(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = "'" + n + "'"
	}
	return strings.Join(q, " or ")
}
