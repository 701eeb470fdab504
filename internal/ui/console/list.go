package console

import (
	"fmt"
	"strings"

	"github.com/gopak/pakman/internal/catalog"
	"github.com/gopak/pakman/internal/manager"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const installedMarker = "[INSTALLED]"

func (c *ConsoleUI) RunList() error {
	pkgs := c.m.Installed()
	if len(pkgs) == 0 {
		c.println("No installed packages")
		return nil
	}
	c.println("Installed packages:")
	fmt.Fprint(c.out, renderInstalled(pkgs))
	return nil
}

func (c *ConsoleUI) RunAvailable() error {
	c.println("Available packages:")
	fmt.Fprint(c.out, renderEntries(c.m.Available()))
	return nil
}

func (c *ConsoleUI) RunSearch(query string) error {
	res := c.m.Search(query)
	if len(res) == 0 {
		c.println(fmt.Sprintf("No packages found for query '%s'", query))
		return nil
	}
	c.println(fmt.Sprintf("Found packages for query '%s':", query))
	fmt.Fprint(c.out, renderEntries(res))
	return nil
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	return tw
}

func renderInstalled(pkgs []catalog.Package) string {
	tw := newTable()
	tw.AppendHeader(table.Row{"Name", "Version", "Description"})
	for _, p := range pkgs {
		tw.AppendRow(table.Row{p.Name, p.Version, p.Description})
	}
	return tw.Render() + "\n"
}

func renderEntries(es []manager.Entry) string {
	var b strings.Builder
	tw := newTable()
	tw.AppendHeader(table.Row{"Name", "Version", "Description", "Status"})
	for _, e := range es {
		status := ""
		if e.Installed {
			status = text.FgGreen.Sprint(installedMarker)
		}
		tw.AppendRow(table.Row{e.Name, e.Version, e.Description, status})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
