package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gopak/pakman/internal/logging"
	"github.com/gopak/pakman/internal/manager"
	"github.com/jedib0t/go-pretty/v6/text"
)

type ConsoleUI struct {
	m   *manager.Manager
	out io.Writer
}

func NewConsoleUI(m *manager.Manager) *ConsoleUI {
	return &ConsoleUI{m: m, out: os.Stdout}
}

// WithOutput returns a copy of the UI writing to w.
func (c *ConsoleUI) WithOutput(w io.Writer) *ConsoleUI {
	return &ConsoleUI{m: c.m, out: w}
}

func (c *ConsoleUI) Manager() *manager.Manager { return c.m }

func (c *ConsoleUI) println(a ...any) { _, _ = fmt.Fprintln(c.out, a...) }

func (c *ConsoleUI) success(msg string) {
	c.println(colorGreen("✓ " + msg))
	logging.L().Info(msg)
}

// Warn prints a non fatal problem.
func (c *ConsoleUI) Warn(msg string) {
	c.println(colorYellow("Warning: " + msg))
	logging.L().Warn(msg)
}

// Error prints err the way the shell reports failed commands.
func (c *ConsoleUI) Error(err error) {
	c.println(colorRed("Error: " + err.Error()))
	logging.L().Error(err.Error())
}

// Hint prints a secondary line, e.g. a suggestion.
func (c *ConsoleUI) Hint(msg string) { c.println(colorGray(msg)) }

// Report prints the outcome of a mutating command. A failed save is only a
// warning because the change is still applied for the rest of the session.
func (c *ConsoleUI) Report(err error) {
	if err == nil {
		return
	}
	var se *manager.SaveError
	if errors.As(err, &se) {
		c.Warn(se.Error())
		return
	}
	c.Error(err)
}

func colorGreen(s string) string  { return text.FgGreen.Sprint(s) }
func colorRed(s string) string    { return text.FgRed.Sprint(s) }
func colorYellow(s string) string { return text.FgYellow.Sprint(s) }
func colorGray(s string) string   { return text.FgHiBlack.Sprint(s) }
