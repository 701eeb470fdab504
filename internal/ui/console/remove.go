package console

import (
	"errors"
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/gopak/pakman/internal/manager"
)

// Remove removes one package and prints the outcome line.
func (c *ConsoleUI) Remove(name string) error {
	p, err := c.m.Remove(name)
	var se *manager.SaveError
	if err != nil && !errors.As(err, &se) {
		return err
	}
	c.success(fmt.Sprintf("Package '%s' version %s successfully removed", p.Name, p.Version))
	return err
}

// HintRemove prints close matches among the installed packages after a
// failed remove.
func (c *ConsoleUI) HintRemove(name string, err error) {
	if !errors.Is(err, manager.ErrNotInstalled) {
		return
	}
	if sug := c.m.SuggestInstalled(name); len(sug) > 0 {
		c.Hint(fmt.Sprintf("Did you mean %s?", quoteList(sug)))
	}
}

// RunRemoveImperative asks for confirmation unless yes is set.
func (c *ConsoleUI) RunRemoveImperative(name string, yes bool) error {
	if !yes {
		ok := false
		if err := survey.AskOne(&survey.Confirm{Message: messageRemoveConfirm(name), Default: true}, &ok); err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return c.Remove(name)
}

func messageRemoveConfirm(name string) string { return fmt.Sprintf("Remove %s?", name) }
