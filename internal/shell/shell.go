// Package shell implements the interactive pakman prompt.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gopak/pakman/internal/logging"
	"github.com/gopak/pakman/internal/manager"
	"github.com/gopak/pakman/internal/ui/console"
	"github.com/kballard/go-shellquote"
)

const Prompt = "pakman> "

var errMissingQuery = errors.New("please specify search query")

type command struct {
	name    string
	usage   string
	summary string
	run     func(s *Shell, args []string) outcome
}

type outcome int

const (
	done outcome = iota
	// usage errors skip the blank separator line
	bare
	stop
)

var commands []command

func init() {
	commands = []command{
		{"install", "install <name> [version]", "Install package", (*Shell).install},
		{"remove", "remove <name>", "Remove package", (*Shell).remove},
		{"list", "list", "Show installed packages", (*Shell).list},
		{"available", "available", "Show available packages", (*Shell).available},
		{"search", "search <query>", "Search packages", (*Shell).search},
		{"outdated", "outdated", "Show packages behind the catalog", (*Shell).outdated},
		{"upgrade", "upgrade [name]", "Upgrade one or all outdated packages", (*Shell).upgrade},
		{"help", "help", "Show this help", (*Shell).help},
		{"exit", "exit", "Exit the program", (*Shell).exit},
	}
}

type Shell struct {
	ui  *console.ConsoleUI
	in  *bufio.Reader
	out io.Writer
}

func New(m *manager.Manager, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		ui:  console.NewConsoleUI(m).WithOutput(out),
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run prints the banner and evaluates lines until exit, end of input or ctx
// cancellation.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to pakman!")
	fmt.Fprintln(s.out, "Type 'help' for help")
	fmt.Fprintln(s.out)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(s.out, Prompt)
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		if strings.TrimSpace(line) != "" {
			if !s.Eval(line) {
				return nil
			}
		}
		if eof {
			fmt.Fprintln(s.out)
			return nil
		}
	}
}

// Eval runs one input line. It returns false when the shell should stop.
func (s *Shell) Eval(line string) bool {
	args := tokenize(line)
	if len(args) == 0 {
		return true
	}
	logging.L().Debug("shell command: " + strings.Join(args, " "))
	name := args[0]
	for _, c := range commands {
		if c.name == name || (name == "quit" && c.name == "exit") {
			switch c.run(s, args[1:]) {
			case stop:
				return false
			case done:
				fmt.Fprintln(s.out)
			}
			return true
		}
	}
	fmt.Fprintf(s.out, "Unknown command: '%s'\n", name)
	if sug := manager.Suggest(name, commandNames()); len(sug) > 0 {
		s.ui.Hint(fmt.Sprintf("Did you mean '%s'?", sug[0]))
	}
	fmt.Fprintln(s.out, "Type 'help' for help")
	fmt.Fprintln(s.out)
	return true
}

// tokenize splits like a POSIX shell and falls back to plain whitespace
// splitting when quotes are unbalanced.
func tokenize(line string) []string {
	args, err := shellquote.Split(line)
	if err != nil {
		return strings.Fields(line)
	}
	return args
}

func commandNames() []string {
	out := make([]string, 0, len(commands))
	for _, c := range commands {
		out = append(out, c.name)
	}
	return out
}

func (s *Shell) install(args []string) outcome {
	if len(args) < 1 {
		s.ui.Error(manager.ErrEmptyName)
		return bare
	}
	version := ""
	if len(args) > 1 {
		version = args[1]
	}
	s.ui.Report(s.ui.Install(args[0], version))
	return done
}

func (s *Shell) remove(args []string) outcome {
	if len(args) < 1 {
		s.ui.Error(manager.ErrEmptyName)
		return bare
	}
	err := s.ui.Remove(args[0])
	s.ui.Report(err)
	s.ui.HintRemove(args[0], err)
	return done
}

func (s *Shell) list([]string) outcome {
	s.ui.Report(s.ui.RunList())
	return done
}

func (s *Shell) available([]string) outcome {
	s.ui.Report(s.ui.RunAvailable())
	return done
}

func (s *Shell) search(args []string) outcome {
	if len(args) < 1 {
		s.ui.Error(errMissingQuery)
		return bare
	}
	s.ui.Report(s.ui.RunSearch(strings.Join(args, " ")))
	return done
}

func (s *Shell) outdated([]string) outcome {
	s.ui.Report(s.ui.RunOutdated())
	return done
}

func (s *Shell) upgrade(args []string) outcome {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	s.ui.Report(s.ui.Upgrade(name))
	return done
}

func (s *Shell) help([]string) outcome {
	fmt.Fprintln(s.out, "pakman, a toy package manager")
	fmt.Fprintln(s.out, "Usage:")
	for _, c := range commands {
		fmt.Fprintf(s.out, "  %-28s - %s\n", c.usage, c.summary)
	}
	return done
}

func (s *Shell) exit([]string) outcome {
	fmt.Fprintln(s.out, "Goodbye!")
	return stop
}
