package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"
)

var (
	mu      sync.Mutex
	logger  = zap.NewNop()
	verbose bool
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr
)

// Init routes the structured log to path. An empty path keeps file logging off.
func Init(path string, debug bool) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// SetLogger replaces the structured logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output; nil restores the process streams.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
}

// L returns the structured logger.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func writeLine(toErr bool, msg string) {
	mu.Lock()
	defer mu.Unlock()
	w := stdout
	if toErr {
		w = stderr
	}
	_, _ = fmt.Fprintln(w, msg)
}

func Info(msg string) {
	writeLine(false, msg)
	L().Info(msg)
}

func Success(msg string) {
	writeLine(false, text.FgGreen.Sprint(msg))
	L().Info(msg)
}

func Warn(msg string) {
	writeLine(false, text.FgYellow.Sprint(msg))
	L().Warn(msg)
}

func Error(msg string) {
	writeLine(true, text.FgRed.Sprint(msg))
	L().Error(msg)
}

func Gray(msg string) {
	writeLine(false, text.FgHiBlack.Sprint(msg))
	L().Info(msg)
}

// SetVerbose toggles verbose output to stdout.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Debug prints only when verbose mode is enabled; the file log always receives it.
func Debug(msg string) {
	mu.Lock()
	v := verbose
	mu.Unlock()
	if v {
		writeLine(false, text.FgHiBlack.Sprint(msg))
	}
	L().Debug(msg)
}
