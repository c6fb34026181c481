// Package argvio is the process binding used by argv: it supplies the
// argument vector, the output streams and process termination, and decides
// whether output may be colored.
package argvio

import (
	stdio "io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

// IOManager centralizes the process-facing side of a command: arguments,
// output streams, exit and color capability.
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	args    []string
	hasArgs bool
	exit    func(int)

	forceColor bool
	noColor    bool
}

// New returns a manager bound to the process stdio, os.Args and os.Exit.
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr, exit: os.Exit}
}

// WithOut sets the standard output writer.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// WithArgs replaces the process arguments returned by Args.
func (m *IOManager) WithArgs(args ...string) *IOManager {
	m.args = args
	m.hasArgs = true
	return m
}

// WithExit replaces the function called by Exit (os.Exit by default).
func (m *IOManager) WithExit(fn func(int)) *IOManager { m.exit = fn; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses the environment and the terminal to decide.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// Out returns the standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// Args returns the arguments to parse: os.Args without the program path,
// unless replaced with WithArgs.
func (m *IOManager) Args() []string {
	if m.hasArgs {
		return m.args
	}
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// Exit terminates through the configured exit function.
func (m *IOManager) Exit(code int) {
	exit := m.exit
	if exit == nil {
		exit = os.Exit
	}
	exit(code)
}

// IsTTY reports whether the output writer is a terminal.
func (m *IOManager) IsTTY() bool { return isTerminal(m.out) }

func isTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminalFn(int(f.Fd()))
}

// SupportsColor reports whether ANSI styling should be emitted.
// NoColor and $NO_COLOR win over ForceColor and $FORCE_COLOR; otherwise
// color is used on terminals whose $TERM is not "dumb".
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// Style renders s with the given attributes when color is supported.
func (m *IOManager) Style(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if m.SupportsColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
