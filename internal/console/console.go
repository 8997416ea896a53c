// Package console connects actions to the terminal: output lines go to
// stdout, diagnostics go to a leveled logger on stderr, and prompts read
// lines from stdin.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Options configures a Console. Nil streams default to the process streams.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Level is the minimum diagnostic level written to Stderr.
	Level log.Level
}

// Console implements the action logger and prompter.
type Console struct {
	out         io.Writer
	in          *bufio.Reader
	logger      *log.Logger
	showPrompts bool
	exit        func(int)
}

// New returns a console for the given streams.
func New(opts Options) *Console {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	logger := log.NewWithOptions(opts.Stderr, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "todo",
	})

	return &Console{
		out:         opts.Stdout,
		in:          bufio.NewReader(opts.Stdin),
		logger:      logger,
		showPrompts: isTerminal(opts.Stdin),
		exit:        os.Exit,
	}
}

// ParseLevel converts a level name such as "warn" to a log level.
func ParseLevel(value string) (log.Level, error) {
	level, err := log.ParseLevel(value)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("invalid log level %q: %w", value, err)
	}
	return level, nil
}

// Println writes one line of command output.
func (c *Console) Println(line string) {
	fmt.Fprintln(c.out, line)
}

// Warn reports a non-fatal problem.
func (c *Console) Warn(msg interface{}, keyvals ...interface{}) {
	c.logger.Warn(msg, keyvals...)
}

// Debug reports a debugging detail.
func (c *Console) Debug(msg interface{}, keyvals ...interface{}) {
	c.logger.Debug(msg, keyvals...)
}

// Prompt reads one line from stdin, including its terminator.
// At end of input it returns whatever was read. Any other read error is
// unrecoverable and exits the process.
func (c *Console) Prompt(label string) string {
	if c.showPrompts {
		fmt.Fprintf(c.out, "%s: ", label)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		c.logger.Error("read input", "prompt", label, "err", err)
		c.exit(1)
	}
	return line
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
