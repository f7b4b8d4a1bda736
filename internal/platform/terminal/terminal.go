// Package terminal provides line-oriented console I/O and ANSI rendering
// for prompt-driven games.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Terminal reads lines from an input stream and writes text to an output stream.
// Output is written straight through so a prompt is visible before a read blocks.
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	err         error
}

// New creates a Terminal. Cursor control is only emitted when out is a TTY.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: isTerminal(out),
	}
}

// NewInteractive creates a Terminal that always emits cursor control sequences.
func NewInteractive(in io.Reader, out io.Writer) *Terminal {
	t := New(in, out)
	t.interactive = true
	return t
}

// Stdio returns a Terminal bound to the process's standard streams.
func Stdio() *Terminal {
	return New(os.Stdin, os.Stdout)
}

// Interactive reports whether cursor control sequences are emitted.
func (t *Terminal) Interactive() bool {
	return t.interactive
}

// ReadLine prints prompt and blocks until a full line is read.
// The returned text is trimmed of surrounding whitespace.
// End of input is reported as io.EOF even if a partial line was buffered.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.write(prompt)

	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// EraseLastLine moves the cursor to the start of the previous line and clears it.
// Does nothing when the output is not a terminal.
func (t *Terminal) EraseLastLine() {
	if !t.interactive {
		return
	}
	t.write(ansi.CursorPreviousLine(1) + ansi.EraseEntireLine)
}

// Println writes the operands followed by a newline.
func (t *Terminal) Println(a ...any) {
	t.write(fmt.Sprintln(a...))
}

// Printf writes formatted text.
func (t *Terminal) Printf(format string, a ...any) {
	t.write(fmt.Sprintf(format, a...))
}

// Err returns the first write error, if any.
func (t *Terminal) Err() error {
	return t.err
}

func (t *Terminal) write(s string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.out, s); err != nil {
		t.err = fmt.Errorf("write output: %w", err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
