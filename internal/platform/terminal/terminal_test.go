package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReadLineTrims(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader("  #a1b2c3 \r\nnext\n"), &out)

	line, err := term.ReadLine("type color:")
	if err != nil {
		t.Fatalf("ReadLine() failed: %v", err)
	}
	if line != "#a1b2c3" {
		t.Errorf("ReadLine() = %q, expected %q", line, "#a1b2c3")
	}
	if out.String() != "type color:" {
		t.Errorf("prompt output = %q, expected %q", out.String(), "type color:")
	}

	line, err = term.ReadLine("> ")
	if err != nil {
		t.Fatalf("second ReadLine() failed: %v", err)
	}
	if line != "next" {
		t.Errorf("second ReadLine() = %q, expected %q", line, "next")
	}
}

func TestReadLineEOF(t *testing.T) {
	// A partial line without a newline is still end of input
	term := New(strings.NewReader("abc"), io.Discard)

	if _, err := term.ReadLine(""); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() error = %v, expected io.EOF", err)
	}
	if _, err := term.ReadLine(""); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() on drained input error = %v, expected io.EOF", err)
	}
}

func TestReadLineError(t *testing.T) {
	term := New(failingReader{}, io.Discard)

	_, err := term.ReadLine("")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, io.EOF) {
		t.Errorf("read failure reported as EOF: %v", err)
	}
	if !strings.Contains(err.Error(), "device gone") {
		t.Errorf("error %q does not carry cause", err)
	}
}

func TestEraseLastLine(t *testing.T) {
	var out bytes.Buffer

	// Buffers are not terminals: nothing is written
	plain := New(strings.NewReader(""), &out)
	if plain.Interactive() {
		t.Fatal("bytes.Buffer reported as interactive")
	}
	plain.EraseLastLine()
	if out.Len() != 0 {
		t.Errorf("non-interactive erase wrote %q", out.String())
	}

	tty := NewInteractive(strings.NewReader(""), &out)
	tty.EraseLastLine()
	want := ansi.CursorPreviousLine(1) + ansi.EraseEntireLine
	if out.String() != want {
		t.Errorf("erase wrote %q, expected %q", out.String(), want)
	}
	if want != "\x1b[F\x1b[2K" {
		t.Errorf("erase sequence = %q, expected cursor-previous-line + erase-line", want)
	}
}

func TestWriteErrorIsSticky(t *testing.T) {
	term := New(strings.NewReader(""), failingWriter{})

	term.Println("hello")
	term.Printf("%d\n", 42)

	if term.Err() == nil {
		t.Fatal("Err() = nil after failed write")
	}
	if !strings.Contains(term.Err().Error(), "broken pipe") {
		t.Errorf("Err() = %v, expected broken pipe cause", term.Err())
	}
}
