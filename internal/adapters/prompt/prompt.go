// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var (
	_ ports.Confirmer = (*Terminal)(nil)
	_ ports.Confirmer = (*Fixed)(nil)
)

// Terminal implements ports.Confirmer by reading a single keystroke.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal creates a Terminal. Nil streams default to stdin and stdout.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{in: in, out: out}
}

// Confirm writes prompt and reads one byte. Only 'y' or 'Y' accept.
// When the input is a terminal it is put in raw mode for the read, so no Enter is needed.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	if _, err := io.WriteString(t.out, prompt); err != nil {
		return false, zerr.Wrap(err, "failed to write prompt")
	}

	var b [1]byte
	n, err := t.readKey(b[:])
	if err != nil && !errors.Is(err, io.EOF) {
		return false, zerr.Wrap(err, "failed to read answer")
	}
	if n == 0 {
		return false, nil
	}
	return b[0] == 'y' || b[0] == 'Y', nil
}

// readKey reads into b, in raw mode when the input is a terminal.
// Raw mode disables echo, so the key is echoed back followed by a newline.
func (t *Terminal) readKey(b []byte) (int, error) {
	f, ok := t.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return t.in.Read(b)
	}

	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return 0, zerr.Wrap(err, "failed to switch terminal to raw mode")
	}
	n, err := f.Read(b)
	_ = term.Restore(int(f.Fd()), state)

	if n > 0 && b[0] >= ' ' && b[0] < 0x7f {
		_, _ = t.out.Write(b[:1])
	}
	_, _ = io.WriteString(t.out, "\n")
	return n, err
}

// Fixed is a ports.Confirmer that gives the same answer to every prompt without reading input.
type Fixed struct {
	answer bool
	out    io.Writer
}

// Auto returns a Fixed confirmer. The prompt and the decision are still echoed to out,
// or to stdout when out is nil.
func Auto(answer bool, out io.Writer) *Fixed {
	if out == nil {
		out = os.Stdout
	}
	return &Fixed{answer: answer, out: out}
}

// Confirm writes prompt followed by the decision and reports it.
func (f *Fixed) Confirm(prompt string) (bool, error) {
	answer := "n"
	if f.answer {
		answer = "y"
	}
	if _, err := fmt.Fprintf(f.out, "%s%s\n", prompt, answer); err != nil {
		return false, zerr.Wrap(err, "failed to write prompt")
	}
	return f.answer, nil
}
