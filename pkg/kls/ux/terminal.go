package ux

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdTerminal implements Terminal over a reader/writer pair
type StdTerminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdTerminal returns a Terminal reading stdin and prompting on stderr, so
// stdout only carries results
func NewStdTerminal() Terminal {
	return NewTerminal(os.Stdin, os.Stderr)
}

func NewTerminal(r io.Reader, w io.Writer) *StdTerminal {
	return &StdTerminal{in: bufio.NewReader(r), out: w}
}

func (t *StdTerminal) Print(text string) {
	_, _ = fmt.Fprint(t.out, text)
}

func (t *StdTerminal) Println(text string) {
	_, _ = fmt.Fprintln(t.out, text)
}

// ReadLine returns io.EOF only when no further characters are available;
// a final unterminated line is returned as-is.
func (t *StdTerminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
