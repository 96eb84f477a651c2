// Package prompt implements the interactive terminal primitives: validated
// scalar input, yes/no confirmation, list input and numbered selection.
//
// Every prompt loops until the user supplies an acceptable answer. Invalid
// answers are reported on the terminal and asked again; only cancellation,
// construction mistakes and a closed input stream are returned as errors.
package prompt

import (
	"io"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/pkg/errors"
)

// Console runs prompts against a line-oriented terminal.
type Console struct {
	term   ux.Terminal
	logger ux.Logger
	styles ux.Styles
}

type Option func(*Console)

func WithLogger(logger ux.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

func WithStyles(styles ux.Styles) Option {
	return func(c *Console) {
		c.styles = styles
	}
}

func NewConsole(term ux.Terminal, opts ...Option) *Console {
	c := &Console{
		term:   term,
		logger: ux.NewNopLogger(),
		styles: ux.DefaultStyles(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Terminal exposes the underlying terminal for callers that print around prompts.
func (c *Console) Terminal() ux.Terminal {
	return c.term
}

func (c *Console) Println(text string) {
	c.term.Println(text)
}

// Header prints a single styled line.
func (c *Console) Header(text string) {
	c.term.Println(c.styles.Header.Render(text))
}

func (c *Console) printError(text string) {
	c.term.Println(c.styles.Error.Render(text))
}

func (c *Console) printWarning(text string) {
	c.term.Println(c.styles.Warning.Render(text))
}

func (c *Console) readLine(promptText string) (string, error) {
	c.term.Print(promptText)
	line, err := c.term.ReadLine()
	if err != nil {
		if err == io.EOF {
			return "", ErrInputClosed
		}
		return "", errors.Wrap(err, "failed to read input")
	}
	return line, nil
}

// Decorate indents every line of msg by padding spaces and marks the first
// line with decorator. An empty decorator only indents.
func Decorate(msg string, padding int, decorator string) string {
	pad := strings.Repeat(" ", padding)
	lines := strings.Split(msg, "\n")
	for i, ln := range lines {
		switch {
		case decorator == "":
			lines[i] = pad + ln
		case i == 0:
			lines[i] = pad + decorator + " " + ln
		default:
			lines[i] = pad + strings.Repeat(" ", len(decorator)) + " " + ln
		}
	}
	return strings.Join(lines, "\n")
}
