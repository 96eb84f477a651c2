package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/go-go-golems/klsframe/pkg/kls/validate"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_RejectsEmptyWhenDisallowed(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("", "hello")
	got, err := c.Input(InputOptions{Prompt: ">> x = "})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Contains(t, out.String(), "Error. Invalid input (Input cannot be empty)")
}

func TestInput_EmptyUsesDefault(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole("")
	got, err := c.Input(InputOptions{AllowEmpty: true, Default: "fallback"})
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestInput_ValidationIsFullMatch(t *testing.T) {
	t.Parallel()

	patterns, err := validate.CompileAll("[0-9]+")
	require.NoError(t, err)

	c, out := newTestConsole("12a", "123")
	got, err := c.Input(InputOptions{Patterns: patterns, ErrorMessage: "digits only"})
	require.NoError(t, err)
	assert.Equal(t, "123", got)
	assert.Contains(t, out.String(), "digits only (Validation failed)")
}

func TestInput_ConfirmationRejectionReprompts(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("first", "n", "second", "y")
	got, err := c.Input(InputOptions{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, "second", got)
	assert.Contains(t, out.String(), "Please introduce a value: ")
}

func TestInput_EmptyAllowedStillConfirms(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("", "y")
	got, err := c.Input(InputOptions{AllowEmpty: true, Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Contains(t, out.String(), "Do you want to continue?")
}

func TestInput_LogsRejections(t *testing.T) {
	t.Parallel()

	var logs, out bytes.Buffer
	term := ux.NewTerminal(strings.NewReader("ABC\nabc\n"), &out)
	logger := ux.NewZerologLoggerWithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel))
	c := NewConsole(term, WithLogger(logger), WithStyles(ux.PlainStyles()))

	got, err := c.Input(InputOptions{Patterns: validate.Patterns{validate.MustCompile("[a-z]+")}})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Contains(t, logs.String(), `"message":"input rejected"`)
	assert.Contains(t, logs.String(), `"value":"ABC"`)
	assert.NotContains(t, out.String(), "input rejected")
}
