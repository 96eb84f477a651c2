package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm_Answers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
		opts   ConfirmOptions
		want   bool
	}{
		{"yes", "yes", DefaultConfirmOptions(), true},
		{"short yes upper", "Y", ConfirmOptions{Default: false, AllowEmpty: true}, true},
		{"no", "n", DefaultConfirmOptions(), false},
		{"prefix no", "nope", DefaultConfirmOptions(), false},
		{"empty default true", "", DefaultConfirmOptions(), true},
		{"empty default false", "", ConfirmOptions{Default: false, AllowEmpty: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestConsole(tt.answer)
			got, err := c.Confirm("value", tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_RepromptsUntilResolved(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("", "maybe", "y")
	got, err := c.Confirm("Delete all assets", ConfirmOptions{Default: false, AllowEmpty: false, Shortened: false})
	require.NoError(t, err)
	assert.True(t, got)

	text := out.String()
	assert.Contains(t, text, "You selected:\n  * Delete all assets")
	assert.Contains(t, text, "[NO/yes]")
	assert.Contains(t, text, "Please provide an answer")
	assert.Contains(t, text, "Option 'maybe' not recognized")
}

func TestConfirm_Hints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[Y/n]", ConfirmOptions{Default: true, Shortened: true}.hint())
	assert.Equal(t, "[N/y]", ConfirmOptions{Default: false, Shortened: true}.hint())
	assert.Equal(t, "[YES/no]", ConfirmOptions{Default: true}.hint())
}

func TestConfirm_InputClosed(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole()
	_, err := c.Confirm("x", DefaultConfirmOptions())
	assert.ErrorIs(t, err, ErrInputClosed)
}
