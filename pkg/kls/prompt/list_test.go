package prompt

import (
	"testing"

	"github.com/go-go-golems/klsframe/pkg/kls/validate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_FixedSizeRecollects(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("1,2", "1,2,3")
	values, err := c.List(ListOptions{Element: NumberElements, FixedSize: 3})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, values)
	assert.Contains(t, out.String(), "expected exactly 3 element(s), got 2")
}

func TestList_DedupWhenRepeatsDisallowed(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole("a, a ,b")
	values, err := c.List(ListOptions{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []interface{}{"a", "b"}, values)
}

func TestList_DedupComparesNumbersByValue(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole("1;1.00;2")
	values, err := c.List(ListOptions{Separator: ";", Element: NumberElements, Number: NumberOptions{DecimalDigits: AnyDigits}})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(1), int64(2)}, values)

	c, out := newTestConsole("1", "1.0", "")
	values, err = c.List(ListOptions{Separator: NewLine, Element: NumberElements, Number: NumberOptions{DecimalDigits: AnyDigits}})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(1)}, values)
	assert.Contains(t, out.String(), "'1' is already in the list")
}

func TestList_RepeatsKept(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole("a,a,b")
	values, err := c.List(ListOptions{AllowRepeats: true})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"a", "a", "b"}, values)
}

func TestList_MaxSizeTruncates(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole("a;b;c;d")
	values, err := c.List(ListOptions{Separator: ";", MaxSize: 2})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"a", "b"}, values)
}

func TestList_UnparsableNumbersDropped(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("1, x, 3")
	values, err := c.List(ListOptions{Element: NumberElements})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{int64(1), int64(3)}, values)
	assert.Contains(t, out.String(), "Skipping 'x'")
}

func TestList_EmptyRejectedWhenDisallowed(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("", "x")
	values, err := c.List(ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"x"}, values)
	assert.Contains(t, out.String(), "the list cannot be empty")
}

func TestList_ElementPatterns(t *testing.T) {
	t.Parallel()

	patterns, err := validate.CompileAll("[a-z]+")
	require.NoError(t, err)

	c, out := newTestConsole("ok,NO", "ok,yes")
	values, err := c.List(ListOptions{Patterns: patterns})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"ok", "yes"}, values)
	assert.Contains(t, out.String(), "Invalid input")
}

func TestList_LinePerItem(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole("red", "", "red", "green", "")
	values, err := c.List(ListOptions{Separator: NewLine, FixedSize: 2})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"red", "green"}, values)
	text := out.String()
	assert.Contains(t, text, "1 more item(s) required")
	assert.Contains(t, text, "'red' is already in the list")
	assert.Contains(t, text, "Item 2: ")
}

func TestList_LinePerItemStopsAtMaxSize(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole("1", "2.5")
	values, err := c.List(ListOptions{
		Separator: NewLine,
		Element:   NumberElements,
		Number:    NumberOptions{DecimalDigits: 1},
		MaxSize:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{1.0, 2.5}, values)
}

func TestList_ConfirmRejectionRestarts(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole("a,b", "n", "c", "y")
	values, err := c.List(ListOptions{Confirm: true})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"c"}, values)
}

func TestNewListParser_ConstructionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts ListOptions
	}{
		{"fixed above max", ListOptions{FixedSize: 4, MaxSize: 2}},
		{"negative size", ListOptions{MaxSize: -1}},
		{"blank separator", ListOptions{Separator: " "}},
		{"separator equals decimal separator", ListOptions{Element: NumberElements, Separator: ".", Number: NumberOptions{DecimalDigits: 2}}},
		{"unknown element kind", ListOptions{Element: ElementKind(9)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewListParser(tt.opts)
			assert.True(t, errors.Is(err, ErrConstruction), "got %v", err)
		})
	}
}
