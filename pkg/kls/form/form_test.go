package form

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(answers ...string) (*prompt.Console, *bytes.Buffer) {
	var out bytes.Buffer
	input := strings.Join(answers, "\n")
	if len(answers) > 0 {
		input += "\n"
	}
	term := ux.NewTerminal(strings.NewReader(input), &out)
	return prompt.NewConsole(term, prompt.WithStyles(ux.PlainStyles())), &out
}

// MockPrompter replays canned widget answers in order
type MockPrompter struct {
	inputs   []string
	confirms []bool
	inputErr error
	titles   []string
}

func (m *MockPrompter) Select(message string, options []string) (string, error) {
	return "", errors.New("not implemented")
}

func (m *MockPrompter) Confirm(message string) (bool, error) {
	if len(m.confirms) == 0 {
		return true, nil
	}
	answer := m.confirms[0]
	m.confirms = m.confirms[1:]
	return answer, nil
}

func (m *MockPrompter) Input(message string, validate func(string) error) (string, error) {
	m.titles = append(m.titles, message)
	if m.inputErr != nil {
		return "", m.inputErr
	}
	if len(m.inputs) == 0 {
		return "", errors.New("no more inputs")
	}
	answer := m.inputs[0]
	m.inputs = m.inputs[1:]
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func TestForm_FillInSingleString(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "x"}}))

	c, out := newTestConsole("hello")
	rec, err := f.FillIn(c, FillOptions{Compact: true})
	require.NoError(t, err)

	if diff := cmp.Diff(Record{"x": "hello"}, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Record{"x": "hello"}, f.LastResult()); diff != "" {
		t.Errorf("last result mismatch (-want +got):\n%s", diff)
	}

	text := out.String()
	assert.Contains(t, text, "---< Form 'T' >---")
	assert.Contains(t, text, "[Field 1/1] 'x': Description not provided. (e.g.: not provided)")
	assert.Contains(t, text, ">> x = ")
}

func TestForm_FillInVerbose(t *testing.T) {
	t.Parallel()

	f := New("T", "Some form")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "host", Description: "Target host", Example: "10.0.0.1"}}))

	c, out := newTestConsole("example.org")
	_, err := f.FillIn(c, FillOptions{})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Some form")
	assert.Contains(t, text, "[Field 1/1]\n  Title: host\n  Description: Target host\n  Example: 10.0.0.1")
}

func TestForm_FillInMixedKinds(t *testing.T) {
	t.Parallel()

	f := New("Profile", "")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "name"}, Patterns: []string{`[A-Z][a-z]+`}}))
	require.NoError(t, f.AddField(NumberField{Meta: Meta{Name: "age"}, Min: prompt.Bound(0), Max: prompt.Bound(120)}))
	require.NoError(t, f.AddField(ListField{Meta: Meta{Name: "tags"}}))

	c, out := newTestConsole("ann", "Ann", "130", "42", "a, b, a")
	rec, err := f.FillIn(c, FillOptions{Compact: true})
	require.NoError(t, err)

	want := Record{
		"name": "Ann",
		"age":  int64(42),
		"tags": []interface{}{"a", "b"},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}

	text := out.String()
	assert.Contains(t, text, "(Validation failed)")
	assert.Contains(t, text, "[ERROR] Value out of bounds [0, 120]")
	assert.Contains(t, text, "[Field 3/3] 'tags'")
}

func TestForm_FillInConfirmRejectRestarts(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "x"}}))

	c, out := newTestConsole("first", "n", "second", "y")
	rec, err := f.FillIn(c, FillOptions{Compact: true, Confirm: true})
	require.NoError(t, err)

	assert.Equal(t, Record{"x": "second"}, rec)
	assert.Equal(t, 2, strings.Count(out.String(), "[Field 1/1]"))
	assert.Contains(t, out.String(), "----< Form 'T' >----")
}

func TestForm_RejectedFillKeepsLastResult(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "x"}}))

	c, _ := newTestConsole("kept")
	_, err := f.FillIn(c, FillOptions{})
	require.NoError(t, err)

	c, _ = newTestConsole("discarded", "n")
	_, err = f.FillIn(c, FillOptions{Confirm: true})
	assert.ErrorIs(t, err, prompt.ErrInputClosed)
	assert.Equal(t, Record{"x": "kept"}, f.LastResult())
}

func TestForm_NullableNumberDefault(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(NumberField{Meta: Meta{Name: "n", Nullable: true}, Min: prompt.Bound(5)}))
	require.NoError(t, f.AddField(NumberField{Meta: Meta{Name: "ratio", Nullable: true}, DecimalDigits: 2, Default: prompt.Bound(0.5)}))

	c, _ := newTestConsole("", "")
	rec, err := f.FillIn(c, FillOptions{Compact: true})
	require.NoError(t, err)

	assert.Equal(t, int64(5), rec["n"])
	assert.Equal(t, 0.5, rec["ratio"])
}

func TestForm_AddFieldErrors(t *testing.T) {
	t.Parallel()

	f := New("", "")
	assert.Equal(t, "untitled", f.Title)
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "x"}}))

	cases := map[string]Field{
		"duplicate":   StringField{Meta: Meta{Name: "x"}},
		"empty name":  StringField{Meta: Meta{Name: " "}},
		"bad pattern": StringField{Meta: Meta{Name: "p"}, Patterns: []string{"("}},
		"min > max":   NumberField{Meta: Meta{Name: "n"}, Min: prompt.Bound(10), Max: prompt.Bound(1)},
		"bad sizes":   ListField{Meta: Meta{Name: "l"}, MaxSize: 2, FixedSize: 3},
	}
	for name, field := range cases {
		err := f.AddField(field)
		assert.True(t, errors.Is(err, prompt.ErrConstruction), name)
	}

	err := f.AddFieldOfKind(Kind(99), Meta{Name: "k"})
	assert.True(t, errors.Is(err, prompt.ErrConstruction))
	assert.Equal(t, []string{"x"}, f.Names())
}

func TestForm_AddFieldOfKind(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddFieldOfKind(KindString, Meta{Name: "s"}))
	require.NoError(t, f.AddFieldOfKind(KindNumber, Meta{Name: "n"}))
	require.NoError(t, f.AddFieldOfKind(KindList, Meta{Name: "l"}))

	assert.Equal(t, 3, f.Len())
	kind, ok := f.KindOf("n")
	assert.True(t, ok)
	assert.Equal(t, KindNumber, kind)
	_, ok = f.KindOf("missing")
	assert.False(t, ok)
}

func TestForm_InfoAndValue(t *testing.T) {
	t.Parallel()

	f := New("T", "Desc")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "x", Description: "an x", Example: "xx"}}))

	info := f.Info()
	assert.Contains(t, info, "Form 'T'")
	assert.Contains(t, info, "1. [string] 'x': an x. (e.g.: xx)")

	_, err := f.Value("x")
	assert.Error(t, err)
	_, err = f.Value("y")
	assert.Error(t, err)

	c, _ := newTestConsole("v")
	_, err = f.FillIn(c, FillOptions{})
	require.NoError(t, err)
	v, err := f.Value("x")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	f.Reset()
	assert.Empty(t, f.LastResult())
}

func TestForm_LastResultIsACopy(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "x"}}))
	c, _ := newTestConsole("v")
	_, err := f.FillIn(c, FillOptions{})
	require.NoError(t, err)

	got := f.LastResult()
	got["x"] = "changed"
	assert.Equal(t, "v", f.LastResult()["x"])
}

func TestForm_SummaryTable(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "host"}}))
	require.NoError(t, f.AddField(ListField{Meta: Meta{Name: "ports"}, Element: prompt.NumberElements}))

	table, err := f.SummaryTable(Record{"host": "example.org", "ports": []interface{}{int64(22), int64(80)}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(table, "----< Form 'T' >----\n"))
	assert.Contains(t, table, "example.org")
	assert.Contains(t, table, "[22, 80]")
}

func TestForm_FillInWith(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "x"}}))
	require.NoError(t, f.AddField(ListField{Meta: Meta{Name: "tags"}, Separator: prompt.NewLine}))

	p := &MockPrompter{
		inputs:   []string{"h1", "a", "h2", "b,c"},
		confirms: []bool{false, true},
	}
	rec, err := f.FillInWith(p, FillOptions{Confirm: true})
	require.NoError(t, err)

	want := Record{"x": "h2", "tags": []interface{}{"b", "c"}}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want, f.LastResult())
	assert.Equal(t, "[Field 1/2] 'x': Description not provided. (e.g.: not provided)", p.titles[0])
}

func TestForm_FillInWithDecimalCommaList(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(ListField{
		Meta:      Meta{Name: "xs"},
		Separator: prompt.NewLine,
		Element:   prompt.NumberElements,
		Number:    prompt.NumberOptions{DecimalDigits: 2, DecimalSeparator: ","},
	}))

	rec, err := f.FillInWith(&MockPrompter{inputs: []string{"1,5;2"}}, FillOptions{})
	require.NoError(t, err)

	want := Record{"xs": []interface{}{1.5, 2.0}}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_FillInWithAbort(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(StringField{Meta: Meta{Name: "x"}}))

	_, err := f.FillInWith(&MockPrompter{inputErr: ux.ErrAborted}, FillOptions{})
	assert.ErrorIs(t, err, prompt.ErrCancelled)
	assert.Empty(t, f.LastResult())
}

func TestForm_FillInWithRejectsInvalid(t *testing.T) {
	t.Parallel()

	f := New("T", "")
	require.NoError(t, f.AddField(NumberField{Meta: Meta{Name: "n"}, Max: prompt.Bound(10)}))

	_, err := f.FillInWith(&MockPrompter{inputs: []string{"11"}}, FillOptions{})
	assert.ErrorIs(t, err, prompt.ErrOutOfBounds)
}
