package form

import (
	"fmt"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/validate"
	"github.com/pkg/errors"
)

type Kind int

const (
	KindString Kind = iota + 1
	KindNumber
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a definition keyword to a Kind. An empty keyword means string.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string":
		return KindString, nil
	case "number", "numeric":
		return KindNumber, nil
	case "list":
		return KindList, nil
	default:
		return 0, prompt.NewConstructionError("kind", "unexpected value %q, allowed: string | number | list", s)
	}
}

// Meta is shared by every field kind.
type Meta struct {
	Name        string
	Description string
	Example     string
	// Nullable allows empty answers.
	Nullable bool
	// Confirm asks for a yes/no confirmation of each answer.
	Confirm bool
}

// compact renders the one-line field summary used in compact mode.
func (m Meta) compact() string {
	desc, eg := m.Description, m.Example
	if desc == "" {
		desc = "Description not provided"
	}
	if eg == "" {
		eg = "not provided"
	}
	return fmt.Sprintf("'%s': %s. (e.g.: %s)", m.Name, desc, eg)
}

func (m Meta) long() string {
	desc, eg := m.Description, m.Example
	if desc == "" {
		desc = "Not provided"
	}
	if eg == "" {
		eg = "Not provided"
	}
	return fmt.Sprintf("  Title: %s\n  Description: %s\n  Example: %s", m.Name, desc, eg)
}

func (m Meta) prompt() string {
	return fmt.Sprintf(">> %s = ", m.Name)
}

// Field is one form input. It is implemented by StringField, NumberField and
// ListField only.
type Field interface {
	FieldMeta() Meta
	Kind() Kind
	compile() (*compiledField, error)
}

// StringField collects free text, optionally whitelisted by Patterns.
type StringField struct {
	Meta
	Patterns []string
	// Default replaces an empty answer on nullable fields.
	Default string
}

func (f StringField) FieldMeta() Meta { return f.Meta }
func (f StringField) Kind() Kind      { return KindString }

func (f StringField) compile() (*compiledField, error) {
	patterns, err := validate.CompileAll(f.Patterns...)
	if err != nil {
		return nil, prompt.NewConstructionError("field "+f.Name, "%v", err)
	}
	opts := prompt.InputOptions{
		Prompt:     f.prompt(),
		Patterns:   patterns,
		AllowEmpty: f.Nullable,
		Default:    f.Default,
		Confirm:    f.Confirm,
	}
	return &compiledField{
		meta: f.Meta,
		kind: KindString,
		collect: func(c *prompt.Console) (interface{}, error) {
			return c.Input(opts)
		},
		parse: func(raw string) (interface{}, error) {
			if raw == "" {
				if !f.Nullable {
					return nil, errors.New("this field cannot be empty")
				}
				return f.Default, nil
			}
			ok, err := validate.Validate(raw, patterns)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errors.Wrap(prompt.ErrValidationFailed, "invalid input syntax")
			}
			return raw, nil
		},
	}, nil
}

// NumberField collects an integer or decimal value.
type NumberField struct {
	Meta
	Min *float64
	Max *float64
	// DecimalDigits follows prompt.NumberOptions: 0 integer, N decimals, or prompt.AnyDigits.
	DecimalDigits    int
	DecimalSeparator string
	// Default is used for empty answers on nullable fields. Nullable fields
	// without a default fall back to 0 clamped into the bounds.
	Default *float64
}

func (f NumberField) FieldMeta() Meta { return f.Meta }
func (f NumberField) Kind() Kind      { return KindNumber }

func (f NumberField) options() prompt.NumberOptions {
	opts := prompt.NumberOptions{
		Prompt:           f.prompt(),
		Min:              f.Min,
		Max:              f.Max,
		DecimalDigits:    f.DecimalDigits,
		DecimalSeparator: f.DecimalSeparator,
		Confirm:          f.Confirm,
	}
	if f.Nullable {
		opts.Default = f.Default
		if opts.Default == nil {
			d := 0.0
			if f.Min != nil && d < *f.Min {
				d = *f.Min
			}
			if f.Max != nil && d > *f.Max {
				d = *f.Max
			}
			opts.Default = &d
		}
	}
	return opts
}

func (f NumberField) compile() (*compiledField, error) {
	parser, err := prompt.NewNumberParser(f.options())
	if err != nil {
		return nil, errors.Wrapf(err, "field %s", f.Name)
	}
	return &compiledField{
		meta: f.Meta,
		kind: KindNumber,
		collect: func(c *prompt.Console) (interface{}, error) {
			n, err := c.NumberWith(parser, f.Confirm)
			if err != nil {
				return nil, err
			}
			return n.Interface(), nil
		},
		parse: func(raw string) (interface{}, error) {
			if raw == "" {
				d, ok := parser.Default()
				if !ok {
					return nil, errors.New("this field cannot be empty")
				}
				return d.Interface(), nil
			}
			n, err := parser.Parse(raw)
			if err != nil {
				return nil, err
			}
			return n.Interface(), nil
		},
	}, nil
}

// ListField collects several values. Separator prompt.NewLine asks for one
// element per line.
type ListField struct {
	Meta
	Patterns     []string
	Separator    string
	Element      prompt.ElementKind
	Number       prompt.NumberOptions
	MaxSize      int
	FixedSize    int
	AllowRepeats bool
}

func (f ListField) FieldMeta() Meta { return f.Meta }
func (f ListField) Kind() Kind      { return KindList }

func (f ListField) compile() (*compiledField, error) {
	patterns, err := validate.CompileAll(f.Patterns...)
	if err != nil {
		return nil, prompt.NewConstructionError("field "+f.Name, "%v", err)
	}
	promptText := f.prompt()
	if f.Separator == prompt.NewLine {
		promptText = fmt.Sprintf(">> %s (one per line, empty line to finish)", f.Name)
	}
	parser, err := prompt.NewListParser(prompt.ListOptions{
		Prompt:       promptText,
		Separator:    f.Separator,
		Element:      f.Element,
		Number:       f.Number,
		Patterns:     patterns,
		MaxSize:      f.MaxSize,
		FixedSize:    f.FixedSize,
		AllowRepeats: f.AllowRepeats,
		AllowEmpty:   f.Nullable,
		Confirm:      f.Confirm,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "field %s", f.Name)
	}
	return &compiledField{
		meta: f.Meta,
		kind: KindList,
		collect: func(c *prompt.Console) (interface{}, error) {
			return c.ListWith(parser)
		},
		parse: func(raw string) (interface{}, error) {
			// single-line widgets cannot type newlines
			if parser.LinePerItem() {
				raw = strings.ReplaceAll(raw, parser.InlineSeparator(), prompt.NewLine)
			}
			values, err := parser.Split(raw, nil)
			if err != nil {
				return nil, err
			}
			if err := parser.Check(values); err != nil {
				return nil, err
			}
			return values, nil
		},
	}, nil
}

// compiledField is the immutable, ready-to-run form of a Field.
type compiledField struct {
	meta    Meta
	kind    Kind
	collect func(c *prompt.Console) (interface{}, error)
	parse   func(raw string) (interface{}, error)
}
