package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FieldDefinition is the serialized form of a Field. Which parameters apply
// depends on Kind.
type FieldDefinition struct {
	Name        string `yaml:"name" json:"name"`
	Kind        string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Example     string `yaml:"example,omitempty" json:"example,omitempty"`
	Nullable    bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Confirm     bool   `yaml:"confirm,omitempty" json:"confirm,omitempty"`

	Pattern  string      `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Patterns []string    `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	Default  interface{} `yaml:"default,omitempty" json:"default,omitempty"`

	// number
	Min              *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max              *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	DecimalDigits    int      `yaml:"decimal_digits,omitempty" json:"decimal_digits,omitempty"`
	DecimalSeparator string   `yaml:"decimal_separator,omitempty" json:"decimal_separator,omitempty"`

	// list
	Separator    string `yaml:"separator,omitempty" json:"separator,omitempty"`
	Element      string `yaml:"element,omitempty" json:"element,omitempty"`
	MaxSize      int    `yaml:"max_size,omitempty" json:"max_size,omitempty"`
	FixedSize    int    `yaml:"fixed_size,omitempty" json:"fixed_size,omitempty"`
	AllowRepeats bool   `yaml:"allow_repeats,omitempty" json:"allow_repeats,omitempty"`
}

// Definition describes a form in YAML or JSON.
type Definition struct {
	Title       string            `yaml:"title" json:"title"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Fields      []FieldDefinition `yaml:"fields" json:"fields"`
}

// ParseDefinition decodes a YAML (or JSON) form definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, "failed to parse form definition")
	}
	return &def, nil
}

func (d *Definition) Build() (*Form, error) {
	f := New(d.Title, d.Description)
	for i, fd := range d.Fields {
		field, err := fd.Field()
		if err != nil {
			return nil, errors.Wrapf(err, "field #%d", i+1)
		}
		if err := f.AddField(field); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Field converts the definition into a typed field.
func (fd FieldDefinition) Field() (Field, error) {
	kind, err := ParseKind(fd.Kind)
	if err != nil {
		return nil, err
	}
	meta := Meta{
		Name:        fd.Name,
		Description: fd.Description,
		Example:     fd.Example,
		Nullable:    fd.Nullable,
		Confirm:     fd.Confirm,
	}

	patterns := fd.Patterns
	if fd.Pattern != "" {
		patterns = append([]string{fd.Pattern}, patterns...)
	}

	switch kind {
	case KindNumber:
		field := NumberField{
			Meta:             meta,
			Min:              fd.Min,
			Max:              fd.Max,
			DecimalDigits:    fd.DecimalDigits,
			DecimalSeparator: fd.DecimalSeparator,
		}
		if fd.Default != nil {
			v, err := toFloat(fd.Default)
			if err != nil {
				return nil, prompt.NewConstructionError("field "+fd.Name, "default: %v", err)
			}
			field.Default = &v
		}
		return field, nil

	case KindList:
		field := ListField{
			Meta:         meta,
			Patterns:     patterns,
			Separator:    fd.Separator,
			MaxSize:      fd.MaxSize,
			FixedSize:    fd.FixedSize,
			AllowRepeats: fd.AllowRepeats,
			Number: prompt.NumberOptions{
				Min:              fd.Min,
				Max:              fd.Max,
				DecimalDigits:    fd.DecimalDigits,
				DecimalSeparator: fd.DecimalSeparator,
			},
		}
		if strings.EqualFold(fd.Separator, "newline") {
			field.Separator = prompt.NewLine
		}
		switch strings.ToLower(fd.Element) {
		case "", "string":
			field.Element = prompt.StringElements
		case "number", "numeric":
			field.Element = prompt.NumberElements
		default:
			return nil, prompt.NewConstructionError("field "+fd.Name, "unexpected element %q, allowed: string | number", fd.Element)
		}
		return field, nil

	default:
		field := StringField{Meta: meta, Patterns: patterns}
		if fd.Default != nil {
			field.Default = fmt.Sprint(fd.Default)
		}
		return field, nil
	}
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, errors.Errorf("%q is not a number", n)
		}
		return f, nil
	default:
		return 0, errors.Errorf("unsupported value %v", v)
	}
}
