// Package form groups typed fields into a questionnaire that is filled in
// one field at a time, summarized and optionally confirmed as a whole.
package form

import (
	"fmt"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/pkg/errors"
)

const untitled = "untitled"

// Record maps field names to collected values: string, int64, float64 or
// []interface{} depending on the field kind.
type Record map[string]interface{}

func (r Record) clone() Record {
	ret := make(Record, len(r))
	for k, v := range r {
		ret[k] = v
	}
	return ret
}

type Form struct {
	Title       string
	Description string

	fields     []*compiledField
	index      map[string]int
	lastResult Record
}

func New(title, description string) *Form {
	if title == "" {
		title = untitled
	}
	return &Form{
		Title:       title,
		Description: description,
		index:       map[string]int{},
		lastResult:  Record{},
	}
}

func (f *Form) String() string {
	return fmt.Sprintf("Form('%s')", f.Title)
}

// AddField validates and appends a field. Names must be unique and non-empty.
func (f *Form) AddField(field Field) error {
	meta := field.FieldMeta()
	if strings.TrimSpace(meta.Name) == "" {
		return prompt.NewConstructionError(f.String(), "field names cannot be empty")
	}
	if _, ok := f.index[meta.Name]; ok {
		return prompt.NewConstructionError(f.String(), "duplicate field %q", meta.Name)
	}
	compiled, err := field.compile()
	if err != nil {
		return err
	}
	f.index[meta.Name] = len(f.fields)
	f.fields = append(f.fields, compiled)
	return nil
}

// AddFieldOfKind appends a field of the given kind with default parameters.
func (f *Form) AddFieldOfKind(kind Kind, meta Meta) error {
	switch kind {
	case KindString:
		return f.AddField(StringField{Meta: meta})
	case KindNumber:
		return f.AddField(NumberField{Meta: meta})
	case KindList:
		return f.AddField(ListField{Meta: meta})
	default:
		return prompt.NewConstructionError(f.String(), "unsupported field kind %s", kind)
	}
}

func (f *Form) Len() int {
	return len(f.fields)
}

// Fields returns the field metadata in declaration order.
func (f *Form) Fields() []Meta {
	ret := make([]Meta, len(f.fields))
	for i, field := range f.fields {
		ret[i] = field.meta
	}
	return ret
}

func (f *Form) Names() []string {
	ret := make([]string, len(f.fields))
	for i, field := range f.fields {
		ret[i] = field.meta.Name
	}
	return ret
}

// KindOf reports the kind of the named field.
func (f *Form) KindOf(name string) (Kind, bool) {
	i, ok := f.index[name]
	if !ok {
		return 0, false
	}
	return f.fields[i].kind, true
}

// LastResult returns a copy of the values merged by the last accepted fill.
func (f *Form) LastResult() Record {
	return f.lastResult.clone()
}

// Reset forgets the last result.
func (f *Form) Reset() {
	f.lastResult = Record{}
}

func (f *Form) merge(rec Record) {
	for k, v := range rec {
		f.lastResult[k] = v
	}
}

// Info renders the form title, description and one line per field.
func (f *Form) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Form '%s'\n", f.Title)
	if f.Description != "" {
		fmt.Fprintf(&b, "  %s\n", f.Description)
	}
	for i, field := range f.fields {
		fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, field.kind, field.meta.compact())
	}
	return b.String()
}

// ShowInfo prints Info on the console.
func (f *Form) ShowInfo(c *prompt.Console) {
	c.Header(fmt.Sprintf("---< Form '%s' >---", f.Title))
	c.Terminal().Print(f.Info())
}

// Value fetches one field of the last result.
func (f *Form) Value(name string) (interface{}, error) {
	if _, ok := f.index[name]; !ok {
		return nil, errors.Errorf("%s has no field %q", f, name)
	}
	v, ok := f.lastResult[name]
	if !ok {
		return nil, errors.Errorf("field %q has not been filled in", name)
	}
	return v, nil
}
