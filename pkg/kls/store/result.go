package store

import (
	"time"

	"github.com/pkg/errors"
)

// ResultDocument is what gets saved after a form has been filled in.
type ResultDocument struct {
	Form     string                 `json:"form" yaml:"form"`
	Fields   []string               `json:"fields" yaml:"fields"`
	Values   map[string]interface{} `json:"values" yaml:"values"`
	FilledAt time.Time              `json:"filled_at" yaml:"filled_at"`
}

// Builder creates result documents
type Builder struct {
	clock func() time.Time
}

func NewBuilder(clock func() time.Time) *Builder {
	return &Builder{clock: clock}
}

// Build captures values in field order. Values for unknown fields are dropped.
func (b *Builder) Build(form string, fields []string, values map[string]interface{}) ResultDocument {
	doc := ResultDocument{
		Form:     form,
		Fields:   append([]string(nil), fields...),
		Values:   make(map[string]interface{}, len(fields)),
		FilledAt: b.clock().UTC(),
	}
	for _, name := range fields {
		if v, ok := values[name]; ok {
			doc.Values[name] = v
		}
	}
	return doc
}

func (s *Service) SaveResult(path string, doc ResultDocument) error {
	return s.Save(path, doc)
}

func (s *Service) LoadResult(path string) (*ResultDocument, error) {
	var doc ResultDocument
	if err := s.Load(path, &doc); err != nil {
		return nil, err
	}
	if doc.Form == "" {
		return nil, errors.Errorf("%s is not a result document", path)
	}
	return &doc, nil
}
