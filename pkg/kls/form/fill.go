package form

import (
	"fmt"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/pkg/errors"
)

type FillOptions struct {
	// Compact prints one line per field instead of the title/description/example block.
	Compact bool
	// Confirm shows the summary table and asks before accepting the record.
	Confirm bool
}

// SummaryTable renders rec as a Field | Value table under the form banner.
// Fields missing from rec are shown empty.
func (f *Form) SummaryTable(rec Record) (string, error) {
	var buf strings.Builder
	fmt.Fprintf(&buf, "----< Form '%s' >----\n", f.Title)
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Field", "Value")
	for _, name := range f.Names() {
		if err := table.Append(name, prompt.FormatValue(rec[name])); err != nil {
			return "", errors.Wrapf(err, "failed to render field %s", name)
		}
	}
	if err := table.Render(); err != nil {
		return "", errors.Wrap(err, "failed to render summary")
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// FillIn asks every field in order on the console. With Confirm set, a
// rejected summary restarts the whole form and leaves LastResult untouched.
// The accepted record is merged into LastResult and returned.
func (f *Form) FillIn(c *prompt.Console, opts FillOptions) (Record, error) {
	for {
		c.Header(fmt.Sprintf("---< Form '%s' >---", f.Title))
		if f.Description != "" {
			c.Println(f.Description)
		}

		rec := make(Record, len(f.fields))
		for i, field := range f.fields {
			if opts.Compact {
				c.Println(fmt.Sprintf("[Field %d/%d] %s", i+1, len(f.fields), field.meta.compact()))
			} else {
				c.Println(fmt.Sprintf("[Field %d/%d]", i+1, len(f.fields)))
				c.Println(field.meta.long())
			}
			v, err := field.collect(c)
			if err != nil {
				return nil, err
			}
			rec[field.meta.Name] = v
		}

		if opts.Confirm {
			summary, err := f.SummaryTable(rec)
			if err != nil {
				return nil, err
			}
			ok, err := c.Confirm(summary, prompt.DefaultConfirmOptions())
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		f.merge(rec)
		return rec, nil
	}
}

// FillInWith is FillIn for widget prompters. Every field is an input widget
// validated by the field's own parser; list fields are typed on one line.
func (f *Form) FillInWith(p ux.Prompter, opts FillOptions) (Record, error) {
	for {
		rec := make(Record, len(f.fields))
		for i, field := range f.fields {
			title := fmt.Sprintf("[Field %d/%d] %s", i+1, len(f.fields), field.meta.compact())
			v, err := f.askWith(p, title, field)
			if err != nil {
				return nil, err
			}
			rec[field.meta.Name] = v
		}

		if opts.Confirm {
			summary, err := f.SummaryTable(rec)
			if err != nil {
				return nil, err
			}
			ok, err := p.Confirm(summary + "\n\nDo you want to continue?")
			if err != nil {
				return nil, abortedAsCancelled(err)
			}
			if !ok {
				continue
			}
		}

		f.merge(rec)
		return rec, nil
	}
}

func (f *Form) askWith(p ux.Prompter, title string, field *compiledField) (interface{}, error) {
	for {
		raw, err := p.Input(title, func(s string) error {
			_, err := field.parse(strings.TrimSpace(s))
			return err
		})
		if err != nil {
			return nil, abortedAsCancelled(err)
		}
		v, err := field.parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		if !field.meta.Confirm {
			return v, nil
		}
		ok, err := p.Confirm(fmt.Sprintf("%s = %s\n\nDo you want to continue?", field.meta.Name, prompt.FormatValue(v)))
		if err != nil {
			return nil, abortedAsCancelled(err)
		}
		if ok {
			return v, nil
		}
	}
}

func abortedAsCancelled(err error) error {
	if errors.Is(err, ux.ErrAborted) {
		return prompt.ErrCancelled
	}
	return err
}
