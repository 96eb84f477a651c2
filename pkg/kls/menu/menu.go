// Package menu builds selectable option lists whose entries may carry an
// action that runs once the entry is chosen.
package menu

import (
	"fmt"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/pkg/errors"
)

const (
	cancelOption = "Cancel operation"
	customOption = "Custom value"
)

// Entry is one menu option. Callback is optional.
type Entry struct {
	Value       string
	Description string
	Callback    func() error
}

func (e Entry) String() string {
	if e.Description != "" && e.Description != e.Value {
		return fmt.Sprintf("'%s' (%s)", e.Value, e.Description)
	}
	return fmt.Sprintf("'%s'", e.Value)
}

type Menu struct {
	Title       string
	Description string
	AllowCustom bool
	// CustomPrompt obtains custom values; nil uses a plain non-empty input.
	CustomPrompt func() (string, error)

	entries []Entry
}

type Option func(*Menu)

// WithCustom enables the "Custom value" option.
func WithCustom(customPrompt func() (string, error)) Option {
	return func(m *Menu) {
		m.AllowCustom = true
		m.CustomPrompt = customPrompt
	}
}

func WithDescription(description string) Option {
	return func(m *Menu) {
		m.Description = description
	}
}

func New(title string, opts ...Option) *Menu {
	m := &Menu{Title: title}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddEntry appends an option, using the natural string form of value.
func (m *Menu) AddEntry(value interface{}, description string, callback func() error) {
	m.entries = append(m.entries, Entry{
		Value:       fmt.Sprint(value),
		Description: description,
		Callback:    callback,
	})
}

func (m *Menu) AddEntries(entries ...Entry) {
	m.entries = append(m.entries, entries...)
}

// Entries returns a copy of the options in display order.
func (m *Menu) Entries() []Entry {
	ret := make([]Entry, len(m.entries))
	copy(ret, m.entries)
	return ret
}

func (m *Menu) candidates() []prompt.Candidate {
	ret := make([]prompt.Candidate, len(m.entries))
	for i, e := range m.entries {
		ret[i] = prompt.Candidate{Label: e.String(), Value: e}
	}
	return ret
}

// Open runs one selection round on the console. If the chosen entry has a
// callback it runs before Open returns. The result's Value is the Entry, or
// the typed string for custom values. The custom slot is offered only when
// AllowCustom is set.
func (m *Menu) Open(c *prompt.Console) (prompt.SelectionResult, error) {
	if m.Description != "" {
		c.Println(m.Description)
	}
	opts := prompt.SelectOptions{Title: m.Title, EnableCustom: m.AllowCustom}
	if m.AllowCustom {
		opts.CustomPrompt = m.CustomPrompt
	}
	res, err := c.Select(m.candidates(), opts)
	if err != nil {
		return res, err
	}
	return res, m.dispatch(res)
}

// OpenWith presents the menu through a widget prompter. Cancel and custom
// options are appended after the entries.
func (m *Menu) OpenWith(p ux.Prompter) (prompt.SelectionResult, error) {
	labels := make([]string, 0, len(m.entries)+2)
	for _, e := range m.entries {
		labels = append(labels, e.String())
	}
	labels = append(labels, cancelOption)
	if m.AllowCustom {
		labels = append(labels, customOption)
	}

	title := m.Title
	if title == "" {
		title = "Available options"
	}
	chosen, err := p.Select(title, labels)
	if err != nil {
		if errors.Is(err, ux.ErrAborted) {
			return prompt.SelectionResult{}, prompt.ErrCancelled
		}
		return prompt.SelectionResult{}, err
	}

	switch {
	case chosen == cancelOption:
		return prompt.SelectionResult{}, prompt.ErrCancelled
	case m.AllowCustom && chosen == customOption:
		value, err := m.customWith(p)
		if err != nil {
			return prompt.SelectionResult{}, err
		}
		return prompt.SelectionResult{Index: prompt.CustomIndex, Value: value}, nil
	}

	for i, label := range labels[:len(m.entries)] {
		if label == chosen {
			res := prompt.SelectionResult{Index: i, Value: m.entries[i]}
			return res, m.dispatch(res)
		}
	}
	return prompt.SelectionResult{}, errors.Wrapf(prompt.ErrUnrecognizedOption, "%q", chosen)
}

func (m *Menu) customWith(p ux.Prompter) (string, error) {
	if m.CustomPrompt != nil {
		return m.CustomPrompt()
	}
	return p.Input(customOption, func(s string) error {
		if s == "" {
			return errors.New("input cannot be empty")
		}
		return nil
	})
}

func (m *Menu) dispatch(res prompt.SelectionResult) error {
	entry, ok := res.Value.(Entry)
	if !ok || entry.Callback == nil {
		return nil
	}
	if err := entry.Callback(); err != nil {
		return errors.Wrapf(err, "menu entry %s", entry)
	}
	return nil
}
