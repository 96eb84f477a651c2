package menu

import (
	"context"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/system"
	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EntryDefinition is the serialized form of an Entry. Run, when set, is a
// shell command executed when the entry is chosen.
type EntryDefinition struct {
	Value       string `yaml:"value" json:"value"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Run         string `yaml:"run,omitempty" json:"run,omitempty"`
}

// Definition describes a menu in YAML or JSON.
type Definition struct {
	Title       string            `yaml:"title" json:"title"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	AllowCustom bool              `yaml:"allow_custom,omitempty" json:"allow_custom,omitempty"`
	Entries     []EntryDefinition `yaml:"entries" json:"entries"`
}

// ParseDefinition decodes a YAML (or JSON) menu definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, "failed to parse menu definition")
	}
	return &def, nil
}

// Build assembles the Menu. Entries with a Run command get a callback that
// executes it through runner and prints its output on term.
func (d *Definition) Build(ctx context.Context, runner system.Runner, term ux.Terminal) (*Menu, error) {
	if len(d.Entries) == 0 {
		return nil, prompt.NewConstructionError("menu "+d.Title, "no entries defined")
	}

	m := New(d.Title, WithDescription(d.Description))
	m.AllowCustom = d.AllowCustom
	for i, ed := range d.Entries {
		if ed.Run != "" && runner == nil {
			return nil, prompt.NewConstructionError("menu "+d.Title, "entry %d runs a command but no runner is configured", i+1)
		}
		entry := Entry{Value: ed.Value, Description: ed.Description}
		if command := ed.Run; command != "" {
			entry.Callback = func() error {
				output, err := runner.Run(ctx, command)
				if output != "" {
					term.Print(ensureNewline(output))
				}
				return err
			}
		}
		m.AddEntries(entry)
	}
	return m, nil
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
