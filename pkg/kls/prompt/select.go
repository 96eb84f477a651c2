package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/ux"
)

// CustomIndex marks a SelectionResult whose value was typed in by the user
// rather than picked from the candidates.
const CustomIndex = -1

// Candidate is one selectable entry.
type Candidate struct {
	Label string
	Value interface{}
}

// Candidates labels each value with its natural string form.
func Candidates(values ...interface{}) []Candidate {
	ret := make([]Candidate, len(values))
	for i, v := range values {
		ret[i] = Candidate{Label: FormatValue(v), Value: v}
	}
	return ret
}

type SelectOptions struct {
	Title        string
	EnableCustom bool
	// CustomPrompt obtains the custom value. Setting it implies EnableCustom.
	CustomPrompt func() (string, error)
	// Verbose echoes the chosen candidate.
	Verbose bool
}

// SelectionResult is the outcome of a selection round. Index is the
// zero-based position of the chosen candidate, or CustomIndex.
type SelectionResult struct {
	Index int
	Value interface{}
}

func (r SelectionResult) IsCustom() bool {
	return r.Index == CustomIndex
}

// Select renders a numbered list and reads the user's choice. Choosing
// "0. Cancel operation" returns ErrCancelled.
func (c *Console) Select(candidates []Candidate, opts SelectOptions) (SelectionResult, error) {
	enableCustom := opts.EnableCustom || opts.CustomPrompt != nil
	slots := len(candidates)
	if enableCustom {
		slots++
	}
	listing := renderSelection(opts.Title, candidates, enableCustom)

	for {
		c.term.Println(listing)
		raw, err := c.readLine("\nPlease select one: ")
		if err != nil {
			return SelectionResult{}, err
		}

		selection, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			c.logger.Debug("selection not recognized", ux.Field("input", raw))
			c.printError("Error. Option not recognized")
			continue
		}
		if selection == 0 {
			c.term.Println("Operation canceled. Exiting...")
			return SelectionResult{}, ErrCancelled
		}
		if selection < 0 || selection > slots {
			c.printError("Error. Option out of bounds. Please select a number within the list")
			continue
		}

		if enableCustom && selection == slots {
			value, err := c.customValue(opts.CustomPrompt)
			if err != nil {
				return SelectionResult{}, err
			}
			return SelectionResult{Index: CustomIndex, Value: value}, nil
		}

		chosen := candidates[selection-1]
		if opts.Verbose {
			c.term.Println(fmt.Sprintf("You selected: (%d) %s", selection, chosen.Label))
		}
		return SelectionResult{Index: selection - 1, Value: chosen.Value}, nil
	}
}

func (c *Console) customValue(customPrompt func() (string, error)) (string, error) {
	if customPrompt != nil {
		return customPrompt()
	}
	return c.Input(InputOptions{AllowEmpty: false})
}

func renderSelection(title string, candidates []Candidate, enableCustom bool) string {
	const indent = "  "
	if title == "" {
		title = "Available options"
	}
	lines := []string{title, ">", indent + "0. Cancel operation"}
	for i, candidate := range candidates {
		lines = append(lines, fmt.Sprintf("%s%d. %s", indent, i+1, candidate.Label))
	}
	if enableCustom {
		lines = append(lines, fmt.Sprintf("%s%d. Custom value", indent, len(candidates)+1))
	}
	lines = append(lines, ">")
	return strings.Join(lines, "\n")
}
