package prompt

import (
	"fmt"

	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/go-go-golems/klsframe/pkg/kls/validate"
	"github.com/pkg/errors"
)

const (
	defaultInputPrompt = "Please introduce a value"
	defaultInputError  = "Error. Invalid input"
)

// InputOptions configures a string prompt.
type InputOptions struct {
	Prompt       string
	ErrorMessage string
	// Patterns whitelists accepted answers. nil means unconstrained.
	Patterns   validate.Patterns
	AllowEmpty bool
	// Default replaces an empty answer when AllowEmpty is set.
	Default string
	Confirm bool
}

func (o InputOptions) promptText() string {
	if o.Prompt == "" {
		return defaultInputPrompt + ": "
	}
	return o.Prompt
}

func (o InputOptions) errorMessage() string {
	if o.ErrorMessage == "" {
		return defaultInputError
	}
	return o.ErrorMessage
}

// Input reads a single string value, re-asking until it passes the
// emptiness, validation and (optional) confirmation checks.
func (c *Console) Input(opts InputOptions) (string, error) {
	patterns := opts.Patterns
	if patterns == nil {
		patterns = validate.None()
	}
	for {
		value, err := c.readLine(opts.promptText())
		if err != nil {
			return "", err
		}

		if value == "" {
			if !opts.AllowEmpty {
				c.printError(fmt.Sprintf("%s (Input cannot be empty)", opts.errorMessage()))
				continue
			}
			value = opts.Default
		} else {
			ok, err := validate.Validate(value, patterns)
			if err != nil {
				return "", errors.Wrap(err, "failed to validate input")
			}
			if !ok {
				c.logger.Debug("input rejected", ux.Field("value", value), ux.Field("patterns", patterns.Strings()))
				c.printError(fmt.Sprintf("%s (Validation failed)", opts.errorMessage()))
				continue
			}
		}

		if opts.Confirm {
			ok, err := c.Confirm(value, DefaultConfirmOptions())
			if err != nil {
				return "", err
			}
			if !ok {
				continue
			}
		}
		return value, nil
	}
}
