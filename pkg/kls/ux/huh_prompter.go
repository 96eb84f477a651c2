package ux

import (
	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
)

// ErrAborted is returned when the user aborts a huh prompt (ctrl+c / esc).
var ErrAborted = errors.New("prompt aborted by user")

// HuhPrompter implements Prompter using charmbracelet/huh
type HuhPrompter struct{}

func NewHuhPrompter() Prompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) Select(message string, options []string) (string, error) {
	var result string

	err := huh.NewSelect[string]().
		Title(message).
		Options(huh.NewOptions(options...)...).
		Value(&result).
		Run()

	return result, translateHuhError(err)
}

func (p *HuhPrompter) Confirm(message string) (bool, error) {
	var result bool

	err := huh.NewConfirm().
		Title(message).
		Value(&result).
		Run()

	return result, translateHuhError(err)
}

func (p *HuhPrompter) Input(message string, validate func(string) error) (string, error) {
	var result string

	input := huh.NewInput().
		Title(message).
		Value(&result)
	if validate != nil {
		input = input.Validate(validate)
	}

	err := input.Run()

	return result, translateHuhError(err)
}

func translateHuhError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return errors.Wrap(err, "interactive prompt failed")
}
