package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/ux"
)

var (
	noAnswer  = regexp.MustCompile(`^(no|n)`)
	yesAnswer = regexp.MustCompile(`^(yes|y)`)
)

type ConfirmOptions struct {
	// Default is returned on empty input when AllowEmpty is set.
	Default    bool
	AllowEmpty bool
	// Shortened switches the hint from [YES/no] to [Y/n].
	Shortened bool
}

func DefaultConfirmOptions() ConfirmOptions {
	return ConfirmOptions{Default: true, AllowEmpty: true, Shortened: true}
}

func (o ConfirmOptions) hint() string {
	yes, no := "yes", "no"
	if o.Shortened {
		yes, no = "y", "n"
	}
	if o.Default {
		return fmt.Sprintf("[%s/%s]", strings.ToUpper(yes), no)
	}
	return fmt.Sprintf("[%s/%s]", strings.ToUpper(no), yes)
}

// Confirm echoes selection and asks whether to continue until a yes/no answer
// is given.
func (c *Console) Confirm(selection string, opts ConfirmOptions) (bool, error) {
	c.term.Println("You selected:")
	c.term.Println(Decorate(selection, 2, "*"))
	question := fmt.Sprintf(">> Do you want to continue? %s ", opts.hint())
	for {
		answer, err := c.readLine(question)
		if err != nil {
			return false, err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		switch {
		case answer == "":
			if opts.AllowEmpty {
				return opts.Default, nil
			}
			c.printError("Please provide an answer")
		case noAnswer.MatchString(answer):
			return false, nil
		case yesAnswer.MatchString(answer):
			return true, nil
		default:
			c.logger.Debug("unrecognized confirmation answer", ux.Field("answer", answer))
			c.printError(fmt.Sprintf("Option '%s' not recognized", answer))
		}
	}
}
