package cmds

import (
	"io"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/go-go-golems/klsframe/pkg/kls/validate"
	"github.com/spf13/cobra"
)

func NewInputCommand() *cobra.Command {
	var (
		opts     prompt.InputOptions
		patterns []string
	)

	cmd := &cobra.Command{
		Use:   "input",
		Short: "Ask for a single validated value",
		Long: `Ask for a value until it matches one of the --pattern regular expressions.
Patterns must match the whole answer.

Examples:
  kls input --prompt "Host: " --pattern '[a-z0-9.-]+'
  kls input --allow-empty --default localhost --confirm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return finish(runInput(service.NewDeps(), cmd.OutOrStdout(), opts, patterns))
		},
	}

	cmd.Flags().StringVar(&opts.Prompt, "prompt", "", "Prompt text")
	cmd.Flags().StringVar(&opts.ErrorMessage, "error-message", "", "Message shown for invalid answers")
	cmd.Flags().StringArrayVar(&patterns, "pattern", nil, "Accepted regular expression (repeatable)")
	cmd.Flags().BoolVar(&opts.AllowEmpty, "allow-empty", false, "Accept an empty answer")
	cmd.Flags().StringVar(&opts.Default, "default", "", "Value used for an empty answer")
	cmd.Flags().BoolVar(&opts.Confirm, "confirm", false, "Ask for confirmation")

	return cmd
}

func runInput(deps *service.Deps, out io.Writer, opts prompt.InputOptions, patterns []string) error {
	compiled, err := validate.CompileAll(patterns...)
	if err != nil {
		return err
	}
	opts.Patterns = compiled

	value, err := deps.Console().Input(opts)
	if err != nil {
		return err
	}
	return printValue(out, value)
}
