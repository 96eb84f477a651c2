package cmds

import (
	"io"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/go-go-golems/klsframe/pkg/kls/validate"
	"github.com/spf13/cobra"
)

func NewListCommand() *cobra.Command {
	var (
		opts     prompt.ListOptions
		nf       numberFlags
		patterns []string
		lines    bool
		numbers  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Ask for a list of values",
		Long: `Ask for several values, either on one line split by --sep or one per
line with --lines (an empty line finishes the list).

Examples:
  kls list --sep ";" --max 5
  kls list --lines --fixed 3
  kls list --numbers --min 1 --max 65535`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := service.NewDeps()
			compiled, err := validate.CompileAll(patterns...)
			if err != nil {
				return err
			}
			opts.Patterns = compiled
			if lines {
				opts.Separator = prompt.NewLine
			}
			if numbers {
				opts.Element = prompt.NumberElements
				opts.Number = nf.options(cmd.Flags(), deps)
			}
			return finish(runList(deps, cmd.OutOrStdout(), opts))
		},
	}

	cmd.Flags().StringVar(&opts.Prompt, "prompt", "", "Prompt text")
	cmd.Flags().StringVar(&opts.Separator, "list-sep", ",", "Element separator")
	cmd.Flags().BoolVar(&lines, "lines", false, "Ask one element per line")
	cmd.Flags().BoolVar(&numbers, "numbers", false, "Elements are numbers")
	cmd.Flags().StringArrayVar(&patterns, "pattern", nil, "Accepted regular expression for every element (repeatable)")
	cmd.Flags().IntVar(&opts.MaxSize, "max-size", 0, "Maximum number of elements")
	cmd.Flags().IntVar(&opts.FixedSize, "fixed", 0, "Exact number of elements")
	cmd.Flags().BoolVar(&opts.AllowRepeats, "repeats", false, "Keep repeated elements")
	cmd.Flags().BoolVar(&opts.AllowEmpty, "allow-empty", false, "Accept an empty list")
	cmd.Flags().BoolVar(&opts.Confirm, "confirm", false, "Ask for confirmation")
	nf.register(cmd.Flags(), false)

	return cmd
}

func runList(deps *service.Deps, out io.Writer, opts prompt.ListOptions) error {
	values, err := deps.Console().List(opts)
	if err != nil {
		return err
	}
	return printValue(out, values)
}
