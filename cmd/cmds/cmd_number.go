package cmds

import (
	"io"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// numberFlags binds the numeric prompt flags shared by "number" and "list --numbers".
type numberFlags struct {
	min, max, def float64
	digits        int
	sep           string
}

func (n *numberFlags) register(flags *pflag.FlagSet, withDefault bool) {
	flags.Float64Var(&n.min, "min", 0, "Lower bound (inclusive)")
	flags.Float64Var(&n.max, "max", 0, "Upper bound (inclusive)")
	flags.IntVar(&n.digits, "digits", 0, "Decimal digits: 0 for integers, -1 for any")
	flags.StringVar(&n.sep, "sep", "", "Decimal separator ('.' or ','), defaults to the settings")
	if withDefault {
		flags.Float64Var(&n.def, "default", 0, "Value used for an empty answer")
	}
}

func (n *numberFlags) options(flags *pflag.FlagSet, deps *service.Deps) prompt.NumberOptions {
	opts := prompt.NumberOptions{
		DecimalDigits:    n.digits,
		DecimalSeparator: n.sep,
	}
	if flags.Changed("min") {
		opts.Min = prompt.Bound(n.min)
	}
	if flags.Changed("max") {
		opts.Max = prompt.Bound(n.max)
	}
	if flags.Lookup("default") != nil && flags.Changed("default") {
		opts.Default = prompt.Bound(n.def)
	}
	if !flags.Changed("sep") {
		opts.DecimalSeparator = loadSettings(deps).DecimalSeparator
	}
	return opts
}

func NewNumberCommand() *cobra.Command {
	var (
		nf      numberFlags
		text    string
		confirm bool
	)

	cmd := &cobra.Command{
		Use:   "number",
		Short: "Ask for an integer or decimal number",
		Long: `Ask for a number within optional bounds. Thousands separators are accepted
("1,234.5" with the default '.' decimal separator, "1.234,5" with ',').

Examples:
  kls number --min 1 --max 65535
  kls number --digits 2 --sep , --default 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := service.NewDeps()
			opts := nf.options(cmd.Flags(), deps)
			opts.Prompt = text
			opts.Confirm = confirm
			return finish(runNumber(deps, cmd.OutOrStdout(), opts))
		},
	}

	nf.register(cmd.Flags(), true)
	cmd.Flags().StringVar(&text, "prompt", "", "Prompt text")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Ask for confirmation")

	return cmd
}

func runNumber(deps *service.Deps, out io.Writer, opts prompt.NumberOptions) error {
	n, err := deps.Console().Number(opts)
	if err != nil {
		return err
	}
	return printValue(out, n)
}
