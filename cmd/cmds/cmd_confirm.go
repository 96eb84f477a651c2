package cmds

import (
	"io"

	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/spf13/cobra"
)

func NewConfirmCommand() *cobra.Command {
	var (
		def    bool
		strict bool
		long   bool
	)

	cmd := &cobra.Command{
		Use:   "confirm <text>",
		Short: "Ask a yes/no question about the given text",
		Long: `Echo the text and ask whether to continue. Prints "yes" or "no".

Examples:
  kls confirm "Delete 3 files"
  kls confirm --default=false --strict "Overwrite result"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := prompt.ConfirmOptions{Default: def, AllowEmpty: !strict, Shortened: !long}
			return finish(runConfirm(service.NewDeps(), cmd.OutOrStdout(), args[0], opts))
		},
	}

	cmd.Flags().BoolVar(&def, "default", true, "Answer used for an empty reply")
	cmd.Flags().BoolVar(&strict, "strict", false, "Require an explicit answer")
	cmd.Flags().BoolVar(&long, "long", false, "Show [YES/no] instead of [Y/n]")

	return cmd
}

func runConfirm(deps *service.Deps, out io.Writer, text string, opts prompt.ConfirmOptions) error {
	ok, err := deps.Console().Confirm(text, opts)
	if err != nil {
		return err
	}
	if ok {
		return printValue(out, "yes")
	}
	return printValue(out, "no")
}
