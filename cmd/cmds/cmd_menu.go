package cmds

import (
	"context"
	"io"

	"github.com/carapace-sh/carapace"
	"github.com/go-go-golems/klsframe/pkg/kls/config"
	"github.com/go-go-golems/klsframe/pkg/kls/menu"
	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewMenuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Open menus described in definition files",
	}

	cmd.AddCommand(newMenuOpenCommand())

	return cmd
}

func newMenuOpenCommand() *cobra.Command {
	var tui bool

	cmd := &cobra.Command{
		Use:   "open <definition>",
		Short: "Show a menu, run the chosen entry and print its value",
		Long: `Show the entries of a menu definition and let the user pick one.
Entries with a "run" command execute it through the shell once chosen.

Example definition:

  title: Port selection
  allow_custom: true
  entries:
    - value: "-p-"
      description: All ports
    - value: "--top-ports 1000"
      description: 1000 common ports
      run: echo scanning the top 1000 ports

Examples:
  kls menu open ports.yaml
  kls menu open ports.yaml --tui`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := service.NewDeps()
			useTUI := loadSettings(deps).UI == config.UITUI
			if cmd.Flags().Changed("tui") {
				useTUI = tui
			}
			return finish(runMenuOpen(cmd.Context(), deps, cmd.OutOrStdout(), args[0], useTUI))
		},
	}

	cmd.Flags().BoolVar(&tui, "tui", false, "Use an interactive widget instead of numbered options")

	carapace.Gen(cmd).PositionalCompletion(DefinitionFileCompletion())

	return cmd
}

func runMenuOpen(ctx context.Context, deps *service.Deps, out io.Writer, path string, tui bool) error {
	data, err := deps.Store().ReadFile(path)
	if err != nil {
		return err
	}
	def, err := menu.ParseDefinition(data)
	if err != nil {
		return errors.Wrapf(err, "invalid definition %s", path)
	}
	m, err := def.Build(ctx, deps.Runner, deps.Terminal)
	if err != nil {
		return err
	}

	var res prompt.SelectionResult
	if tui {
		res, err = m.OpenWith(deps.Prompter)
	} else {
		res, err = m.Open(deps.Console())
	}
	if err != nil {
		return err
	}

	deps.Logger.Debug("Menu entry chosen", ux.Field("index", res.Index), ux.Field("custom", res.IsCustom()))
	if entry, ok := res.Value.(menu.Entry); ok {
		return printValue(out, entry.Value)
	}
	return printValue(out, res.Value)
}
