package cmds

import (
	"fmt"
	"io"

	"github.com/go-go-golems/klsframe/pkg/kls/config"
	"github.com/go-go-golems/klsframe/pkg/kls/menu"
	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/spf13/cobra"
)

type selectOptions struct {
	title   string
	custom  bool
	verbose bool
	tui     bool
}

func NewSelectCommand() *cobra.Command {
	var opts selectOptions

	cmd := &cobra.Command{
		Use:   "select <option>...",
		Short: "Pick one of the given options",
		Long: `Show the options as a numbered list and print the chosen one.
0 cancels, and --custom adds a last entry for typing any value.

Examples:
  kls select tcp udp sctp
  kls select --custom --title "Scan profile" quick full`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := service.NewDeps()
			if !cmd.Flags().Changed("tui") {
				opts.tui = loadSettings(deps).UI == config.UITUI
			}
			return finish(runSelect(deps, cmd.OutOrStdout(), args, opts))
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Title shown above the options")
	cmd.Flags().BoolVar(&opts.custom, "custom", false, "Allow typing a custom value")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Echo the selection")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "Use an interactive widget")

	return cmd
}

func runSelect(deps *service.Deps, out io.Writer, options []string, opts selectOptions) error {
	if opts.tui {
		m := menu.New(opts.title)
		m.AllowCustom = opts.custom
		for _, o := range options {
			m.AddEntry(o, "", nil)
		}
		res, err := m.OpenWith(deps.Prompter)
		if err != nil {
			return err
		}
		if entry, ok := res.Value.(menu.Entry); ok {
			if opts.verbose {
				deps.Terminal.Println(fmt.Sprintf("You selected: (%d) %s", res.Index+1, entry))
			}
			return printValue(out, entry.Value)
		}
		return printValue(out, res.Value)
	}

	values := make([]interface{}, len(options))
	for i, o := range options {
		values[i] = o
	}
	res, err := deps.Console().Select(prompt.Candidates(values...), prompt.SelectOptions{
		Title:        opts.title,
		EnableCustom: opts.custom,
		Verbose:      opts.verbose,
	})
	if err != nil {
		return err
	}
	return printValue(out, res.Value)
}
