package cmds

import (
	"fmt"
	"io"

	"github.com/carapace-sh/carapace"
	"github.com/go-go-golems/klsframe/pkg/kls/config"
	"github.com/go-go-golems/klsframe/pkg/kls/form"
	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/go-go-golems/klsframe/pkg/kls/ux"
	"github.com/go-go-golems/klsframe/pkg/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewFormCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in and inspect forms",
		Long: `Work with forms described in YAML or JSON definition files.

A definition lists typed fields (string, number, list) with their
constraints. See "kls form fill --help" for an example.`,
	}

	cmd.AddCommand(
		newFormFillCommand(),
		newFormShowCommand(),
	)

	return cmd
}

type formFillOptions struct {
	compact      bool
	confirm      bool
	tui          bool
	save         string
	outputFormat string

	compactSet bool
	confirmSet bool
	tuiSet     bool
}

func newFormFillCommand() *cobra.Command {
	var opts formFillOptions

	cmd := &cobra.Command{
		Use:   "fill <definition>",
		Short: "Fill in a form and print the collected values",
		Long: `Ask every field of a form in order and print the collected record.

Example definition:

  title: Scan
  fields:
    - name: host
      pattern: '[a-z0-9.-]+'
    - name: ports
      kind: list
      element: number
      min: 1
      max: 65535

Examples:
  # Fill in a form on the console
  kls form fill scan.yaml

  # Use widgets, skip the final confirmation and save the result
  kls form fill scan.yaml --tui --confirm=false --save scan-result.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.compactSet = cmd.Flags().Changed("compact")
			opts.confirmSet = cmd.Flags().Changed("confirm")
			opts.tuiSet = cmd.Flags().Changed("tui")
			return finish(runFormFill(service.NewDeps(), cmd.OutOrStdout(), args[0], opts))
		},
	}

	cmd.Flags().BoolVar(&opts.compact, "compact", true, "Describe each field on a single line")
	cmd.Flags().BoolVar(&opts.confirm, "confirm", true, "Show a summary and ask for confirmation before accepting")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "Use interactive widgets instead of line prompts")
	cmd.Flags().StringVar(&opts.save, "save", "", "Save the result (.json, .yaml); bare names go to the results directory")
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", "yaml", "Output format (yaml, json)")

	carapace.Gen(cmd).FlagCompletion(carapace.ActionMap{
		"save":   ResultFileCompletion(),
		"output": OutputFormatCompletion(),
	})
	carapace.Gen(cmd).PositionalCompletion(DefinitionFileCompletion())

	return cmd
}

func loadForm(deps *service.Deps, path string) (*form.Form, error) {
	data, err := deps.Store().ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := form.ParseDefinition(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid definition %s", path)
	}
	f, err := def.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid definition %s", path)
	}
	return f, nil
}

func (o formFillOptions) resolve(settings *config.Settings) (form.FillOptions, bool) {
	fill := form.FillOptions{Compact: settings.Compact, Confirm: settings.ConfirmForms}
	if o.compactSet {
		fill.Compact = o.compact
	}
	if o.confirmSet {
		fill.Confirm = o.confirm
	}
	tui := settings.UI == config.UITUI
	if o.tuiSet {
		tui = o.tui
	}
	return fill, tui
}

func runFormFill(deps *service.Deps, out io.Writer, path string, opts formFillOptions) error {
	settings := loadSettings(deps)
	f, err := loadForm(deps, path)
	if err != nil {
		return err
	}

	fillOpts, tui := opts.resolve(settings)
	deps.Logger.Debug("Filling in form",
		ux.Field("form", f.Title),
		ux.Field("fields", f.Len()),
		ux.Field("tui", tui))

	var rec form.Record
	if tui {
		rec, err = f.FillInWith(deps.Prompter, fillOpts)
	} else {
		rec, err = f.FillIn(deps.Console(), fillOpts)
	}
	if err != nil {
		return err
	}

	doc := deps.ResultBuilder().Build(f.Title, f.Names(), rec)
	if opts.save != "" {
		target := resultPath(settings, opts.save)
		if err := deps.Store().SaveResult(target, doc); err != nil {
			return errors.Wrap(err, "failed to save result")
		}
		output.PrintSuccess("Saved result to %s", target)
	}

	return printDocument(out, doc.Values, opts.outputFormat)
}

func newFormShowCommand() *cobra.Command {
	var result string

	cmd := &cobra.Command{
		Use:   "show <definition>",
		Short: "Describe a form and optionally a saved result",
		Long: `Print the fields of a form definition. With --result, also print the
summary table of a result saved by "kls form fill --save".

Examples:
  kls form show scan.yaml
  kls form show scan.yaml --result scan-result.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormShow(service.NewDeps(), cmd.OutOrStdout(), args[0], result)
		},
	}

	cmd.Flags().StringVar(&result, "result", "", "Saved result to summarize")

	carapace.Gen(cmd).FlagCompletion(carapace.ActionMap{
		"result": ResultFileCompletion(),
	})
	carapace.Gen(cmd).PositionalCompletion(DefinitionFileCompletion())

	return cmd
}

func runFormShow(deps *service.Deps, out io.Writer, path, result string) error {
	f, err := loadForm(deps, path)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(out, f.Info()); err != nil {
		return err
	}
	if result == "" {
		return nil
	}

	doc, err := deps.Store().LoadResult(resultPath(loadSettings(deps), result))
	if err != nil {
		return err
	}
	if doc.Form != f.Title {
		output.PrintWarning("Result was recorded for form '%s'", doc.Form)
	}
	table, err := f.SummaryTable(doc.Values)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%s\n(filled at %s)\n", table, doc.FilledAt.Format("2006-01-02 15:04:05 MST"))
	return err
}
