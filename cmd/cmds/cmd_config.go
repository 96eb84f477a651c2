package cmds

import (
	"io"

	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/go-go-golems/klsframe/pkg/output"
	"github.com/spf13/cobra"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the kls settings file",
	}

	var outputFormat string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(service.NewDeps(), cmd.OutOrStdout(), outputFormat)
		},
	}
	showCmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format (yaml, json)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(service.NewDeps())
		},
	}

	cmd.AddCommand(showCmd, initCmd)
	return cmd
}

func runConfigShow(deps *service.Deps, out io.Writer, format string) error {
	return printDocument(out, loadSettings(deps), format)
}

func runConfigInit(deps *service.Deps) error {
	svc := deps.Config()
	path, err := svc.Path()
	if err != nil {
		return err
	}
	if deps.FS.Exists(path) {
		output.PrintInfo("Settings already exist at %s", path)
		return nil
	}
	settings, err := svc.Defaults()
	if err != nil {
		return err
	}
	if err := svc.Save(settings); err != nil {
		return err
	}
	output.PrintSuccess("Wrote default settings to %s", path)
	return nil
}
