package main

import (
	"github.com/go-go-golems/glazed/pkg/cmds/logging"
	"github.com/go-go-golems/klsframe/cmd/cmds"
	"github.com/go-go-golems/klsframe/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/carapace-sh/carapace"
	clay "github.com/go-go-golems/clay/pkg"
)

var rootCmd = &cobra.Command{
	Use:   "kls",
	Short: "Interactive prompts, menus and forms for the terminal",
	Long: `kls asks questions on the terminal and prints the answers, so shell scripts
can collect validated input without writing their own prompt loops.

Features:
- Validated string and number input with regular-expression whitelists
- Lists entered on one line or one element per line
- Numbered selection with cancel and custom-value options
- Menus whose entries run shell commands
- Forms of typed fields with a confirmable summary, saved as JSON or YAML

Prompts are written to stderr and answers to stdout. Cancelling a selection
exits with status 0 and prints nothing.

Examples:
  # Ask for a port number
  kls number --min 1 --max 65535

  # Pick a protocol
  proto=$(kls select tcp udp)

  # Fill in a form and keep the result
  kls form fill scan.yaml --save scan-result.yaml

  # Settings can be overridden from the environment
  KLS_UI=tui kls menu open ports.yaml
  `,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitLoggerFromViper()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	err := clay.InitViper("kls", rootCmd)
	if err != nil {
		output.PrintError("Failed to initialize configuration: %v", err)
		log.Fatal().Err(err).Msg("Failed to initialize Viper")
	}

	rootCmd.AddCommand(
		cmds.NewFormCommand(),
		cmds.NewMenuCommand(),
		cmds.NewSelectCommand(),
		cmds.NewInputCommand(),
		cmds.NewNumberCommand(),
		cmds.NewListCommand(),
		cmds.NewConfirmCommand(),
		cmds.NewConfigCommand(),
	)

	carapace.Gen(rootCmd)
}
