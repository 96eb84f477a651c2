package cmds

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-go-golems/klsframe/pkg/kls/config"
	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/go-go-golems/klsframe/pkg/kls/store"
	"github.com/go-go-golems/klsframe/pkg/output"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// loadSettings reads the settings file and applies KLS_* environment / viper
// overrides. It falls back to the defaults when the file is unusable.
func loadSettings(deps *service.Deps) *config.Settings {
	svc := deps.Config()
	settings, err := svc.Load()
	if err != nil {
		output.LogWarn(
			fmt.Sprintf("Ignoring settings file: %v", err),
			"Failed to load settings",
			"error", err,
		)
		settings, err = svc.Defaults()
		if err != nil {
			settings = &config.Settings{UI: config.UIConsole, DecimalSeparator: "."}
		}
	}

	overridden := *settings
	if viper.IsSet("ui") {
		overridden.UI = viper.GetString("ui")
	}
	if viper.IsSet("results_dir") {
		overridden.ResultsDir = viper.GetString("results_dir")
	}
	if viper.IsSet("decimal_separator") {
		overridden.DecimalSeparator = viper.GetString("decimal_separator")
	}
	if viper.IsSet("compact") {
		overridden.Compact = viper.GetBool("compact")
	}
	if viper.IsSet("confirm_forms") {
		overridden.ConfirmForms = viper.GetBool("confirm_forms")
	}
	if err := overridden.Validate(); err != nil {
		output.PrintWarning("Ignoring environment overrides: %v", err)
		return settings
	}
	return &overridden
}

// finish turns a cancelled prompt into a clean exit.
func finish(err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		log.Debug().Msg("Prompt cancelled by user")
		return nil
	}
	return err
}

func printValue(w io.Writer, v interface{}) error {
	_, err := fmt.Fprintln(w, prompt.FormatValue(v))
	return err
}

func printDocument(w io.Writer, v interface{}, format string) error {
	f := store.FormatYAML
	switch format {
	case "yaml", "":
	case "json":
		f = store.FormatJSON
	default:
		return errors.Errorf("unsupported output format %q, allowed: yaml | json", format)
	}
	data, err := store.Marshal(v, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// resultPath places bare file names in the configured results directory.
func resultPath(settings *config.Settings, path string) string {
	if !strings.ContainsRune(path, filepath.Separator) && settings.ResultsDir != "" {
		return filepath.Join(settings.ResultsDir, path)
	}
	return path
}
