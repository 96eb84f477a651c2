package cmds

import (
	"strings"

	"github.com/carapace-sh/carapace"
	"github.com/go-go-golems/klsframe/pkg/kls/service"
	"github.com/go-go-golems/klsframe/pkg/kls/store"
)

// DefinitionFileCompletion completes form and menu definition files.
func DefinitionFileCompletion() carapace.Action {
	return carapace.ActionFiles(store.Extensions()...)
}

// ResultFileCompletion completes result files, offering the ones already
// saved in the results directory first.
func ResultFileCompletion() carapace.Action {
	return carapace.ActionCallback(func(ctx carapace.Context) carapace.Action {
		if strings.ContainsRune(ctx.Value, '/') {
			return carapace.ActionFiles(store.Extensions()...)
		}
		deps := service.NewDeps()
		settings := loadSettings(deps)
		files, err := deps.Store().List(settings.ResultsDir)
		if err != nil || len(files) == 0 {
			return carapace.ActionFiles(store.Extensions()...)
		}
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, strings.TrimPrefix(f, settings.ResultsDir+"/"))
		}
		return carapace.Batch(
			carapace.ActionValues(names...).Tag("saved results"),
			carapace.ActionFiles(store.Extensions()...),
		).ToA()
	})
}

// OutputFormatCompletion completes the --output values.
func OutputFormatCompletion() carapace.Action {
	return carapace.ActionValues("yaml", "json")
}
