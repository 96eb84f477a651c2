package service

import (
	"io"
	"time"

	"github.com/go-go-golems/klsframe/pkg/kls/config"
	"github.com/go-go-golems/klsframe/pkg/kls/fs"
	"github.com/go-go-golems/klsframe/pkg/kls/prompt"
	"github.com/go-go-golems/klsframe/pkg/kls/store"
	"github.com/go-go-golems/klsframe/pkg/kls/system"
	"github.com/go-go-golems/klsframe/pkg/kls/ux"
)

// Deps contains all external dependencies for the commands
type Deps struct {
	FS       fs.FileSystem
	Terminal ux.Terminal
	Prompter ux.Prompter
	Logger   ux.Logger
	Runner   system.Runner
	Clock    func() time.Time
	Styles   ux.Styles
}

// NewDeps creates a new dependencies container with production implementations
func NewDeps() *Deps {
	return &Deps{
		FS:       fs.NewOSFileSystem(),
		Terminal: ux.NewStdTerminal(),
		Prompter: ux.NewHuhPrompter(),
		Logger:   ux.NewZerologLogger(),
		Runner:   system.NewExecRunner(),
		Clock:    time.Now,
		Styles:   ux.DefaultStyles(),
	}
}

// NewTestDeps creates dependencies suitable for testing. Debug logs go to logs.
func NewTestDeps(fileSystem fs.FileSystem, term ux.Terminal, prompter ux.Prompter, runner system.Runner, logs io.Writer) *Deps {
	return &Deps{
		FS:       fileSystem,
		Terminal: term,
		Prompter: prompter,
		Logger:   ux.NewStdLoggerWithWriter(logs, true),
		Runner:   runner,
		Clock:    func() time.Time { return time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC) },
		Styles:   ux.PlainStyles(),
	}
}

// Console builds a line prompt console over the terminal.
func (d *Deps) Console() *prompt.Console {
	return prompt.NewConsole(d.Terminal, prompt.WithLogger(d.Logger), prompt.WithStyles(d.Styles))
}

func (d *Deps) Config() *config.Service {
	return config.New(d.FS)
}

func (d *Deps) Store() *store.Service {
	return store.New(d.FS)
}

func (d *Deps) ResultBuilder() *store.Builder {
	return store.NewBuilder(d.Clock)
}
