package system

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Runner executes shell commands on behalf of menu entries and other callers.
type Runner interface {
	// Run executes command through the platform shell and returns its combined output.
	Run(ctx context.Context, command string) (string, error)
}

// ExecRunner implements Runner using exec.Command
type ExecRunner struct {
	// Dir is the working directory, empty for the current one.
	Dir string
}

func NewExecRunner() Runner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", errors.New("empty command")
	}
	name, args := shellCommand(command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		if isExitError(err) {
			return string(output), errors.Wrapf(err, "command %q failed", command)
		}
		return string(output), errors.Wrapf(err, "failed to run %q", command)
	}
	return string(output), nil
}

func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}

// IsExitError reports whether err comes from a command that ran and exited non-zero.
func IsExitError(err error) bool {
	return isExitError(errors.Cause(err))
}

func isExitError(err error) bool {
	_, ok := err.(*exec.ExitError)
	return ok
}
