package system

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	t.Parallel()

	out, err := NewExecRunner().Run(context.Background(), "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", strings.TrimSpace(out))
}

func TestExecRunner_ExitError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	t.Parallel()

	_, err := NewExecRunner().Run(context.Background(), "exit 3")
	require.Error(t, err)
	assert.True(t, IsExitError(err))
}

func TestExecRunner_EmptyCommand(t *testing.T) {
	t.Parallel()

	_, err := NewExecRunner().Run(context.Background(), "  ")
	assert.Error(t, err)
}
