package config

import (
	"testing"

	"github.com/go-go-golems/klsframe/pkg/kls/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_LoadDefaults(t *testing.T) {
	t.Parallel()

	svc := New(fs.NewMemFileSystem("/home/u"))
	settings, err := svc.Load()
	require.NoError(t, err)

	assert.Equal(t, "/home/u/kls-results", settings.ResultsDir)
	assert.Equal(t, UIConsole, settings.UI)
	assert.True(t, settings.Compact)
	assert.True(t, settings.ConfirmForms)
	assert.Equal(t, ".", settings.DecimalSeparator)
}

func TestService_LoadYAMLKeepsDefaults(t *testing.T) {
	t.Parallel()

	mem := fs.NewMemFileSystem("/home/u")
	require.NoError(t, mem.WriteFile("/home/u/.config/kls/config.yaml", []byte("ui: tui\ncompact: false\n"), 0644))

	settings, err := New(mem).Load()
	require.NoError(t, err)

	assert.Equal(t, UITUI, settings.UI)
	assert.False(t, settings.Compact)
	assert.True(t, settings.ConfirmForms)
	assert.Equal(t, "/home/u/kls-results", settings.ResultsDir)
}

func TestService_LoadJSON(t *testing.T) {
	t.Parallel()

	mem := fs.NewMemFileSystem("/home/u")
	require.NoError(t, mem.WriteFile("/home/u/.config/kls/config.json", []byte(`{"decimal_separator": ","}`), 0644))

	settings, err := New(mem).Load()
	require.NoError(t, err)
	assert.Equal(t, ",", settings.DecimalSeparator)
}

func TestService_LoadInvalid(t *testing.T) {
	t.Parallel()

	mem := fs.NewMemFileSystem("/home/u")
	require.NoError(t, mem.WriteFile("/home/u/.config/kls/config.yaml", []byte("ui: gui\n"), 0644))

	_, err := New(mem).Load()
	assert.Error(t, err)

	require.NoError(t, mem.WriteFile("/home/u/.config/kls/config.yaml", []byte("ui: [\n"), 0644))
	_, err = New(mem).Load()
	assert.Error(t, err)
}

func TestService_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	mem := fs.NewMemFileSystem("/home/u")
	svc := New(mem)

	settings, err := svc.Load()
	require.NoError(t, err)
	settings.UI = UITUI
	settings.ResultsDir = "/tmp/results"
	require.NoError(t, svc.Save(settings))
	assert.True(t, mem.Exists("/home/u/.config/kls/config.yaml"))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)

	settings.DecimalSeparator = ";"
	assert.Error(t, svc.Save(settings))
}
