package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSkip, config.Library.Skip)
	assert.GreaterOrEqual(t, config.Library.Workers, 1)
	assert.Equal(t, "info", config.Log.Level)
	assert.Empty(t, config.BOM.IncludeColumns)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ptf.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[library]
root = "/cad/library"
workers = 0

[log]
level = "debug"

[bom]
part_number_column = "PN"
include_columns = ["DESCRIPTION"]
add_columns = ["Description"]

[format]
ensure_columns = ["STATUS"]
`), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/cad/library", config.Library.Root)
	assert.Equal(t, DefaultSkip, config.Library.Skip)
	assert.Equal(t, 1, config.Library.Workers)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "console", config.Log.Format)
	assert.Equal(t, "PN", config.BOM.PartNumberColumn)
	assert.Equal(t, []string{"STATUS"}, config.Format.EnsureColumns)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to load config")

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[library\n"), 0644))

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = NewLogger(LogConfig{Level: "loud"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
