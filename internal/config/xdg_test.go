package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_HonorsEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cfg", "docklayout"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(base, "data", "docklayout"), dirs.DataHome)
	assert.Equal(t, filepath.Join(base, "state", "docklayout"), dirs.StateHome)

	layout, err := GetDefaultLayoutFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", "docklayout", "layout.json"), layout)

	db, err := GetDatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", "docklayout", "docklayout.sqlite"), db)

	logs, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "state", "docklayout", "logs"), logs)

	require.NoError(t, EnsureDirectories())
	info, err := os.Stat(dirs.DataHome)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "docklayout"), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
}

func TestGenerateSchemaFile_CustomSchema(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	type sample struct {
		Name string `json:"name" jsonschema:"description=Display name"`
	}
	path, err := GenerateSchemaFile(SchemaFor(&sample{}, "sample.schema.json", "Sample", "test"), "sample.schema.json")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Sample"`)
	assert.Contains(t, string(data), `"Display name"`)
}
