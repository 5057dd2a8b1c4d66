package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.InDelta(t, 150.0, mgr.viper.GetFloat64("layout.min_panel_size"), 0)
	assert.True(t, mgr.viper.GetBool("layout.autosave"))
	assert.Equal(t, 10, mgr.viper.GetInt("validation.max_depth"))
	assert.Equal(t, "#7aa2f7", mgr.viper.GetString("appearance.dark_palette.accent"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "cfg", "config.toml")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(root, "cfg", schemaFileName))

	cfg := mgr.Get()
	assert.InDelta(t, 150.0, cfg.Layout.MinPanelSize, 0)
	assert.Equal(t, filepath.Join(root, "data", "docklayout", "layout.json"), cfg.Layout.Path)
	assert.Equal(t, filepath.Join(root, "data", "docklayout", "docklayout.sqlite"), cfg.Database.Path)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_LoadReadsFileValues(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "config.toml")
	content := `[layout]
path = '/tmp/my-layout.json'
min_panel_size = 220.0

[appearance]
color_scheme = 'DARK'

[logging]
level = 'DEBUG'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "/tmp/my-layout.json", cfg.Layout.Path)
	assert.InDelta(t, 220.0, cfg.Layout.MinPanelSize, 0)
	assert.True(t, cfg.Layout.Autosave, "unset keys keep defaults")
	assert.Equal(t, ColorSchemeDark, cfg.Appearance.ColorScheme)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_EnvOverridesFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	t.Setenv("DOCKLAYOUT_LOG_LEVEL", "warn")
	t.Setenv("DOCKLAYOUT_LAYOUT", "/srv/layout.json")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/srv/layout.json", cfg.Layout.Path)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\nmin_panel_size = 10.0\n"), 0o644))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.min_panel_size")
}

func TestManager_SaveRoundTrip(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "config.toml")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.MinPanelSize = 300
	cfg.Validation.MaxNodes = 99
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.InDelta(t, 300.0, reloaded.Get().Layout.MinPanelSize, 0)
	assert.Equal(t, 99, reloaded.Get().Validation.MaxNodes)
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	root := isolateXDG(t)
	mgr, err := NewManagerForFile(filepath.Join(root, "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Logging.Format = "xml"
	assert.Error(t, mgr.Save(cfg))
	assert.Equal(t, "console", mgr.Get().Logging.Format)
}

func TestNormalizeConfig_ColorScheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.ColorScheme = ColorScheme("sepia")
	normalizeConfig(cfg)
	assert.Equal(t, ColorSchemeAuto, cfg.Appearance.ColorScheme)

	cfg.Appearance.ColorScheme = ColorScheme("Light")
	normalizeConfig(cfg)
	assert.Equal(t, ColorSchemeLight, cfg.Appearance.ColorScheme)
}
