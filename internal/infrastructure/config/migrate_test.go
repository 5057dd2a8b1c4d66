package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/docklayout/internal/application/port"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestMigrator_DetectChanges_MissingFile(t *testing.T) {
	m := NewMigrator(filepath.Join(t.TempDir(), "absent.toml"))

	changes, err := m.DetectChanges(context.Background())
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestMigrator_DetectChanges(t *testing.T) {
	file := writeTestConfig(t, `
[layout]
min_panel_size = 200
tab_width = 4

[logging]
level = "debug"
`)
	m := NewMigrator(file)

	changes, err := m.DetectChanges(context.Background())
	require.NoError(t, err)

	added := map[string]string{}
	var removed []string
	for _, c := range changes {
		switch c.Type {
		case port.KeyChangeAdded:
			added[c.Key] = c.Value
		case port.KeyChangeRemoved:
			removed = append(removed, c.Key)
		}
	}

	assert.Equal(t, []string{"layout.tab_width"}, removed)
	assert.Equal(t, "true", added["layout.autosave"])
	assert.Contains(t, added, "validation.max_depth")
	assert.NotContains(t, added, "layout.min_panel_size")
	assert.NotContains(t, added, "logging.level")
	assert.NotContains(t, added, "layout.path", "path keys are resolved at load time")
	assert.NotContains(t, added, "database.path")

	assert.Equal(t, port.KeyChangeAdded, changes[0].Type, "added keys sort first")
	assert.Equal(t, port.KeyChangeRemoved, changes[len(changes)-1].Type)
}

func TestMigrator_DetectChanges_InvalidTOML(t *testing.T) {
	m := NewMigrator(writeTestConfig(t, "[layout\n"))
	_, err := m.DetectChanges(context.Background())
	assert.Error(t, err)
}

func TestMigrator_Migrate(t *testing.T) {
	file := writeTestConfig(t, `
[layout]
min_panel_size = 200
tab_width = 4
`)
	m := NewMigrator(file)

	applied, err := m.Migrate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, applied, "layout.autosave")
	assert.Contains(t, applied, "(dropped: layout.tab_width)")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	var cfg Config
	require.NoError(t, toml.Unmarshal(data, &cfg))
	assert.Equal(t, 200.0, cfg.Layout.MinPanelSize, "user values survive")
	assert.Equal(t, DefaultConfig().Validation.MaxDepth, cfg.Validation.MaxDepth)
	assert.NotContains(t, string(data), "tab_width")

	again, err := m.DetectChanges(context.Background())
	require.NoError(t, err)
	assert.Empty(t, again, "a migrated file is complete")
}

func TestMigrator_Migrate_NothingToDo(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), file))
	before, err := os.ReadFile(file)
	require.NoError(t, err)

	applied, err := NewMigrator(file).Migrate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, applied)

	after, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestConfigDiffFormatter(t *testing.T) {
	f := NewDiffFormatter()
	assert.Equal(t, "No changes detected.", f.FormatChangesAsDiff(nil))

	out := f.FormatChangesAsDiff([]port.KeyChange{
		{Type: port.KeyChangeAdded, Key: "layout.autosave", Value: "true"},
		{Type: port.KeyChangeRemoved, Key: "layout.tab_width", Value: "4"},
	})
	assert.Contains(t, out, "  + layout.autosave = true\n")
	assert.Contains(t, out, "  - layout.tab_width = 4 (unknown)\n")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "null", formatValue(nil))
	assert.Equal(t, `""`, formatValue(""))
	assert.Equal(t, `"dark"`, formatValue("dark"))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "[2 items]", formatValue([]any{1, 2}))
}
