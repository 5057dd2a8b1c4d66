package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	sections := sectionHeaders(string(content))
	require.NotEmpty(t, sections)
	assert.IsNonDecreasing(t, sections)

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, *DefaultConfig(), decoded)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `[validation]
max_depth = 10

[layout]
autosave = true

  [logging.file]
  enabled = false

[logging]
level = 'info'
`
	result := sortTOMLSections(input)

	assert.Equal(t,
		[]string{"[layout]", "[logging]", "[logging.file]", "[validation]"},
		sectionHeaders(result))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.False(t, strings.HasSuffix(result, "\n\n"))
}

func TestSortTOMLSections_Empty(t *testing.T) {
	assert.Equal(t, "", sortTOMLSections(""))
}
