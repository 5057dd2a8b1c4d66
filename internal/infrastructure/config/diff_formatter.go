package config

import (
	"fmt"
	"strings"

	"github.com/bnema/docklayout/internal/application/port"
)

// ConfigDiffFormatter implements port.DiffFormatter.
type ConfigDiffFormatter struct{}

// NewDiffFormatter creates a new ConfigDiffFormatter.
func NewDiffFormatter() *ConfigDiffFormatter {
	return &ConfigDiffFormatter{}
}

// FormatChangesAsDiff renders added keys with "+" and removed keys with "-".
func (*ConfigDiffFormatter) FormatChangesAsDiff(changes []port.KeyChange) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder
	sb.WriteString("Config migration changes:\n\n")
	for _, change := range changes {
		switch change.Type {
		case port.KeyChangeAdded:
			fmt.Fprintf(&sb, "  + %s = %s\n", change.Key, change.Value)
		case port.KeyChangeRemoved:
			fmt.Fprintf(&sb, "  - %s = %s (unknown)\n", change.Key, change.Value)
		}
	}
	return sb.String()
}
