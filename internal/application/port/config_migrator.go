package port

import "context"

// KeyChangeType classifies a difference between the user's config file and
// the current defaults.
type KeyChangeType int

const (
	// KeyChangeAdded is a default key missing from the user's file.
	KeyChangeAdded KeyChangeType = iota
	// KeyChangeRemoved is a key in the user's file that docklayout no longer reads.
	KeyChangeRemoved
)

// KeyChange is one detected difference, keyed in dot notation (e.g. "layout.min_panel_size").
type KeyChange struct {
	Type  KeyChangeType
	Key   string
	Value string
}

// ConfigMigrator compares a config file against the defaults and rewrites it.
type ConfigMigrator interface {
	// ConfigFile returns the file being migrated.
	ConfigFile() string
	// DetectChanges lists added and removed keys. A missing file yields no changes.
	DetectChanges(ctx context.Context) ([]KeyChange, error)
	// Migrate rewrites the file with missing defaults filled in and unknown
	// keys dropped, returning the keys it touched.
	Migrate(ctx context.Context) ([]string, error)
}

// DiffFormatter renders detected changes for display.
type DiffFormatter interface {
	FormatChangesAsDiff(changes []KeyChange) string
}
