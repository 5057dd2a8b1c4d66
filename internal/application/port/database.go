package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the snapshot database, opening it on first use.
// Commands that never touch snapshots never pay for the SQLite startup.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
