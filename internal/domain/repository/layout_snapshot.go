package repository

import (
	"context"

	"github.com/bnema/docklayout/internal/domain/entity"
)

// LayoutSnapshotRepository persists named layout snapshots.
type LayoutSnapshotRepository interface {
	// Save inserts the snapshot or replaces the one with the same name.
	Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error

	// FindByName returns nil, nil when no snapshot has that name.
	FindByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error)

	// List returns every snapshot, most recently updated first.
	List(ctx context.Context) ([]*entity.LayoutSnapshot, error)

	// Delete removes the named snapshot. Unknown names are not an error.
	Delete(ctx context.Context, name string) error
}
