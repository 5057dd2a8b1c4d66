package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/repository"
	"github.com/bnema/docklayout/internal/logging"
	"github.com/google/uuid"
)

const (
	upsertSnapshotSQL = `
INSERT INTO layout_snapshots (id, name, layout, panel_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    layout      = excluded.layout,
    panel_count = excluded.panel_count,
    updated_at  = excluded.updated_at`

	selectSnapshotColumns = `SELECT id, name, layout, panel_count, created_at, updated_at FROM layout_snapshots`

	findSnapshotByNameSQL = selectSnapshotColumns + ` WHERE name = ?`
	listSnapshotsSQL      = selectSnapshotColumns + ` ORDER BY updated_at DESC, name ASC`
	deleteSnapshotSQL     = `DELETE FROM layout_snapshots WHERE name = ?`
)

type snapshotRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutSnapshotRepository stores snapshots in the layout_snapshots table.
func NewLayoutSnapshotRepository(db *sql.DB) repository.LayoutSnapshotRepository {
	return &snapshotRepo{db: db, now: time.Now}
}

func (r *snapshotRepo) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if err := snapshot.Validate(); err != nil {
		return err
	}

	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	now := r.now().UTC()
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = now
	}
	if snapshot.UpdatedAt.IsZero() {
		snapshot.UpdatedAt = now
	}
	snapshot.PanelCount = snapshot.Layout.CountPanels()

	layout, err := json.Marshal(snapshot.Layout)
	if err != nil {
		return fmt.Errorf("encode snapshot layout: %w", err)
	}

	log.Debug().Str("snapshot", snapshot.Name).Int("panels", snapshot.PanelCount).Msg("saving layout snapshot")

	_, err = r.db.ExecContext(ctx, upsertSnapshotSQL,
		snapshot.ID,
		snapshot.Name,
		string(layout),
		snapshot.PanelCount,
		snapshot.CreatedAt.UTC(),
		snapshot.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", snapshot.Name, err)
	}
	return nil
}

func (r *snapshotRepo) FindByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	row := r.db.QueryRowContext(ctx, findSnapshotByNameSQL, name)
	snapshot, err := scanSnapshot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return snapshot, nil
}

func (r *snapshotRepo) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, listSnapshotsSQL)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*entity.LayoutSnapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

func (r *snapshotRepo) Delete(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("snapshot", name).Msg("deleting layout snapshot")

	if _, err := r.db.ExecContext(ctx, deleteSnapshotSQL, name); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*entity.LayoutSnapshot, error) {
	var (
		snapshot entity.LayoutSnapshot
		layout   string
	)
	if err := row.Scan(
		&snapshot.ID,
		&snapshot.Name,
		&layout,
		&snapshot.PanelCount,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var rec entity.LayoutRecord
	if err := json.Unmarshal([]byte(layout), &rec); err != nil {
		return nil, fmt.Errorf("%w: snapshot %q: %v", entity.ErrMalformedRecord, snapshot.Name, err)
	}
	snapshot.Layout = &rec
	return &snapshot, nil
}
