package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/repository"
	"github.com/bnema/docklayout/internal/logging"
)

// ManageSnapshotsUseCase saves and restores named copies of a layout.
type ManageSnapshotsUseCase struct {
	repo   repository.LayoutSnapshotRepository
	layout *ManageLayoutUseCase
	now    func() time.Time
}

// NewManageSnapshotsUseCase creates the use case over the given engine.
func NewManageSnapshotsUseCase(repo repository.LayoutSnapshotRepository, layout *ManageLayoutUseCase) *ManageSnapshotsUseCase {
	return &ManageSnapshotsUseCase{repo: repo, layout: layout, now: time.Now}
}

// Save stores the current layout under name, replacing an older snapshot with
// the same name. The creation time of a replaced snapshot is kept.
func (uc *ManageSnapshotsUseCase) Save(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	log := logging.FromContext(ctx)
	name = strings.TrimSpace(name)

	existing, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find snapshot %q: %w", name, err)
	}

	now := uc.now().UTC()
	rec := uc.layout.SaveLayout(ctx)
	snap := &entity.LayoutSnapshot{
		Name:       name,
		Layout:     rec,
		PanelCount: rec.CountPanels(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if existing != nil {
		snap.ID = existing.ID
		snap.CreatedAt = existing.CreatedAt
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("save snapshot %q: %w", name, err)
	}

	log.Info().Str("snapshot", name).Int("panels", snap.PanelCount).Msg("layout snapshot saved")
	return snap, nil
}

// Restore replaces the live layout with the named snapshot. A snapshot that
// fails to decode leaves the live layout untouched.
func (uc *ManageSnapshotsUseCase) Restore(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	snap, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find snapshot %q: %w", name, err)
	}
	if snap == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrSnapshotNotFound, name)
	}
	if err := uc.layout.LoadLayout(ctx, snap.Layout); err != nil {
		return nil, fmt.Errorf("restore snapshot %q: %w", name, err)
	}

	logging.FromContext(ctx).Info().Str("snapshot", name).Msg("layout snapshot restored")
	return snap, nil
}

// List returns every stored snapshot.
func (uc *ManageSnapshotsUseCase) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	return uc.repo.List(ctx)
}

// Delete removes the named snapshot, failing when it does not exist.
func (uc *ManageSnapshotsUseCase) Delete(ctx context.Context, name string) error {
	snap, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("find snapshot %q: %w", name, err)
	}
	if snap == nil {
		return fmt.Errorf("%w: %s", entity.ErrSnapshotNotFound, name)
	}
	if err := uc.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	logging.FromContext(ctx).Info().Str("snapshot", name).Msg("layout snapshot deleted")
	return nil
}
