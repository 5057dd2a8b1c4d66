package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/repository"
)

// LazyLayoutSnapshotRepository opens the database on its first call.
type LazyLayoutSnapshotRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutSnapshotRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutSnapshotRepository wraps provider in a snapshot repository.
func NewLazyLayoutSnapshotRepository(provider port.DatabaseProvider) repository.LayoutSnapshotRepository {
	return &LazyLayoutSnapshotRepository{provider: provider}
}

func (r *LazyLayoutSnapshotRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutSnapshotRepository(db)
	})
	return r.initErr
}

func (r *LazyLayoutSnapshotRepository) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, snapshot)
}

func (r *LazyLayoutSnapshotRepository) FindByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByName(ctx, name)
}

func (r *LazyLayoutSnapshotRepository) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyLayoutSnapshotRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}
