package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/docklayout/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func twoPanelRecord(t *testing.T) *entity.LayoutRecord {
	t.Helper()
	tree := entity.NewTree()
	require.NoError(t, tree.SetRootPanel(entity.NewPanel("a", "A", "one")))
	_, err := tree.Wrap("a", entity.NewPanel("b", "B", "two"), "node_1", entity.Vertical, false)
	require.NoError(t, err)
	return entity.SnapshotFromTree(tree, entity.DefaultMinPanelSize)
}

func TestLayoutSnapshotRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "docklayout.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLayoutSnapshotRepository(db)

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	snap := &entity.LayoutSnapshot{
		Name:      "work",
		Layout:    twoPanelRecord(t),
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, repo.Save(ctx, snap))
	assert.NotEmpty(t, snap.ID, "repository assigns an id")
	assert.Equal(t, 2, snap.PanelCount)

	got, err := repo.FindByName(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, 2, got.PanelCount)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Equal(t, snap.Layout, got.Layout)

	missing, err := repo.FindByName(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete(ctx, "work"))
	gone, err := repo.FindByName(ctx, "work")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestLayoutSnapshotRepository_SaveOverwritesByName(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "docklayout.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLayoutSnapshotRepository(db)

	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &entity.LayoutSnapshot{
		Name: "work", Layout: twoPanelRecord(t), CreatedAt: first, UpdatedAt: first,
	}))

	single := entity.NewTree()
	require.NoError(t, single.SetRootPanel(entity.NewPanel("solo", "Solo", "")))
	later := first.Add(time.Hour)
	require.NoError(t, repo.Save(ctx, &entity.LayoutSnapshot{
		Name:      "work",
		Layout:    entity.SnapshotFromTree(single, 200),
		CreatedAt: later,
		UpdatedAt: later,
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].PanelCount)
	assert.True(t, list[0].CreatedAt.Equal(first), "creation time survives an overwrite")
	assert.True(t, list[0].UpdatedAt.Equal(later))
}

func TestLayoutSnapshotRepository_ListNewestFirst(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "docklayout.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLayoutSnapshotRepository(db)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "newest", "middle"} {
		at := base.Add(time.Duration([]int{0, 2, 1}[i]) * time.Hour)
		require.NoError(t, repo.Save(ctx, &entity.LayoutSnapshot{
			Name: name, Layout: twoPanelRecord(t), CreatedAt: at, UpdatedAt: at,
		}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"newest", "middle", "old"}, names)
}

func TestLayoutSnapshotRepository_RejectsInvalid(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "docklayout.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLayoutSnapshotRepository(db)
	assert.Error(t, repo.Save(ctx, &entity.LayoutSnapshot{Name: " ", Layout: twoPanelRecord(t)}))
	assert.Error(t, repo.Save(ctx, &entity.LayoutSnapshot{Name: "x"}))
}
