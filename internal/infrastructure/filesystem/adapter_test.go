package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "layout.json")
	a := New()

	require.NoError(t, a.WriteText(ctx, path, []byte(`{"version":1}`)))

	data, err := a.ReadText(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}

func TestAdapter_WriteReplacesContent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "layout.json")
	a := New()

	require.NoError(t, a.WriteText(ctx, path, []byte("first, and longer")))
	require.NoError(t, a.WriteText(ctx, path, []byte("second")))

	data, err := a.ReadText(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp files are cleaned up")
	}
}

func TestAdapter_ReadMissing(t *testing.T) {
	a := New()

	_, err := a.ReadText(context.Background(), filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = a.ReadText(context.Background(), filepath.Join(t.TempDir(), "no", "dir.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAdapter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := New()

	path := filepath.Join(t.TempDir(), "layout.json")
	assert.ErrorIs(t, a.WriteText(ctx, path, []byte("x")), context.Canceled)
	_, err := a.ReadText(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdapter_ConcurrentWritersLeaveWholeFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "layout.json")
	a := New()

	payloads := []string{"aaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbb", "cccccccccccccccc", "dddddddddddddddd"}
	var wg sync.WaitGroup
	for _, p := range payloads {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			assert.NoError(t, a.WriteText(ctx, path, []byte(p)))
		}(p)
	}
	wg.Wait()

	data, err := a.ReadText(ctx, path)
	require.NoError(t, err)
	assert.Contains(t, payloads, string(data))
}

func TestAdapter_Exists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := New()

	ok, err := a.Exists(ctx, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = a.Exists(ctx, dir)
	require.NoError(t, err)
	assert.True(t, ok)
}
