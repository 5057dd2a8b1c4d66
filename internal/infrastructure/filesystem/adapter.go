package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Adapter implements port.LayoutStore on the OS filesystem.
// Reads take a shared lock and writes an exclusive lock on "<path>.lock",
// so two docklayout processes never interleave on the same layout file.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

// ReadText returns the whole file. A missing file yields an error matching fs.ErrNotExist.
func (a *Adapter) ReadText(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock, err := lockPath(path, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("layout file read")
	return data, nil
}

// WriteText replaces the file atomically: data goes to a temp file in the
// same directory, is synced, then renamed over path.
func (a *Adapter) WriteText(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create layout directory: %w", err)
	}

	unlock, err := lockPath(path, true)
	if err != nil {
		return err
	}
	defer unlock()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace layout file: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("layout file written")
	return nil
}

// Exists reports whether path exists.
func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

var _ port.LayoutStore = (*Adapter)(nil)
