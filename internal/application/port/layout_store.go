package port

import "context"

// LayoutStore reads and writes serialized layouts.
// Implementations decide what a path means (file, key, ...).
type LayoutStore interface {
	ReadText(ctx context.Context, path string) ([]byte, error)
	WriteText(ctx context.Context, path string, data []byte) error
}
