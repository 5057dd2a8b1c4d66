package entity

import (
	"errors"
	"strings"
	"time"
)

// ErrSnapshotNotFound means no snapshot is stored under the requested name.
var ErrSnapshotNotFound = errors.New("layout snapshot not found")

// LayoutSnapshot is a layout record saved under a user-chosen name.
type LayoutSnapshot struct {
	ID         string
	Name       string
	Layout     *LayoutRecord
	PanelCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the fields required before persisting.
func (s *LayoutSnapshot) Validate() error {
	if s == nil {
		return errors.New("snapshot is nil")
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("snapshot name is required")
	}
	if s.Layout == nil {
		return errors.New("snapshot layout is required")
	}
	return nil
}
