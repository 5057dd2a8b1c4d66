package entity

import "errors"

// Layout errors. Callers match them with errors.Is; messages are wrapped with
// the offending id or field.
var (
	// ErrNodeNotFound means a target or container id does not resolve.
	ErrNodeNotFound = errors.New("node not found")
	// ErrPanelNotFound means a panel id is not in the panel index.
	ErrPanelNotFound = errors.New("panel not found")
	// ErrDuplicateID means an id is already present in the tree.
	ErrDuplicateID = errors.New("duplicate node id")
	// ErrInvalidStructure means a container was observed without two children,
	// or the index disagrees with the tree.
	ErrInvalidStructure = errors.New("invalid layout structure")
	// ErrUnsupportedVersion means a layout record carries a version other than LayoutVersion.
	ErrUnsupportedVersion = errors.New("unsupported layout version")
	// ErrMalformedRecord means a layout record has an unknown type tag or lacks a required field.
	ErrMalformedRecord = errors.New("malformed layout record")
	// ErrRemovalInProgress means a removal for the same panel id is already running.
	ErrRemovalInProgress = errors.New("panel removal already in progress")
	// ErrEmptyID means a node was given an empty id.
	ErrEmptyID = errors.New("empty node id")
	// ErrInvalidDirection means a direction outside left/right/top/bottom.
	ErrInvalidDirection = errors.New("invalid direction")
)
