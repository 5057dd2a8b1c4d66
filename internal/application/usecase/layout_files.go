package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/logging"
)

// ErrNoLayoutStore is returned by the file operations when the engine was
// built without WithLayoutStore.
var ErrNoLayoutStore = errors.New("no layout store configured")

// MarshalLayout encodes a record as indented JSON.
func MarshalLayout(rec *entity.LayoutRecord) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return append(data, '\n'), nil
}

// ParseLayout decodes a JSON layout. Syntax errors are reported as
// entity.ErrMalformedRecord.
func ParseLayout(data []byte) (*entity.LayoutRecord, error) {
	var rec entity.LayoutRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedRecord, err)
	}
	return &rec, nil
}

// SaveLayoutToFile writes the current layout to path through the store.
func (uc *ManageLayoutUseCase) SaveLayoutToFile(ctx context.Context, path string) error {
	if uc.store == nil {
		return ErrNoLayoutStore
	}
	log := logging.FromContext(ctx)

	data, err := MarshalLayout(uc.SaveLayout(ctx))
	if err != nil {
		return err
	}
	if err := uc.store.WriteText(ctx, path, data); err != nil {
		return fmt.Errorf("write layout %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("panels", uc.PanelCount()).Msg("layout saved")
	return nil
}

// LoadLayoutFromFile reads path through the store and replaces the layout.
// Read, parse and decode failures leave the current layout untouched.
func (uc *ManageLayoutUseCase) LoadLayoutFromFile(ctx context.Context, path string) error {
	if uc.store == nil {
		return ErrNoLayoutStore
	}

	data, err := uc.store.ReadText(ctx, path)
	if err != nil {
		return fmt.Errorf("read layout %s: %w", path, err)
	}
	rec, err := ParseLayout(data)
	if err != nil {
		return fmt.Errorf("parse layout %s: %w", path, err)
	}
	if err := uc.LoadLayout(ctx, rec); err != nil {
		return fmt.Errorf("load layout %s: %w", path, err)
	}
	return nil
}
