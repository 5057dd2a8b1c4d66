package usecase

import (
	"context"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/logging"
)

// DetectChangesOutput holds the result of change detection.
type DetectChangesOutput struct {
	HasChanges bool
	Changes    []port.KeyChange
	// DiffText is a diff-like rendering of Changes.
	DiffText string
}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	AppliedKeys []string
	ConfigFile  string
}

// MigrateConfigUseCase brings an older config file up to the current key set.
type MigrateConfigUseCase struct {
	migrator      port.ConfigMigrator
	diffFormatter port.DiffFormatter
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator, diffFormatter port.DiffFormatter) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{
		migrator:      migrator,
		diffFormatter: diffFormatter,
	}
}

// DetectChanges reports what a migration would do without writing anything.
func (uc *MigrateConfigUseCase) DetectChanges(ctx context.Context) (*DetectChangesOutput, error) {
	log := logging.FromContext(ctx)

	changes, err := uc.migrator.DetectChanges(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("config change detection failed")
		return nil, err
	}

	return &DetectChangesOutput{
		HasChanges: len(changes) > 0,
		Changes:    changes,
		DiffText:   uc.diffFormatter.FormatChangesAsDiff(changes),
	}, nil
}

// Execute rewrites the config file when it differs from the current key set.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)
	configFile := uc.migrator.ConfigFile()

	applied, err := uc.migrator.Migrate(ctx)
	if err != nil {
		log.Error().Err(err).Str("config_file", configFile).Msg("config migration failed")
		return nil, err
	}
	if len(applied) == 0 {
		log.Debug().Msg("no migration needed")
		return &MigrateConfigOutput{ConfigFile: configFile}, nil
	}

	log.Info().
		Int("applied_keys", len(applied)).
		Str("config_file", configFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{
		AppliedKeys: applied,
		ConfigFile:  configFile,
	}, nil
}
