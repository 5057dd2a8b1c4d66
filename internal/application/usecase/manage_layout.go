package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/logging"
)

// IDGenerator produces candidate node ids. Candidates that collide with a
// node already in the tree are skipped.
type IDGenerator func() string

const maxIDAttempts = 1000

// ManageLayoutUseCase owns one layout tree and runs every mutation on it.
// Events are delivered synchronously to the sink before a mutating call returns.
//
// It is not safe for concurrent use. Sinks may call back into it; removal of an
// id that is already being removed fails with entity.ErrRemovalInProgress.
type ManageLayoutUseCase struct {
	tree   *entity.Tree
	events port.LayoutEventSink
	store  port.LayoutStore
	stats  *OperationStats

	idGenerator  IDGenerator
	nextID       int
	minPanelSize float64
	limits       entity.ValidationLimits

	removing      map[string]struct{}
	warnedRemoval map[string]struct{}
}

// ManageLayoutOption customizes a ManageLayoutUseCase.
type ManageLayoutOption func(*ManageLayoutUseCase)

// WithIDGenerator replaces the default node_N counter.
func WithIDGenerator(gen IDGenerator) ManageLayoutOption {
	return func(uc *ManageLayoutUseCase) {
		if gen != nil {
			uc.idGenerator = gen
		}
	}
}

// WithMinPanelSize sets the minimum size given to new nodes.
func WithMinPanelSize(size float64) ManageLayoutOption {
	return func(uc *ManageLayoutUseCase) {
		uc.minPanelSize = entity.ClampNodeSize(size)
	}
}

// WithValidationLimits overrides the advisory depth and node-count thresholds.
func WithValidationLimits(limits entity.ValidationLimits) ManageLayoutOption {
	return func(uc *ManageLayoutUseCase) {
		uc.limits = limits
	}
}

// WithOperationStats shares a stats recorder. Passing nil disables timing.
func WithOperationStats(stats *OperationStats) ManageLayoutOption {
	return func(uc *ManageLayoutUseCase) {
		uc.stats = stats
	}
}

// WithLayoutStore enables SaveLayoutToFile and LoadLayoutFromFile.
func WithLayoutStore(store port.LayoutStore) ManageLayoutOption {
	return func(uc *ManageLayoutUseCase) {
		uc.store = store
	}
}

// NewManageLayoutUseCase creates an engine over an empty tree.
// A nil sink is replaced by port.NopLayoutEventSink.
func NewManageLayoutUseCase(events port.LayoutEventSink, opts ...ManageLayoutOption) *ManageLayoutUseCase {
	if events == nil {
		events = port.NopLayoutEventSink{}
	}
	uc := &ManageLayoutUseCase{
		tree:          entity.NewTree(),
		events:        events,
		stats:         NewOperationStats(0, 0),
		minPanelSize:  entity.DefaultMinPanelSize,
		limits:        entity.DefaultValidationLimits(),
		removing:      make(map[string]struct{}),
		warnedRemoval: make(map[string]struct{}),
	}
	uc.idGenerator = uc.counterID
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ManageLayoutUseCase) counterID() string {
	uc.nextID++
	return fmt.Sprintf("node_%d", uc.nextID)
}

// generateID returns an id not yet used by any node, and different from reserved.
func (uc *ManageLayoutUseCase) generateID(reserved string) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := uc.idGenerator()
		if id == "" || id == reserved {
			continue
		}
		if uc.tree.FindNode(id) == nil {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: no free node id after %d attempts", entity.ErrDuplicateID, maxIDAttempts)
}

// Tree exposes the live tree for read-only queries. The pointer stays valid
// across LoadLayout and Clear.
func (uc *ManageLayoutUseCase) Tree() *entity.Tree {
	return uc.tree
}

// MinPanelSize returns the size applied to new nodes and persisted as minPanelSize.
func (uc *ManageLayoutUseCase) MinPanelSize() float64 {
	return uc.minPanelSize
}

// SetMinPanelSize clamps and stores size, returning the stored value.
// Existing nodes keep their own minimum.
func (uc *ManageLayoutUseCase) SetMinPanelSize(size float64) float64 {
	uc.minPanelSize = entity.ClampNodeSize(size)
	return uc.minPanelSize
}

// Stats returns the timing aggregates recorded so far.
func (uc *ManageLayoutUseCase) Stats() []OperationStat {
	return uc.stats.Snapshot()
}

// CreatePanel builds a detached panel with a generated id. It is neither
// attached nor indexed.
func (uc *ManageLayoutUseCase) CreatePanel(title, content string) (*entity.Panel, error) {
	id, err := uc.generateID("")
	if err != nil {
		return nil, err
	}
	return uc.newPanel(id, title, content), nil
}

func (uc *ManageLayoutUseCase) newPanel(id, title, content string) *entity.Panel {
	p := entity.NewPanel(id, title, content)
	p.SetMinSize(uc.minPanelSize)
	return p
}

// AddPanel makes the panel the root of an empty tree, or inserts it to the
// right of the rightmost panel.
func (uc *ManageLayoutUseCase) AddPanel(ctx context.Context, id, title, content string) (*entity.Panel, error) {
	defer uc.stats.Track(ctx, "addPanel")()
	log := logging.FromContext(ctx)

	if id == "" {
		return nil, entity.ErrEmptyID
	}

	if !uc.tree.IsEmpty() {
		anchor := uc.tree.FindRightmostPanel()
		if anchor == nil {
			return nil, fmt.Errorf("%w: no panel to anchor on", entity.ErrInvalidStructure)
		}
		out, err := uc.insert(ctx, InsertPanelInput{
			ID:        id,
			Title:     title,
			Content:   content,
			TargetID:  anchor.ID(),
			Direction: entity.DirectionRight,
		})
		if err != nil {
			return nil, err
		}
		return out.Panel, nil
	}

	p := uc.newPanel(id, title, content)
	if err := uc.tree.SetRootPanel(p); err != nil {
		return nil, err
	}

	log.Info().Str("panel_id", id).Msg("panel added as root")
	uc.events.OnStructureChanged()
	uc.events.OnPanelCountChanged()
	uc.events.OnPanelAdded(id)
	return p, nil
}

// InsertPanelInput describes a panel to place next to an existing node.
type InsertPanelInput struct {
	ID        string
	Title     string
	Content   string
	TargetID  string
	Direction entity.Direction
}

// InsertPanelOutput holds the attached panel and the container that wraps it
// together with the target.
type InsertPanelOutput struct {
	Panel     *entity.Panel
	Container *entity.Container
}

// InsertPanelAt wraps the target in a new split holding the target and a new
// panel, ordered by direction. On failure the tree is unchanged.
func (uc *ManageLayoutUseCase) InsertPanelAt(ctx context.Context, input InsertPanelInput) (*InsertPanelOutput, error) {
	defer uc.stats.Track(ctx, "insertPanelAt")()
	return uc.insert(ctx, input)
}

func (uc *ManageLayoutUseCase) insert(ctx context.Context, input InsertPanelInput) (*InsertPanelOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("panel_id", input.ID).
		Str("target_id", input.TargetID).
		Str("direction", string(input.Direction)).
		Msg("inserting panel")

	if input.ID == "" {
		return nil, entity.ErrEmptyID
	}
	orientation, panelFirst, ok := input.Direction.Placement()
	if !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidDirection, input.Direction)
	}
	if uc.tree.FindNode(input.ID) != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrDuplicateID, input.ID)
	}
	if uc.tree.FindNode(input.TargetID) == nil {
		return nil, fmt.Errorf("%w: target %s", entity.ErrNodeNotFound, input.TargetID)
	}

	containerID, err := uc.generateID(input.ID)
	if err != nil {
		return nil, err
	}

	p := uc.newPanel(input.ID, input.Title, input.Content)
	container, err := uc.tree.Wrap(input.TargetID, p, containerID, orientation, panelFirst)
	if err != nil {
		return nil, err
	}
	container.SetMinSize(uc.minPanelSize)

	log.Info().
		Str("panel_id", input.ID).
		Str("container_id", containerID).
		Str("orientation", orientation.String()).
		Msg("panel inserted")

	uc.events.OnStructureChanged()
	uc.events.OnPanelCountChanged()
	uc.events.OnPanelAdded(input.ID)
	return &InsertPanelOutput{Panel: p, Container: container}, nil
}

// RemovePanel detaches the panel and promotes its sibling into the parent
// split's place. A second call for the same id made while the first is still
// running (from an event sink, for instance) fails with ErrRemovalInProgress.
func (uc *ManageLayoutUseCase) RemovePanel(ctx context.Context, id string) error {
	log := logging.FromContext(ctx)

	if _, busy := uc.removing[id]; busy {
		if _, warned := uc.warnedRemoval[id]; warned {
			log.Debug().Str("panel_id", id).Msg("removal already in progress")
		} else {
			uc.warnedRemoval[id] = struct{}{}
			log.Warn().Str("panel_id", id).Msg("removal already in progress, ignoring reentrant call")
		}
		return fmt.Errorf("%w: %s", entity.ErrRemovalInProgress, id)
	}

	defer uc.stats.Track(ctx, "removePanel")()

	uc.removing[id] = struct{}{}
	defer func() {
		delete(uc.removing, id)
		delete(uc.warnedRemoval, id)
	}()

	promoted, err := uc.tree.RemovePanel(id)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidStructure) {
			log.Error().Err(err).Str("panel_id", id).Msg("layout tree is inconsistent")
		}
		return err
	}

	ev := log.Info().Str("panel_id", id)
	if promoted != nil {
		ev = ev.Str("promoted_id", promoted.ID())
	}
	ev.Msg("panel removed")

	uc.events.OnStructureChanged()
	uc.events.OnPanelCountChanged()
	uc.events.OnPanelRemoved(id)
	return nil
}

// FindPanel returns the indexed panel, or nil.
func (uc *ManageLayoutUseCase) FindPanel(id string) *entity.Panel {
	return uc.tree.FindPanel(id)
}

// UpdateSplitRatio clamps ratio into range and stores it on the container.
// It reports whether the stored value changed; only a change is signalled.
func (uc *ManageLayoutUseCase) UpdateSplitRatio(ctx context.Context, containerID string, ratio float64) (bool, error) {
	defer uc.stats.Track(ctx, "updateSplitRatio")()

	c := uc.tree.FindContainer(containerID)
	if c == nil {
		return false, fmt.Errorf("%w: container %s", entity.ErrNodeNotFound, containerID)
	}
	if !c.SetSplitRatio(ratio) {
		return false, nil
	}

	logging.FromContext(ctx).Debug().
		Str("container_id", containerID).
		Float64("split_ratio", c.SplitRatio()).
		Msg("split ratio updated")
	uc.events.OnStructureChanged()
	return true, nil
}

// Clear drops every node. Clearing an empty tree is a silent no-op.
func (uc *ManageLayoutUseCase) Clear(ctx context.Context) {
	log := logging.FromContext(ctx)
	if uc.tree.IsEmpty() {
		log.Debug().Msg("clear on empty layout")
		return
	}

	count := uc.tree.IndexedPanelCount()
	uc.tree.Reset()
	log.Info().Int("panels", count).Msg("layout cleared")

	uc.events.OnStructureChanged()
	uc.events.OnPanelCountChanged()
}

// SaveLayout snapshots the tree into a versioned record.
func (uc *ManageLayoutUseCase) SaveLayout(ctx context.Context) *entity.LayoutRecord {
	defer uc.stats.Track(ctx, "saveLayout")()
	return entity.SnapshotFromTree(uc.tree, uc.minPanelSize)
}

// LoadLayout replaces the tree with the one described by rec. The record is
// fully decoded before anything is touched, so any error leaves the current
// layout in place.
func (uc *ManageLayoutUseCase) LoadLayout(ctx context.Context, rec *entity.LayoutRecord) error {
	defer uc.stats.Track(ctx, "loadLayout")()
	log := logging.FromContext(ctx)

	fresh, err := entity.TreeFromRecord(rec)
	if err != nil {
		log.Warn().Err(err).Msg("layout rejected")
		return err
	}

	uc.tree.Adopt(fresh)
	if rec.MinPanelSize != 0 {
		uc.minPanelSize = entity.ClampNodeSize(rec.MinPanelSize)
	}

	log.Info().Int("panels", uc.tree.IndexedPanelCount()).Msg("layout loaded")
	uc.events.OnStructureChanged()
	uc.events.OnPanelCountChanged()
	return nil
}

// DumpAsText renders the tree for humans.
func (uc *ManageLayoutUseCase) DumpAsText() string {
	return uc.tree.DumpAsText()
}

// FlatPanelList returns panels in left-to-right order.
func (uc *ManageLayoutUseCase) FlatPanelList() []*entity.Panel {
	return uc.tree.FlatPanels()
}

// PanelCount returns the number of indexed panels.
func (uc *ManageLayoutUseCase) PanelCount() int {
	return uc.tree.IndexedPanelCount()
}

// Validate checks the live tree against the configured limits.
func (uc *ManageLayoutUseCase) Validate() entity.ValidationResult {
	return entity.ValidateTree(uc.tree, uc.limits)
}
