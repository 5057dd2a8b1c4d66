package usecase_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/bnema/docklayout/internal/application/port"
	portmocks "github.com/bnema/docklayout/internal/application/port/mocks"
	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// recordingSink keeps every notification in arrival order.
type recordingSink struct {
	events []string
}

func (s *recordingSink) OnStructureChanged()      { s.events = append(s.events, "structure") }
func (s *recordingSink) OnPanelCountChanged()     { s.events = append(s.events, "count") }
func (s *recordingSink) OnPanelAdded(id string)   { s.events = append(s.events, "added:"+id) }
func (s *recordingSink) OnPanelRemoved(id string) { s.events = append(s.events, "removed:"+id) }

func (s *recordingSink) reset() { s.events = nil }

func (s *recordingSink) take() []string {
	events := s.events
	s.events = nil
	return events
}

func newEngine(sink port.LayoutEventSink, opts ...usecase.ManageLayoutOption) *usecase.ManageLayoutUseCase {
	return usecase.NewManageLayoutUseCase(sink, opts...)
}

// assertInvariants checks that no container is degenerate and that the index
// and the reachable panels agree.
func assertInvariants(t *testing.T, uc *usecase.ManageLayoutUseCase) {
	t.Helper()
	tree := uc.Tree()

	reachable := map[string]bool{}
	tree.Walk(func(n entity.Node, _ int) bool {
		switch v := n.(type) {
		case *entity.Container:
			assert.NotNil(t, v.First(), "container %s first child", v.ID())
			assert.NotNil(t, v.Second(), "container %s second child", v.ID())
		case *entity.Panel:
			reachable[v.ID()] = true
		}
		return true
	})

	for _, id := range tree.PanelIDs() {
		assert.True(t, reachable[id], "indexed panel %s must be reachable", id)
		assert.Equal(t, entity.NodeKindPanel, tree.FindNode(id).Kind())
	}
	assert.Len(t, reachable, uc.PanelCount())
	assert.True(t, uc.Validate().Valid, "validate: %v", uc.Validate().Errors)
}

func TestManageLayout_Scenario1_AddToEmptyTree(t *testing.T) {
	ctx := testContext()
	sink := &recordingSink{}
	uc := newEngine(sink)

	p, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)

	assert.Equal(t, "a", p.ID())
	assert.Same(t, p, uc.Tree().Root())
	assert.Equal(t, 1, uc.PanelCount())
	assert.Equal(t, []string{"structure", "count", "added:a"}, sink.events)
	assertInvariants(t, uc)
}

func TestManageLayout_Scenario2_AddGoesRight(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)

	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)

	root, ok := uc.Tree().Root().(*entity.Container)
	require.True(t, ok)
	assert.Equal(t, entity.Vertical, root.Orientation())
	assert.Equal(t, 0.5, root.SplitRatio())
	assert.Equal(t, "a", root.First().ID())
	assert.Equal(t, "b", root.Second().ID())
	assert.Equal(t, 2, uc.PanelCount())
	assertInvariants(t, uc)
}

func TestManageLayout_Scenario3_InsertLeftOfNestedTarget(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)

	out, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{
		ID: "c", Title: "C", Content: "c3", TargetID: "a", Direction: entity.DirectionLeft,
	})
	require.NoError(t, err)

	root := uc.Tree().Root().(*entity.Container)
	inner, ok := root.First().(*entity.Container)
	require.True(t, ok)
	assert.Same(t, out.Container, inner)
	assert.Equal(t, entity.Vertical, inner.Orientation())
	assert.Equal(t, "c", inner.First().ID())
	assert.Equal(t, "a", inner.Second().ID())
	assert.Equal(t, "b", root.Second().ID())
	assert.Equal(t, 3, uc.PanelCount())
	assertInvariants(t, uc)
}

func TestManageLayout_Scenario4_RemoveCollapsesRoot(t *testing.T) {
	ctx := testContext()
	sink := &recordingSink{}
	uc := newEngine(sink)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)
	sink.reset()

	require.NoError(t, uc.RemovePanel(ctx, "b"))

	root, ok := uc.Tree().Root().(*entity.Panel)
	require.True(t, ok, "container eliminated")
	assert.Equal(t, "a", root.ID())
	assert.Equal(t, 1, uc.PanelCount())
	assert.Nil(t, uc.FindPanel("b"))
	assert.Equal(t, []string{"structure", "count", "removed:b"}, sink.events)
	assertInvariants(t, uc)
}

func TestManageLayout_Scenario5_UpdateSplitRatio(t *testing.T) {
	ctx := testContext()
	sink := &recordingSink{}
	uc := newEngine(sink)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)
	containerID := uc.Tree().Root().ID()
	sink.reset()

	changed, err := uc.UpdateSplitRatio(ctx, containerID, 1.5)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0.9, uc.Tree().FindContainer(containerID).SplitRatio())
	assert.Equal(t, []string{"structure"}, sink.take())

	changed, err = uc.UpdateSplitRatio(ctx, containerID, 2.0)
	require.NoError(t, err)
	assert.False(t, changed, "clamps to the stored value")
	assert.Empty(t, sink.take())

	_, err = uc.UpdateSplitRatio(ctx, "nonexistent", 0.5)
	assert.ErrorIs(t, err, entity.ErrNodeNotFound)

	_, err = uc.UpdateSplitRatio(ctx, "a", 0.5)
	assert.ErrorIs(t, err, entity.ErrNodeNotFound, "a panel is not a container")
}

func TestManageLayout_Scenario6_VersionMismatchKeepsTree(t *testing.T) {
	ctx := testContext()
	sink := &recordingSink{}
	uc := newEngine(sink)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)
	before := uc.DumpAsText()
	sink.reset()

	err = uc.LoadLayout(ctx, &entity.LayoutRecord{
		Version: "1.0",
		Root:    &entity.NodeRecord{Type: "panel", ID: "z", Title: "Z"},
	})
	assert.ErrorIs(t, err, entity.ErrUnsupportedVersion)
	assert.Equal(t, before, uc.DumpAsText())
	assert.Nil(t, uc.FindPanel("z"))
	assert.Empty(t, sink.events)
}

func TestManageLayout_InsertRejectsWithoutMutation(t *testing.T) {
	ctx := testContext()
	sink := portmocks.NewMockLayoutEventSink(t)
	sink.EXPECT().OnStructureChanged().Return().Times(2)
	sink.EXPECT().OnPanelCountChanged().Return().Times(2)
	sink.EXPECT().OnPanelAdded(mock.Anything).Return().Times(2)

	uc := newEngine(sink)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)
	before := uc.DumpAsText()

	tests := []struct {
		name  string
		input usecase.InsertPanelInput
		want  error
	}{
		{"duplicate panel", usecase.InsertPanelInput{ID: "a", TargetID: "b", Direction: entity.DirectionTop}, entity.ErrDuplicateID},
		{"id of a container", usecase.InsertPanelInput{ID: "node_1", TargetID: "b", Direction: entity.DirectionTop}, entity.ErrDuplicateID},
		{"missing target", usecase.InsertPanelInput{ID: "x", TargetID: "zzz", Direction: entity.DirectionTop}, entity.ErrNodeNotFound},
		{"bad direction", usecase.InsertPanelInput{ID: "x", TargetID: "a", Direction: "diagonal"}, entity.ErrInvalidDirection},
		{"empty id", usecase.InsertPanelInput{TargetID: "a", Direction: entity.DirectionTop}, entity.ErrEmptyID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.InsertPanelAt(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, out)
			assert.Equal(t, before, uc.DumpAsText())
			assert.Equal(t, 2, uc.PanelCount())
		})
	}
}

func TestManageLayout_InsertDirections(t *testing.T) {
	tests := []struct {
		direction   entity.Direction
		orientation entity.Orientation
		newFirst    bool
	}{
		{entity.DirectionLeft, entity.Vertical, true},
		{entity.DirectionRight, entity.Vertical, false},
		{entity.DirectionTop, entity.Horizontal, true},
		{entity.DirectionBottom, entity.Horizontal, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.direction), func(t *testing.T) {
			ctx := testContext()
			uc := newEngine(nil)
			_, err := uc.AddPanel(ctx, "a", "A", "c1")
			require.NoError(t, err)

			out, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{
				ID: "n", Title: "N", Content: "cn", TargetID: "a", Direction: tt.direction,
			})
			require.NoError(t, err)

			c := out.Container
			assert.Same(t, c, uc.Tree().Root())
			assert.Equal(t, tt.orientation, c.Orientation())
			if tt.newFirst {
				assert.Equal(t, "n", c.First().ID())
			} else {
				assert.Equal(t, "n", c.Second().ID())
			}
		})
	}
}

func TestManageLayout_InsertAroundContainer(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)

	out, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{
		ID: "footer", Title: "Footer", Content: "f", TargetID: "node_1", Direction: entity.DirectionBottom,
	})
	require.NoError(t, err)

	assert.Same(t, out.Container, uc.Tree().Root())
	assert.Equal(t, "node_1", out.Container.First().ID())
	assert.Equal(t, "footer", out.Container.Second().ID())
	assertInvariants(t, uc)
}

func TestManageLayout_GeneratedIDsSkipExisting(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)

	err := uc.LoadLayout(ctx, &entity.LayoutRecord{
		Version: entity.LayoutVersion,
		Root: &entity.NodeRecord{
			Type: "container", ID: "node_1", Orientation: "vertical",
			First:  &entity.NodeRecord{Type: "panel", ID: "node_2", Title: "A"},
			Second: &entity.NodeRecord{Type: "panel", ID: "b", Title: "B"},
		},
	})
	require.NoError(t, err)

	out, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{ID: "c", TargetID: "b", Direction: entity.DirectionBottom})
	require.NoError(t, err)
	assert.Equal(t, "node_3", out.Container.ID())
}

func TestManageLayout_CustomIDGenerator(t *testing.T) {
	ctx := testContext()
	ids := []string{"", "a", "split-1"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	uc := newEngine(nil, usecase.WithIDGenerator(gen))
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)

	out, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{ID: "b", TargetID: "a", Direction: entity.DirectionRight})
	require.NoError(t, err)
	assert.Equal(t, "split-1", out.Container.ID(), "empty and taken ids are skipped")
}

func TestManageLayout_CreatePanelIsDetached(t *testing.T) {
	uc := newEngine(nil, usecase.WithMinPanelSize(220))

	p, err := uc.CreatePanel("Logs", "qrc:/Logs.qml")
	require.NoError(t, err)
	assert.Equal(t, "node_1", p.ID())
	assert.Equal(t, "Logs", p.Title())
	assert.Equal(t, 220.0, p.MinSize())
	assert.Nil(t, uc.FindPanel(p.ID()))
	assert.Equal(t, 0, uc.PanelCount())
}

func TestManageLayout_RemoveUnknownPanel(t *testing.T) {
	ctx := testContext()
	sink := portmocks.NewMockLayoutEventSink(t)
	uc := newEngine(sink)

	err := uc.RemovePanel(ctx, "ghost")
	assert.ErrorIs(t, err, entity.ErrPanelNotFound)
}

func TestManageLayout_RemoveLastPanelEmptiesTree(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)

	require.NoError(t, uc.RemovePanel(ctx, "a"))
	assert.True(t, uc.Tree().IsEmpty())
	assert.Equal(t, "Empty tree", uc.DumpAsText())
}

func TestManageLayout_RemovePromotesIntoGrandparent(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)
	for _, id := range []string{"a", "b"} {
		_, err := uc.AddPanel(ctx, id, id, "c")
		require.NoError(t, err)
	}
	_, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{ID: "c", TargetID: "b", Direction: entity.DirectionBottom})
	require.NoError(t, err)

	require.NoError(t, uc.RemovePanel(ctx, "c"))

	root := uc.Tree().Root().(*entity.Container)
	assert.Equal(t, "b", root.Second().ID(), "b back in the slot its wrapper occupied")
	assert.Nil(t, uc.Tree().FindNode("node_2"))
	assertInvariants(t, uc)
}

func TestManageLayout_RemovalGuardRejectsReentrantCall(t *testing.T) {
	ctx := testContext()
	sink := portmocks.NewMockLayoutEventSink(t)
	sink.EXPECT().OnStructureChanged().Return()
	sink.EXPECT().OnPanelCountChanged().Return()
	sink.EXPECT().OnPanelAdded(mock.Anything).Return()

	uc := newEngine(sink)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)

	var reentrant []error
	sink.EXPECT().OnPanelRemoved("b").Run(func(id string) {
		reentrant = append(reentrant, uc.RemovePanel(ctx, id), uc.RemovePanel(ctx, id))
	}).Return().Once()

	require.NoError(t, uc.RemovePanel(ctx, "b"))

	require.Len(t, reentrant, 2)
	for _, err := range reentrant {
		assert.ErrorIs(t, err, entity.ErrRemovalInProgress)
	}
	assert.Equal(t, 1, uc.PanelCount())
	assertInvariants(t, uc)

	err = uc.RemovePanel(ctx, "b")
	assert.ErrorIs(t, err, entity.ErrPanelNotFound, "guard released after completion")
}

func TestManageLayout_RemovalGuardIsPerID(t *testing.T) {
	ctx := testContext()
	sink := &recordingSink{}
	uc := newEngine(sink)
	for _, id := range []string{"a", "b", "c"} {
		_, err := uc.AddPanel(ctx, id, id, "x")
		require.NoError(t, err)
	}

	chained := &chainSink{uc: uc, ctx: ctx, from: "c", next: "b"}
	uc2 := newEngine(port.LayoutEventFanout{sink, chained})
	require.NoError(t, uc2.LoadLayout(ctx, uc.SaveLayout(ctx)))
	chained.uc = uc2
	sink.reset()

	require.NoError(t, uc2.RemovePanel(ctx, "c"))
	require.NoError(t, chained.err)

	assert.Equal(t, []string{"a"}, uc2.Tree().PanelIDs())
	assert.Equal(t, []string{
		"structure", "count",
		"structure", "count", "removed:b",
		"removed:c",
	}, sink.events, "nested removal notifies before the outer one finishes")
	assertInvariants(t, uc2)
}

// chainSink removes next when from is removed.
type chainSink struct {
	port.NopLayoutEventSink
	uc   *usecase.ManageLayoutUseCase
	ctx  context.Context
	from string
	next string
	err  error
}

func (s *chainSink) OnPanelCountChanged() {
	if s.uc.FindPanel(s.from) == nil && s.uc.FindPanel(s.next) != nil {
		s.err = s.uc.RemovePanel(s.ctx, s.next)
	}
}

func TestManageLayout_ClearSignalsOnlyOnChange(t *testing.T) {
	ctx := testContext()
	sink := &recordingSink{}
	uc := newEngine(sink)

	uc.Clear(ctx)
	assert.Empty(t, sink.take(), "clearing an empty tree is silent")

	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)
	tree := uc.Tree()
	sink.reset()

	uc.Clear(ctx)
	assert.Equal(t, []string{"structure", "count"}, sink.take())
	assert.True(t, uc.Tree().IsEmpty())
	assert.Same(t, tree, uc.Tree())
	assert.Equal(t, 0, uc.PanelCount())
}

func TestManageLayout_SaveLoadRoundTrip(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil, usecase.WithMinPanelSize(180))
	for _, id := range []string{"a", "b", "c"} {
		_, err := uc.AddPanel(ctx, id, "Title "+id, "content/"+id)
		require.NoError(t, err)
	}
	_, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{ID: "d", Title: "D", TargetID: "a", Direction: entity.DirectionTop})
	require.NoError(t, err)
	_, err = uc.UpdateSplitRatio(ctx, "node_1", 0.3)
	require.NoError(t, err)

	rec := uc.SaveLayout(ctx)
	assert.Equal(t, 180.0, rec.MinPanelSize)

	sink := &recordingSink{}
	restored := newEngine(sink)
	tree := restored.Tree()
	require.NoError(t, restored.LoadLayout(ctx, rec))

	assert.Same(t, tree, restored.Tree(), "tree pointer survives a load")
	assert.Equal(t, []string{"structure", "count"}, sink.events)
	assert.Equal(t, 180.0, restored.MinPanelSize())
	assert.Equal(t, rec, restored.SaveLayout(ctx))
	assert.Equal(t, uc.DumpAsText(), restored.DumpAsText())
	assertInvariants(t, restored)
}

func TestManageLayout_LoadMalformedKeepsTree(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	before := uc.SaveLayout(ctx)

	err = uc.LoadLayout(ctx, &entity.LayoutRecord{
		Version: entity.LayoutVersion,
		Root: &entity.NodeRecord{
			Type: "container", ID: "n", Orientation: "vertical",
			First:  &entity.NodeRecord{Type: "panel", ID: "x"},
			Second: &entity.NodeRecord{Type: "mystery", ID: "y"},
		},
	})
	assert.ErrorIs(t, err, entity.ErrMalformedRecord)
	assert.Equal(t, before, uc.SaveLayout(ctx))
	assert.NotNil(t, uc.FindPanel("a"))
	assert.Nil(t, uc.FindPanel("x"))
}

func TestManageLayout_FlatPanelList(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)
	for _, id := range []string{"a", "b"} {
		_, err := uc.AddPanel(ctx, id, id, "c")
		require.NoError(t, err)
	}
	_, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{ID: "c", TargetID: "b", Direction: entity.DirectionLeft})
	require.NoError(t, err)

	var ids []string
	for _, p := range uc.FlatPanelList() {
		ids = append(ids, p.ID())
	}
	assert.Equal(t, []string{"a", "c", "b"}, ids)
}

func TestManageLayout_MinPanelSize(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)
	assert.Equal(t, entity.DefaultMinPanelSize, uc.MinPanelSize())

	assert.Equal(t, entity.MaxNodeSize, uc.SetMinPanelSize(5000))
	assert.Equal(t, entity.MinNodeSize, uc.SetMinPanelSize(1))

	uc.SetMinPanelSize(300)
	p, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	assert.Equal(t, 300.0, p.MinSize())

	out, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{ID: "b", TargetID: "a", Direction: entity.DirectionRight})
	require.NoError(t, err)
	assert.Equal(t, 300.0, out.Container.MinSize())
}

func TestManageLayout_ValidateUsesLimits(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil, usecase.WithValidationLimits(entity.ValidationLimits{MaxDepth: 1, MaxNodes: 2}))
	for _, id := range []string{"a", "b"} {
		_, err := uc.AddPanel(ctx, id, id, "c")
		require.NoError(t, err)
	}

	res := uc.Validate()
	assert.True(t, res.Valid)
	assert.Len(t, res.Warnings, 2)
}

func TestManageLayout_StatsRecorded(t *testing.T) {
	ctx := testContext()
	uc := newEngine(nil)
	_, err := uc.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	_, err = uc.AddPanel(ctx, "b", "B", "c2")
	require.NoError(t, err)
	require.NoError(t, uc.RemovePanel(ctx, "b"))

	stats := map[string]int{}
	for _, s := range uc.Stats() {
		stats[s.Name] = s.Count
	}
	assert.Equal(t, 2, stats["addPanel"])
	assert.Equal(t, 1, stats["removePanel"])

	silent := newEngine(nil, usecase.WithOperationStats(nil))
	_, err = silent.AddPanel(ctx, "a", "A", "c1")
	require.NoError(t, err)
	assert.Empty(t, silent.Stats())
}

func TestManageLayout_RandomSequencesKeepInvariants(t *testing.T) {
	ctx := testContext()
	directions := []entity.Direction{
		entity.DirectionLeft, entity.DirectionRight, entity.DirectionTop, entity.DirectionBottom,
	}

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		uc := newEngine(nil)
		next := 0

		for step := 0; step < 60; step++ {
			ids := uc.Tree().PanelIDs()
			switch {
			case len(ids) == 0 || rng.Intn(3) > 0:
				next++
				id := fmt.Sprintf("p%d", next)
				if len(ids) == 0 {
					_, err := uc.AddPanel(ctx, id, id, "c")
					require.NoError(t, err)
					continue
				}
				// Target either a panel or any node, containers included.
				var targets []string
				uc.Tree().Walk(func(n entity.Node, _ int) bool {
					targets = append(targets, n.ID())
					return true
				})
				_, err := uc.InsertPanelAt(ctx, usecase.InsertPanelInput{
					ID:        id,
					Title:     id,
					Content:   "c",
					TargetID:  targets[rng.Intn(len(targets))],
					Direction: directions[rng.Intn(len(directions))],
				})
				require.NoError(t, err)
			default:
				require.NoError(t, uc.RemovePanel(ctx, ids[rng.Intn(len(ids))]))
			}
			assertInvariants(t, uc)
		}

		restored := newEngine(nil)
		require.NoError(t, restored.LoadLayout(ctx, uc.SaveLayout(ctx)), "seed %d", seed)
		assert.Equal(t, uc.SaveLayout(ctx), restored.SaveLayout(ctx), "seed %d", seed)
	}
}
