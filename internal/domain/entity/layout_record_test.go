package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotFromTree_Empty(t *testing.T) {
	rec := entity.SnapshotFromTree(entity.NewTree(), 150)
	assert.Equal(t, entity.LayoutVersion, rec.Version)
	assert.Equal(t, 150.0, rec.MinPanelSize)
	assert.Nil(t, rec.Root)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"2.0","minPanelSize":150}`, string(data))
}

func TestSnapshotFromTree_JSONShape(t *testing.T) {
	tree := entity.NewTree()
	require.NoError(t, tree.SetRootPanel(entity.NewPanel("a", "A", "c1")))
	_, err := tree.Wrap("a", entity.NewPanel("b", "B", "c2"), "node_1", entity.Horizontal, false)
	require.NoError(t, err)

	data, err := json.Marshal(entity.SnapshotFromTree(tree, 150))
	require.NoError(t, err)

	want := `{
		"version": "2.0",
		"minPanelSize": 150,
		"root": {
			"type": "container", "id": "node_1", "orientation": "horizontal",
			"splitRatio": 0.5, "minSize": 150,
			"first":  {"type": "panel", "id": "a", "title": "A", "content": "c1", "canClose": true, "visible": true, "minSize": 150},
			"second": {"type": "panel", "id": "b", "title": "B", "content": "c2", "canClose": true, "visible": true, "minSize": 150}
		}
	}`
	assert.JSONEq(t, want, string(data))
}

func TestTreeFromRecord_RoundTrip(t *testing.T) {
	tree := buildTree(t)
	tree.FindContainer("node_1").SetSplitRatio(0.3)
	tree.FindPanel("c").SetVisible(false)
	tree.FindPanel("b").SetClosable(false)
	tree.FindPanel("a").SetMinSize(300)

	rec := entity.SnapshotFromTree(tree, 200)
	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded entity.LayoutRecord
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := entity.TreeFromRecord(&decoded)
	require.NoError(t, err)

	assert.Equal(t, rec, entity.SnapshotFromTree(restored, 200))
	assert.Equal(t, tree.DumpAsText(), restored.DumpAsText())
	assert.Equal(t, tree.PanelIDs(), restored.PanelIDs())
	assert.False(t, restored.FindPanel("c").Visible())
	assert.False(t, restored.FindPanel("b").Closable())
}

func TestTreeFromRecord_EmptyRoot(t *testing.T) {
	tree, err := entity.TreeFromRecord(&entity.LayoutRecord{Version: "2.0", MinPanelSize: 150})
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
}

func TestTreeFromRecord_Version(t *testing.T) {
	for _, version := range []string{"", "1.0", "2.1", "3.0"} {
		_, err := entity.TreeFromRecord(&entity.LayoutRecord{Version: version})
		assert.ErrorIs(t, err, entity.ErrUnsupportedVersion, "version %q", version)
	}
}

func TestTreeFromRecord_Defaults(t *testing.T) {
	raw := `{"version":"2.0","minPanelSize":120,"root":{
		"type":"container","id":"n","orientation":"vertical",
		"first":{"type":"panel","id":"a"},
		"second":{"type":"panel","id":"b","minSize":10}}}`

	var rec entity.LayoutRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	tree, err := entity.TreeFromRecord(&rec)
	require.NoError(t, err)

	c := tree.FindContainer("n")
	require.NotNil(t, c)
	assert.Equal(t, entity.DefaultSplitRatio, c.SplitRatio())
	assert.Equal(t, 120.0, c.MinSize())

	a := tree.FindPanel("a")
	assert.True(t, a.Visible())
	assert.True(t, a.Closable())
	assert.Equal(t, 120.0, a.MinSize())

	assert.Equal(t, entity.MinNodeSize, tree.FindPanel("b").MinSize(), "clamped on load")
}

func TestTreeFromRecord_ClampsLegacyRatio(t *testing.T) {
	ratio := 0.99
	rec := &entity.LayoutRecord{
		Version: "2.0",
		Root: &entity.NodeRecord{
			Type: "container", ID: "n", Orientation: "horizontal", SplitRatio: &ratio,
			First:  &entity.NodeRecord{Type: "panel", ID: "a"},
			Second: &entity.NodeRecord{Type: "panel", ID: "b"},
		},
	}
	tree, err := entity.TreeFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, 0.9, tree.FindContainer("n").SplitRatio())
}

func TestTreeFromRecord_Malformed(t *testing.T) {
	panel := func(id string) *entity.NodeRecord { return &entity.NodeRecord{Type: "panel", ID: id} }

	tests := []struct {
		name string
		root *entity.NodeRecord
		want error
	}{
		{
			name: "unknown type",
			root: &entity.NodeRecord{Type: "tabs", ID: "x"},
			want: entity.ErrMalformedRecord,
		},
		{
			name: "missing id",
			root: &entity.NodeRecord{Type: "panel"},
			want: entity.ErrMalformedRecord,
		},
		{
			name: "container missing second",
			root: &entity.NodeRecord{Type: "container", ID: "n", Orientation: "vertical", First: panel("a")},
			want: entity.ErrMalformedRecord,
		},
		{
			name: "bad orientation",
			root: &entity.NodeRecord{Type: "container", ID: "n", Orientation: "diagonal", First: panel("a"), Second: panel("b")},
			want: entity.ErrMalformedRecord,
		},
		{
			name: "deep malformed child",
			root: &entity.NodeRecord{
				Type: "container", ID: "n", Orientation: "vertical",
				First: panel("a"),
				Second: &entity.NodeRecord{
					Type: "container", ID: "m", Orientation: "horizontal",
					First: panel("b"), Second: &entity.NodeRecord{Type: "", ID: "c"},
				},
			},
			want: entity.ErrMalformedRecord,
		},
		{
			name: "duplicate id",
			root: &entity.NodeRecord{Type: "container", ID: "n", Orientation: "vertical", First: panel("a"), Second: panel("a")},
			want: entity.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := entity.TreeFromRecord(&entity.LayoutRecord{Version: "2.0", Root: tt.root})
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, tree)
		})
	}
}

func TestLayoutRecord_CountPanels(t *testing.T) {
	rec := entity.SnapshotFromTree(buildTree(t), 150)
	assert.Equal(t, 3, rec.CountPanels())

	var nilRec *entity.LayoutRecord
	assert.Equal(t, 0, nilRec.CountPanels())
}
