package entity

import "fmt"

// LayoutVersion is the persisted format version. Loads require an exact match.
const LayoutVersion = "2.0"

// Node record type tags.
const (
	RecordTypePanel     = "panel"
	RecordTypeContainer = "container"
)

// LayoutRecord is the persisted form of a whole layout.
type LayoutRecord struct {
	Version      string      `json:"version" jsonschema:"enum=2.0"`
	MinPanelSize float64     `json:"minPanelSize" jsonschema:"minimum=50,maximum=1000"`
	Root         *NodeRecord `json:"root,omitempty"`
}

// NodeRecord captures one node. Panel fields are set for panels, container
// fields and children for containers. Optional values are pointers so a
// missing field can fall back to its default.
type NodeRecord struct {
	Type string `json:"type" jsonschema:"enum=panel,enum=container"`
	ID   string `json:"id" jsonschema:"minLength=1"`

	// Panel
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	CanClose *bool  `json:"canClose,omitempty"`
	Visible  *bool  `json:"visible,omitempty"`

	// Container
	Orientation string      `json:"orientation,omitempty" jsonschema:"enum=horizontal,enum=vertical"`
	SplitRatio  *float64    `json:"splitRatio,omitempty"`
	First       *NodeRecord `json:"first,omitempty"`
	Second      *NodeRecord `json:"second,omitempty"`

	MinSize *float64 `json:"minSize,omitempty"`
}

// SnapshotFromTree serializes the tree. A nil or empty tree yields a record
// without root.
func SnapshotFromTree(t *Tree, minPanelSize float64) *LayoutRecord {
	rec := &LayoutRecord{
		Version:      LayoutVersion,
		MinPanelSize: ClampNodeSize(minPanelSize),
	}
	if t != nil {
		rec.Root = snapshotNode(t.root)
	}
	return rec
}

func snapshotNode(n Node) *NodeRecord {
	switch v := n.(type) {
	case *Panel:
		return &NodeRecord{
			Type:     RecordTypePanel,
			ID:       v.id,
			Title:    v.title,
			Content:  v.content,
			CanClose: boolPtr(v.closable),
			Visible:  boolPtr(v.visible),
			MinSize:  float64Ptr(v.minSize),
		}
	case *Container:
		return &NodeRecord{
			Type:        RecordTypeContainer,
			ID:          v.id,
			Orientation: v.orientation.String(),
			SplitRatio:  float64Ptr(v.splitRatio),
			MinSize:     float64Ptr(v.minSize),
			First:       snapshotNode(v.first),
			Second:      snapshotNode(v.second),
		}
	default:
		return nil
	}
}

// TreeFromRecord rebuilds a tree from a record. The result is a fresh tree
// with its own index; nothing is returned unless the whole record is valid.
// Values are clamped as they are written.
func TreeFromRecord(rec *LayoutRecord) (*Tree, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrMalformedRecord)
	}
	if rec.Version != LayoutVersion {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrUnsupportedVersion, rec.Version, LayoutVersion)
	}

	defaultMin := DefaultMinPanelSize
	if rec.MinPanelSize != 0 {
		defaultMin = ClampNodeSize(rec.MinPanelSize)
	}

	t := NewTree()
	if rec.Root == nil {
		return t, nil
	}

	b := &treeBuilder{tree: t, seen: make(map[string]struct{}), defaultMin: defaultMin}
	root, err := b.build(rec.Root, "root")
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

type treeBuilder struct {
	tree       *Tree
	seen       map[string]struct{}
	defaultMin float64
}

func (b *treeBuilder) build(rec *NodeRecord, where string) (Node, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: missing node at %s", ErrMalformedRecord, where)
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("%w: node at %s has no id", ErrMalformedRecord, where)
	}
	if _, dup := b.seen[rec.ID]; dup {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
	}
	b.seen[rec.ID] = struct{}{}

	minSize := b.defaultMin
	if rec.MinSize != nil {
		minSize = *rec.MinSize
	}

	switch rec.Type {
	case RecordTypePanel:
		p := NewPanel(rec.ID, rec.Title, rec.Content)
		p.SetMinSize(minSize)
		if rec.CanClose != nil {
			p.SetClosable(*rec.CanClose)
		}
		if rec.Visible != nil {
			p.SetVisible(*rec.Visible)
		}
		b.tree.index.register(p)
		return p, nil

	case RecordTypeContainer:
		orientation, ok := ParseOrientation(rec.Orientation)
		if !ok {
			return nil, fmt.Errorf("%w: container %s has orientation %q", ErrMalformedRecord, rec.ID, rec.Orientation)
		}
		first, err := b.build(rec.First, rec.ID+".first")
		if err != nil {
			return nil, err
		}
		second, err := b.build(rec.Second, rec.ID+".second")
		if err != nil {
			return nil, err
		}
		c := NewContainer(rec.ID, orientation, first, second)
		c.SetMinSize(minSize)
		if rec.SplitRatio != nil {
			c.SetSplitRatio(*rec.SplitRatio)
		}
		return c, nil

	default:
		return nil, fmt.Errorf("%w: node %s has type %q", ErrMalformedRecord, rec.ID, rec.Type)
	}
}

// CountPanels returns the number of panel records under the root.
func (r *LayoutRecord) CountPanels() int {
	if r == nil {
		return 0
	}
	return countPanelRecords(r.Root)
}

func countPanelRecords(n *NodeRecord) int {
	if n == nil {
		return 0
	}
	if n.Type == RecordTypePanel {
		return 1
	}
	return countPanelRecords(n.First) + countPanelRecords(n.Second)
}

func boolPtr(v bool) *bool          { return &v }
func float64Ptr(v float64) *float64 { return &v }
