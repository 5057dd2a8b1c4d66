// Package entity contains domain entities representing the docking layout.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "math"

// Split ratio and size bounds. Every write to a node clamps into these ranges.
const (
	MinSplitRatio     = 0.1
	MaxSplitRatio     = 0.9
	DefaultSplitRatio = 0.5

	MinNodeSize         = 50.0
	MaxNodeSize         = 1000.0
	DefaultMinPanelSize = 150.0
)

// NodeKind tells the two node variants apart.
type NodeKind int

const (
	NodeKindPanel     NodeKind = iota // Leaf holding visible content
	NodeKindContainer                 // Split with exactly two children
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindPanel:
		return "panel"
	case NodeKindContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Orientation is the axis along which a container arranges its children.
type Orientation int

const (
	Horizontal Orientation = iota // Stacked top/bottom
	Vertical                      // Side by side
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation maps the persisted name to an Orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "horizontal":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	default:
		return Vertical, false
	}
}

// Direction indicates where a new panel goes relative to its target.
type Direction string

const (
	DirectionLeft   Direction = "left"
	DirectionRight  Direction = "right"
	DirectionTop    Direction = "top"
	DirectionBottom Direction = "bottom"
)

// Placement returns the container orientation for the direction and whether
// the new panel takes the first slot.
func (d Direction) Placement() (orientation Orientation, panelFirst bool, ok bool) {
	switch d {
	case DirectionLeft:
		return Vertical, true, true
	case DirectionRight:
		return Vertical, false, true
	case DirectionTop:
		return Horizontal, true, true
	case DirectionBottom:
		return Horizontal, false, true
	default:
		return Vertical, false, false
	}
}

// ParseDirection accepts the lowercase direction names.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(s)
	if _, _, ok := d.Placement(); !ok {
		return "", false
	}
	return d, true
}

// Slot addresses one of a container's two children.
type Slot int

const (
	SlotFirst Slot = iota
	SlotSecond
)

func (s Slot) String() string {
	if s == SlotFirst {
		return "first"
	}
	return "second"
}

// Other returns the opposite slot.
func (s Slot) Other() Slot {
	if s == SlotFirst {
		return SlotSecond
	}
	return SlotFirst
}

// Node is either a *Panel or a *Container.
type Node interface {
	ID() string
	Kind() NodeKind
	MinSize() float64
	SetMinSize(size float64) bool

	node()
}

// SameNode reports whether a and b refer to the same node. Identity is by id.
func SameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

// ClampSplitRatio bounds a ratio to [MinSplitRatio, MaxSplitRatio].
func ClampSplitRatio(ratio float64) float64 {
	return clampFloat64(ratio, MinSplitRatio, MaxSplitRatio)
}

// ClampNodeSize bounds a size to [MinNodeSize, MaxNodeSize].
func ClampNodeSize(size float64) float64 {
	return clampFloat64(size, MinNodeSize, MaxNodeSize)
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if math.IsNaN(v) {
		return minVal
	}
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// Panel is a leaf node representing one visible content area.
type Panel struct {
	id       string
	title    string
	content  string
	closable bool
	visible  bool
	minSize  float64
}

// NewPanel creates a visible, closable panel with the default minimum size.
func NewPanel(id, title, content string) *Panel {
	return &Panel{
		id:       id,
		title:    title,
		content:  content,
		closable: true,
		visible:  true,
		minSize:  DefaultMinPanelSize,
	}
}

func (p *Panel) node() {}

func (p *Panel) ID() string       { return p.id }
func (p *Panel) Kind() NodeKind   { return NodeKindPanel }
func (p *Panel) Title() string    { return p.title }
func (p *Panel) Content() string  { return p.content }
func (p *Panel) Closable() bool   { return p.closable }
func (p *Panel) Visible() bool    { return p.visible }
func (p *Panel) MinSize() float64 { return p.minSize }

// SetTitle updates the display title. Returns true if it changed.
func (p *Panel) SetTitle(title string) bool {
	if p.title == title {
		return false
	}
	p.title = title
	return true
}

// SetContent updates the content locator. Returns true if it changed.
func (p *Panel) SetContent(content string) bool {
	if p.content == content {
		return false
	}
	p.content = content
	return true
}

// SetClosable returns true if the flag changed.
func (p *Panel) SetClosable(closable bool) bool {
	if p.closable == closable {
		return false
	}
	p.closable = closable
	return true
}

// SetVisible returns true if the flag changed.
func (p *Panel) SetVisible(visible bool) bool {
	if p.visible == visible {
		return false
	}
	p.visible = visible
	return true
}

// SetMinSize clamps and stores the size. Returns true if the stored value changed.
func (p *Panel) SetMinSize(size float64) bool {
	clamped := ClampNodeSize(size)
	if p.minSize == clamped {
		return false
	}
	p.minSize = clamped
	return true
}

// Container splits its two children along an axis.
type Container struct {
	id          string
	orientation Orientation
	splitRatio  float64
	minSize     float64
	first       Node
	second      Node
}

// NewContainer creates a container owning first and second with an even split.
func NewContainer(id string, orientation Orientation, first, second Node) *Container {
	return &Container{
		id:          id,
		orientation: orientation,
		splitRatio:  DefaultSplitRatio,
		minSize:     DefaultMinPanelSize,
		first:       first,
		second:      second,
	}
}

func (c *Container) node() {}

func (c *Container) ID() string               { return c.id }
func (c *Container) Kind() NodeKind           { return NodeKindContainer }
func (c *Container) Orientation() Orientation { return c.orientation }
func (c *Container) SplitRatio() float64      { return c.splitRatio }
func (c *Container) MinSize() float64         { return c.minSize }
func (c *Container) First() Node              { return c.first }
func (c *Container) Second() Node             { return c.second }

// Child returns the node held in slot.
func (c *Container) Child(slot Slot) Node {
	if slot == SlotFirst {
		return c.first
	}
	return c.second
}

// SlotOf returns which slot holds the node with the given id.
func (c *Container) SlotOf(id string) (Slot, bool) {
	switch {
	case c.first != nil && c.first.ID() == id:
		return SlotFirst, true
	case c.second != nil && c.second.ID() == id:
		return SlotSecond, true
	default:
		return SlotFirst, false
	}
}

// SetSplitRatio clamps and stores the ratio. Returns true if the stored value changed.
func (c *Container) SetSplitRatio(ratio float64) bool {
	clamped := ClampSplitRatio(ratio)
	if c.splitRatio == clamped {
		return false
	}
	c.splitRatio = clamped
	return true
}

// SetMinSize clamps and stores the size. Returns true if the stored value changed.
func (c *Container) SetMinSize(size float64) bool {
	clamped := ClampNodeSize(size)
	if c.minSize == clamped {
		return false
	}
	c.minSize = clamped
	return true
}

// attach places node into slot, replacing whatever was there.
func (c *Container) attach(slot Slot, n Node) {
	if slot == SlotFirst {
		c.first = n
		return
	}
	c.second = n
}

// take removes and returns the node in slot, leaving it empty.
func (c *Container) take(slot Slot) Node {
	n := c.Child(slot)
	c.attach(slot, nil)
	return n
}

// complete reports whether both slots are occupied.
func (c *Container) complete() bool {
	return c.first != nil && c.second != nil
}
