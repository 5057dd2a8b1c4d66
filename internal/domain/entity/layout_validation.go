package entity

import "fmt"

// ValidationLimits holds the advisory thresholds for a layout.
type ValidationLimits struct {
	MaxDepth int
	MaxNodes int
}

// DefaultValidationLimits returns the recommended thresholds.
func DefaultValidationLimits() ValidationLimits {
	return ValidationLimits{MaxDepth: 10, MaxNodes: 50}
}

// ValidationResult collects the findings of a validation pass.
// Errors make the layout invalid; warnings are advisory.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{Valid: true, Errors: []string{}, Warnings: []string{}}
}

func (r *ValidationResult) addError(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ValidateTree checks a live tree: its structure, value ranges, advisory
// limits and the agreement between the tree and its panel index.
// It never mutates the tree.
func ValidateTree(t *Tree, limits ValidationLimits) ValidationResult {
	if t == nil {
		res := newValidationResult()
		res.addError("tree is nil")
		return *res
	}

	res := validateRecord(SnapshotFromTree(t, DefaultMinPanelSize), limits)

	reachable := make(map[string]struct{})
	for _, p := range t.FlatPanels() {
		reachable[p.ID()] = struct{}{}
		if t.index.Lookup(p.ID()) != p {
			res.addError("Panel %s is reachable but not indexed", p.ID())
		}
	}
	for _, id := range t.index.IDs() {
		if _, ok := reachable[id]; !ok {
			res.addError("Indexed panel %s is not reachable from the root", id)
		}
	}
	return *res
}

// ValidateRecord checks a persisted layout before it is loaded. Values that
// would be clamped on load are reported as warnings.
func ValidateRecord(rec *LayoutRecord, limits ValidationLimits) ValidationResult {
	if rec == nil {
		res := newValidationResult()
		res.addError("layout record is nil")
		return *res
	}
	res := validateRecord(rec, limits)
	if rec.Version != LayoutVersion {
		res.addError("Unsupported layout version %q (expected %q)", rec.Version, LayoutVersion)
	}
	if rec.MinPanelSize != 0 && !inRange(rec.MinPanelSize, MinNodeSize, MaxNodeSize) {
		res.addWarning("minPanelSize out of range: %g (expected %g-%g)", rec.MinPanelSize, MinNodeSize, MaxNodeSize)
	}
	return *res
}

func validateRecord(rec *LayoutRecord, limits ValidationLimits) *ValidationResult {
	res := newValidationResult()
	if rec.Root == nil {
		res.addWarning("Layout is empty")
		return res
	}

	v := &recordValidator{res: res, seen: make(map[string]struct{})}
	v.visit(rec.Root)

	if depth := recordDepth(rec.Root); limits.MaxDepth > 0 && depth > limits.MaxDepth {
		res.addWarning("Layout depth is very deep: %d levels (recommended <= %d)", depth, limits.MaxDepth)
	}
	if count := v.nodes; limits.MaxNodes > 0 && count > limits.MaxNodes {
		res.addWarning("Too many nodes: %d (recommended <= %d)", count, limits.MaxNodes)
	}
	return res
}

type recordValidator struct {
	res   *ValidationResult
	seen  map[string]struct{}
	nodes int
}

func (v *recordValidator) visit(n *NodeRecord) {
	if n == nil {
		v.res.addError("Found null node in tree")
		return
	}
	v.nodes++

	if n.ID == "" {
		v.res.addError("Node has empty ID")
	} else if _, dup := v.seen[n.ID]; dup {
		v.res.addError("Duplicate node ID %s", n.ID)
	} else {
		v.seen[n.ID] = struct{}{}
	}

	if n.MinSize != nil && !inRange(*n.MinSize, MinNodeSize, MaxNodeSize) {
		v.res.addWarning("Node %s minSize out of range: %g (expected %g-%g)", n.ID, *n.MinSize, MinNodeSize, MaxNodeSize)
	}

	switch n.Type {
	case RecordTypePanel:
		if n.Title == "" {
			v.res.addWarning("Panel %s has empty title", n.ID)
		}
		if n.Content == "" {
			v.res.addWarning("Panel %s has empty content", n.ID)
		}
		if n.First != nil || n.Second != nil {
			v.res.addError("Panel %s has child nodes", n.ID)
		}
	case RecordTypeContainer:
		if _, ok := ParseOrientation(n.Orientation); !ok {
			v.res.addError("Container %s has invalid orientation %q", n.ID, n.Orientation)
		}
		if n.SplitRatio != nil && !inRange(*n.SplitRatio, MinSplitRatio, MaxSplitRatio) {
			v.res.addWarning("Invalid split ratio in node %s: %g", n.ID, *n.SplitRatio)
		}
		if n.First == nil || n.Second == nil {
			v.res.addError("Split container %s missing child nodes", n.ID)
		}
		if n.First != nil {
			v.visit(n.First)
		}
		if n.Second != nil {
			v.visit(n.Second)
		}
	default:
		v.res.addError("Node %s has unknown type %q", n.ID, n.Type)
	}
}

func recordDepth(n *NodeRecord) int {
	if n == nil {
		return 0
	}
	if n.Type != RecordTypeContainer {
		return 1
	}
	return 1 + max(recordDepth(n.First), recordDepth(n.Second))
}

func inRange(v, minVal, maxVal float64) bool {
	return v >= minVal && v <= maxVal
}
