package entity

import "sort"

// PanelIndex maps panel ids to panels reachable from a tree's root.
// It never owns the panels; the tree does.
type PanelIndex struct {
	panels map[string]*Panel
}

// NewPanelIndex creates an empty index.
func NewPanelIndex() *PanelIndex {
	return &PanelIndex{panels: make(map[string]*Panel)}
}

func (idx *PanelIndex) register(p *Panel) {
	idx.panels[p.ID()] = p
}

func (idx *PanelIndex) unregister(id string) {
	delete(idx.panels, id)
}

func (idx *PanelIndex) reset() {
	idx.panels = make(map[string]*Panel)
}

// Lookup returns the panel registered under id, or nil.
func (idx *PanelIndex) Lookup(id string) *Panel {
	return idx.panels[id]
}

// Contains reports whether id is registered.
func (idx *PanelIndex) Contains(id string) bool {
	_, ok := idx.panels[id]
	return ok
}

// Len returns the number of registered panels.
func (idx *PanelIndex) Len() int {
	return len(idx.panels)
}

// IDs returns the registered ids in sorted order.
func (idx *PanelIndex) IDs() []string {
	ids := make([]string, 0, len(idx.panels))
	for id := range idx.panels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
