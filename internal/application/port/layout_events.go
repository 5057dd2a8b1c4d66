package port

// LayoutEventSink receives change notifications from the layout engine.
// Calls are synchronous: the engine invokes the sink before the mutating
// operation returns, so a sink always observes the tree the event describes.
// A sink may call back into the engine.
type LayoutEventSink interface {
	// OnStructureChanged fires after any change to the tree shape or a split ratio.
	OnStructureChanged()
	// OnPanelCountChanged fires after the number of panels changed.
	OnPanelCountChanged()
	// OnPanelAdded fires after a panel was attached and indexed.
	OnPanelAdded(id string)
	// OnPanelRemoved fires after a panel was detached and unindexed.
	OnPanelRemoved(id string)
}

// NopLayoutEventSink ignores every notification.
type NopLayoutEventSink struct{}

func (NopLayoutEventSink) OnStructureChanged()   {}
func (NopLayoutEventSink) OnPanelCountChanged()  {}
func (NopLayoutEventSink) OnPanelAdded(string)   {}
func (NopLayoutEventSink) OnPanelRemoved(string) {}

// LayoutEventFanout forwards each notification to every sink, in order.
type LayoutEventFanout []LayoutEventSink

func (f LayoutEventFanout) OnStructureChanged() {
	for _, s := range f {
		s.OnStructureChanged()
	}
}

func (f LayoutEventFanout) OnPanelCountChanged() {
	for _, s := range f {
		s.OnPanelCountChanged()
	}
}

func (f LayoutEventFanout) OnPanelAdded(id string) {
	for _, s := range f {
		s.OnPanelAdded(id)
	}
}

func (f LayoutEventFanout) OnPanelRemoved(id string) {
	for _, s := range f {
		s.OnPanelRemoved(id)
	}
}
