package cli

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/logging"
)

// logEventSink traces layout events at trace level.
type logEventSink struct {
	log *zerolog.Logger
}

func newLogEventSink(ctx context.Context) *logEventSink {
	return &logEventSink{log: logging.FromContext(ctx)}
}

func (s *logEventSink) OnStructureChanged() {
	s.log.Trace().Str("event", "structure_changed").Msg("layout event")
}

func (s *logEventSink) OnPanelCountChanged() {
	s.log.Trace().Str("event", "panel_count_changed").Msg("layout event")
}

func (s *logEventSink) OnPanelAdded(id string) {
	s.log.Trace().Str("event", "panel_added").Str("panel_id", id).Msg("layout event")
}

func (s *logEventSink) OnPanelRemoved(id string) {
	s.log.Trace().Str("event", "panel_removed").Str("panel_id", id).Msg("layout event")
}

var _ port.LayoutEventSink = (*logEventSink)(nil)
