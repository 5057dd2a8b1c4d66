package styles

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/entity"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// RenderPanelsTable writes panels in left-to-right order.
func RenderPanelsTable(w io.Writer, panels []*entity.Panel) {
	if len(panels) == 0 {
		_, _ = fmt.Fprintln(w, "(no panels)")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "ID", "Title", "Content", "Min size"})
	for i, p := range panels {
		t.AppendRow(table.Row{i + 1, p.ID(), p.Title(), p.Content(), formatSize(p.MinSize())})
	}
	t.Render()
}

// RenderSnapshotsTable writes stored snapshots, newest first.
func RenderSnapshotsTable(w io.Writer, snapshots []*entity.LayoutSnapshot) {
	if len(snapshots) == 0 {
		_, _ = fmt.Fprintln(w, "(no snapshots)")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Name", "Panels", "Created", "Updated"})
	for _, s := range snapshots {
		t.AppendRow(table.Row{
			s.Name,
			s.PanelCount,
			s.CreatedAt.Local().Format(time.DateTime),
			s.UpdatedAt.Local().Format(time.DateTime),
		})
	}
	t.Render()
}

// RenderStatsTable writes per-operation timings.
func RenderStatsTable(w io.Writer, stats []usecase.OperationStat) {
	if len(stats) == 0 {
		_, _ = fmt.Fprintln(w, "(no operations recorded)")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Operation", "Count", "Total", "Avg", "Min", "Max"})
	for _, s := range stats {
		t.AppendRow(table.Row{s.Name, s.Count, s.Total, s.Average(), s.Min, s.Max})
	}
	t.Render()
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
