package scripting_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/infrastructure/scripting"
	"github.com/bnema/docklayout/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func newEngine() (*scripting.Engine, *usecase.ManageLayoutUseCase, *bytes.Buffer) {
	layout := usecase.NewManageLayoutUseCase(port.NopLayoutEventSink{})
	var out bytes.Buffer
	return scripting.New(layout, &out), layout, &out
}

func TestEngine_BuildsLayout(t *testing.T) {
	engine, layout, out := newEngine()

	err := engine.Run(testContext(), "build.js", `
		layout.add("editor", "Editor", "main.go");
		const split = layout.insert("terminal", "editor", "bottom", "Terminal");
		layout.ratio(split, 0.7);
		layout.add("", "Outline");
		console.log(layout.panels().join(","), layout.count());
	`)
	require.NoError(t, err)

	assert.Equal(t, 3, layout.PanelCount())
	assert.Equal(t, "editor,terminal,node_2 3\n", out.String())

	c := layout.Tree().FindContainer("node_1")
	require.NotNil(t, c)
	assert.InDelta(t, 0.7, c.SplitRatio(), 1e-9)
}

func TestEngine_FindAndDump(t *testing.T) {
	engine, _, out := newEngine()

	err := engine.Run(testContext(), "find.js", `
		layout.add("a", "Alpha", "body");
		const p = layout.find("a");
		console.log(p.title, p.content, layout.find("zzz") === null);
		console.log(layout.dump());
	`)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Alpha body true")
	assert.Contains(t, out.String(), "Panel[a]: Alpha")
}

func TestEngine_ErrorsAreCatchable(t *testing.T) {
	engine, layout, out := newEngine()

	err := engine.Run(testContext(), "catch.js", `
		layout.add("a");
		try {
			layout.remove("missing");
		} catch (e) {
			console.log("caught:", e.message);
		}
		try {
			layout.insert("b", "a", "diagonal");
		} catch (e) {
			console.log("caught:", e.message);
		}
	`)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "caught: panel not found")
	assert.Contains(t, out.String(), "caught: invalid direction")
	assert.Equal(t, 1, layout.PanelCount())
}

func TestEngine_UncaughtErrorFailsRun(t *testing.T) {
	engine, _, _ := newEngine()

	err := engine.Run(testContext(), "dup.js", `
		layout.add("a");
		layout.add("a");
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup.js")
	assert.Contains(t, err.Error(), "duplicate node id")
}

func TestEngine_MinPanelSizeAndClear(t *testing.T) {
	engine, layout, out := newEngine()

	err := engine.Run(testContext(), "size.js", `
		console.log(layout.minPanelSize());
		console.log(layout.minPanelSize(5000));
		layout.add("a");
		layout.clear();
		console.log(layout.count());
	`)
	require.NoError(t, err)
	assert.Equal(t, "150\n1000\n0\n", out.String())
	assert.InDelta(t, 1000.0, layout.MinPanelSize(), 0)
}

func TestEngine_ContextCancelInterrupts(t *testing.T) {
	engine, _, _ := newEngine()

	ctx, cancel := context.WithTimeout(testContext(), 50*time.Millisecond)
	defer cancel()

	err := engine.Run(ctx, "loop.js", `for (;;) {}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEngine_RunFile(t *testing.T) {
	engine, layout, _ := newEngine()
	path := filepath.Join(t.TempDir(), "layout.js")
	require.NoError(t, os.WriteFile(path, []byte(`layout.add("x"); layout.add("y");`), 0o644))

	require.NoError(t, engine.RunFile(testContext(), path))
	assert.Equal(t, 2, layout.PanelCount())

	assert.Error(t, engine.RunFile(testContext(), filepath.Join(t.TempDir(), "missing.js")))
}
