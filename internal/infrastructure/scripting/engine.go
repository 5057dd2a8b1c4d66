// Package scripting runs JavaScript layout scripts against a layout engine.
//
// Scripts see two globals:
//
//	layout.add(id?, title?, content?)                  -> panel id
//	layout.insert(id, target, direction, title?, content?) -> container id
//	layout.remove(id)
//	layout.ratio(containerId, ratio)                    -> true when the value changed
//	layout.minPanelSize(size?)                          -> stored size
//	layout.clear()
//	layout.dump()                                       -> text view
//	layout.panels()                                     -> ids, left to right
//	layout.count()                                      -> panel count
//	layout.find(id)                                     -> {id, title, content} or null
//	console.log / console.warn / console.error
//
// Engine errors are thrown as JS exceptions, so scripts may catch them.
package scripting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/logging"
	"github.com/grafana/sobek"
)

// Engine executes scripts against one layout use case.
type Engine struct {
	vm     *sobek.Runtime
	layout *usecase.ManageLayoutUseCase
	out    io.Writer
	ctx    context.Context
}

// New creates an engine with a fresh runtime. console.log writes to out;
// a nil out means os.Stdout.
func New(layout *usecase.ManageLayoutUseCase, out io.Writer) *Engine {
	if out == nil {
		out = os.Stdout
	}
	vm := sobek.New()

	e := &Engine{
		vm:     vm,
		layout: layout,
		out:    out,
		ctx:    context.Background(),
	}

	(&layoutAPI{e: e}).register(vm)
	(&consoleAPI{e: e}).register(vm)
	return e
}

// Run executes src. name labels stack traces. Canceling ctx interrupts the
// script at the next JS instruction.
func (e *Engine) Run(ctx context.Context, name, src string) error {
	log := logging.FromContext(ctx).With().Str("script", name).Logger()
	e.ctx = logging.WithContext(ctx, log)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	log.Debug().Msg("running layout script")
	_, err := e.vm.RunScript(name, src)
	e.vm.ClearInterrupt()
	if err != nil {
		var interrupted *sobek.InterruptedError
		if errors.As(err, &interrupted) {
			if cause, ok := interrupted.Value().(error); ok {
				return fmt.Errorf("script %s interrupted: %w", name, cause)
			}
		}
		return fmt.Errorf("script %s: %w", name, err)
	}

	log.Debug().Int("panels", e.layout.PanelCount()).Msg("layout script finished")
	return nil
}

// RunFile reads path and runs it.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return e.Run(ctx, path, string(src))
}

// throw aborts the current JS call with err as a catchable exception.
func (e *Engine) throw(err error) {
	panic(e.vm.NewGoError(err))
}
