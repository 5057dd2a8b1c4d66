package scripting

import (
	"fmt"
	"strings"

	"github.com/bnema/docklayout/internal/logging"
	"github.com/grafana/sobek"
)

// consoleAPI prints console.log to the engine output and routes warn and
// error through the logger.
type consoleAPI struct {
	e *Engine
}

func (c *consoleAPI) register(vm *sobek.Runtime) {
	console := vm.NewObject()
	_ = console.Set("log", c.log)
	_ = console.Set("warn", c.warn)
	_ = console.Set("error", c.errorFn)
	_ = vm.Set("console", console)
}

func (c *consoleAPI) log(call sobek.FunctionCall) sobek.Value {
	fmt.Fprintln(c.e.out, formatArgs(call.Arguments))
	return sobek.Undefined()
}

func (c *consoleAPI) warn(call sobek.FunctionCall) sobek.Value {
	logging.FromContext(c.e.ctx).Warn().Msg(formatArgs(call.Arguments))
	return sobek.Undefined()
}

func (c *consoleAPI) errorFn(call sobek.FunctionCall) sobek.Value {
	logging.FromContext(c.e.ctx).Error().Msg(formatArgs(call.Arguments))
	return sobek.Undefined()
}

func formatArgs(args []sobek.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
