package scripting

import (
	"fmt"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/grafana/sobek"
)

type layoutAPI struct {
	e *Engine
}

func (l *layoutAPI) register(vm *sobek.Runtime) {
	obj := vm.NewObject()
	_ = obj.Set("add", l.add)
	_ = obj.Set("insert", l.insert)
	_ = obj.Set("remove", l.remove)
	_ = obj.Set("ratio", l.ratio)
	_ = obj.Set("minPanelSize", l.minPanelSize)
	_ = obj.Set("clear", l.clear)
	_ = obj.Set("dump", l.dump)
	_ = obj.Set("panels", l.panels)
	_ = obj.Set("count", l.count)
	_ = obj.Set("find", l.find)
	_ = vm.Set("layout", obj)
}

// optString returns the argument as a string, or "" when it is missing,
// undefined or null.
func optString(call sobek.FunctionCall, i int) string {
	v := call.Argument(i)
	if sobek.IsUndefined(v) || sobek.IsNull(v) {
		return ""
	}
	return v.String()
}

func (l *layoutAPI) add(call sobek.FunctionCall) sobek.Value {
	id := optString(call, 0)
	title := optString(call, 1)
	content := optString(call, 2)

	if id == "" {
		p, err := l.e.layout.CreatePanel(title, content)
		if err != nil {
			l.e.throw(err)
		}
		id = p.ID()
	}

	p, err := l.e.layout.AddPanel(l.e.ctx, id, title, content)
	if err != nil {
		l.e.throw(err)
	}
	return l.e.vm.ToValue(p.ID())
}

func (l *layoutAPI) insert(call sobek.FunctionCall) sobek.Value {
	direction, ok := entity.ParseDirection(optString(call, 2))
	if !ok {
		l.e.throw(fmt.Errorf("%w: %q", entity.ErrInvalidDirection, optString(call, 2)))
	}

	out, err := l.e.layout.InsertPanelAt(l.e.ctx, usecase.InsertPanelInput{
		ID:        optString(call, 0),
		TargetID:  optString(call, 1),
		Direction: direction,
		Title:     optString(call, 3),
		Content:   optString(call, 4),
	})
	if err != nil {
		l.e.throw(err)
	}
	return l.e.vm.ToValue(out.Container.ID())
}

func (l *layoutAPI) remove(call sobek.FunctionCall) sobek.Value {
	if err := l.e.layout.RemovePanel(l.e.ctx, optString(call, 0)); err != nil {
		l.e.throw(err)
	}
	return sobek.Undefined()
}

func (l *layoutAPI) ratio(call sobek.FunctionCall) sobek.Value {
	changed, err := l.e.layout.UpdateSplitRatio(l.e.ctx, optString(call, 0), call.Argument(1).ToFloat())
	if err != nil {
		l.e.throw(err)
	}
	return l.e.vm.ToValue(changed)
}

func (l *layoutAPI) minPanelSize(call sobek.FunctionCall) sobek.Value {
	if len(call.Arguments) == 0 || sobek.IsUndefined(call.Argument(0)) {
		return l.e.vm.ToValue(l.e.layout.MinPanelSize())
	}
	return l.e.vm.ToValue(l.e.layout.SetMinPanelSize(call.Argument(0).ToFloat()))
}

func (l *layoutAPI) clear(sobek.FunctionCall) sobek.Value {
	l.e.layout.Clear(l.e.ctx)
	return sobek.Undefined()
}

func (l *layoutAPI) dump(sobek.FunctionCall) sobek.Value {
	return l.e.vm.ToValue(l.e.layout.DumpAsText())
}

func (l *layoutAPI) panels(sobek.FunctionCall) sobek.Value {
	flat := l.e.layout.FlatPanelList()
	ids := make([]any, len(flat))
	for i, p := range flat {
		ids[i] = p.ID()
	}
	return l.e.vm.NewArray(ids...)
}

func (l *layoutAPI) count(sobek.FunctionCall) sobek.Value {
	return l.e.vm.ToValue(l.e.layout.PanelCount())
}

func (l *layoutAPI) find(call sobek.FunctionCall) sobek.Value {
	p := l.e.layout.FindPanel(optString(call, 0))
	if p == nil {
		return sobek.Null()
	}
	obj := l.e.vm.NewObject()
	_ = obj.Set("id", p.ID())
	_ = obj.Set("title", p.Title())
	_ = obj.Set("content", p.Content())
	return obj
}
