package model

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/entity"
)

// ErrUnknownCommand is returned for a line whose first word is not a command.
var ErrUnknownCommand = errors.New("unknown command")

// CommandResult is the outcome of one shell line.
type CommandResult struct {
	Output  string
	Mutated bool
	Quit    bool
}

// Interpreter runs shell lines against a layout.
type Interpreter struct {
	layout *usecase.ManageLayoutUseCase
	save   func(ctx context.Context) error
}

// NewInterpreter creates an interpreter. save backs the "save" command and
// may be nil.
func NewInterpreter(layout *usecase.ManageLayoutUseCase, save func(ctx context.Context) error) *Interpreter {
	return &Interpreter{layout: layout, save: save}
}

const shellHelp = `commands:
  add [id] [title...]                  add a panel right of the rightmost one
  insert <id> <target> <dir> [title...] dir is left, right, top or bottom
  remove <id>                          remove a panel
  ratio <container> <0..1>             set a split ratio
  min [size]                           show or set the minimum panel size
  clear                                remove everything
  dump | panels | count | validate     inspect the layout
  save                                 write the layout file
  quit                                 leave the shell`

// Execute parses and runs line. Blank lines do nothing.
func (in *Interpreter) Execute(ctx context.Context, line string) (CommandResult, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return CommandResult{}, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "add":
		return in.add(ctx, args)
	case "insert":
		return in.insert(ctx, args)
	case "remove", "rm":
		return in.remove(ctx, args)
	case "ratio":
		return in.ratio(ctx, args)
	case "min":
		return in.minSize(args)
	case "clear":
		in.layout.Clear(ctx)
		return CommandResult{Output: "layout cleared", Mutated: true}, nil
	case "dump":
		return CommandResult{Output: in.layout.DumpAsText()}, nil
	case "panels":
		ids := make([]string, 0, in.layout.PanelCount())
		for _, p := range in.layout.FlatPanelList() {
			ids = append(ids, p.ID())
		}
		return CommandResult{Output: strings.Join(ids, " ")}, nil
	case "count":
		return CommandResult{Output: strconv.Itoa(in.layout.PanelCount())}, nil
	case "validate":
		return in.validate(), nil
	case "save":
		if in.save == nil {
			return CommandResult{}, errors.New("saving is not available")
		}
		if err := in.save(ctx); err != nil {
			return CommandResult{}, err
		}
		return CommandResult{Output: "layout saved"}, nil
	case "help", "?":
		return CommandResult{Output: shellHelp}, nil
	case "quit", "exit", "q":
		return CommandResult{Quit: true}, nil
	default:
		return CommandResult{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func (in *Interpreter) add(ctx context.Context, args []string) (CommandResult, error) {
	var id, title string
	if len(args) > 0 {
		id = args[0]
		title = strings.Join(args[1:], " ")
	}
	if id == "" {
		p, err := in.layout.CreatePanel("", "")
		if err != nil {
			return CommandResult{}, err
		}
		id = p.ID()
	}

	p, err := in.layout.AddPanel(ctx, id, title, "")
	if err != nil {
		return CommandResult{}, err
	}
	return CommandResult{Output: "added " + p.ID(), Mutated: true}, nil
}

func (in *Interpreter) insert(ctx context.Context, args []string) (CommandResult, error) {
	if len(args) < 3 {
		return CommandResult{}, errors.New("usage: insert <id> <target> <left|right|top|bottom> [title...]")
	}
	direction, ok := entity.ParseDirection(strings.ToLower(args[2]))
	if !ok {
		return CommandResult{}, fmt.Errorf("%w: %q", entity.ErrInvalidDirection, args[2])
	}

	out, err := in.layout.InsertPanelAt(ctx, usecase.InsertPanelInput{
		ID:        args[0],
		TargetID:  args[1],
		Direction: direction,
		Title:     strings.Join(args[3:], " "),
	})
	if err != nil {
		return CommandResult{}, err
	}
	return CommandResult{
		Output:  fmt.Sprintf("inserted %s in %s", out.Panel.ID(), out.Container.ID()),
		Mutated: true,
	}, nil
}

func (in *Interpreter) remove(ctx context.Context, args []string) (CommandResult, error) {
	if len(args) != 1 {
		return CommandResult{}, errors.New("usage: remove <id>")
	}
	if err := in.layout.RemovePanel(ctx, args[0]); err != nil {
		return CommandResult{}, err
	}
	return CommandResult{Output: "removed " + args[0], Mutated: true}, nil
}

func (in *Interpreter) ratio(ctx context.Context, args []string) (CommandResult, error) {
	if len(args) != 2 {
		return CommandResult{}, errors.New("usage: ratio <container> <value>")
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return CommandResult{}, fmt.Errorf("invalid ratio %q: %w", args[1], err)
	}

	changed, err := in.layout.UpdateSplitRatio(ctx, args[0], value)
	if err != nil {
		return CommandResult{}, err
	}
	if !changed {
		return CommandResult{Output: "ratio unchanged"}, nil
	}
	ratio := in.layout.Tree().FindContainer(args[0]).SplitRatio()
	return CommandResult{
		Output:  fmt.Sprintf("%s ratio %s", args[0], strconv.FormatFloat(ratio, 'g', -1, 64)),
		Mutated: true,
	}, nil
}

func (in *Interpreter) minSize(args []string) (CommandResult, error) {
	if len(args) == 0 {
		return CommandResult{Output: strconv.FormatFloat(in.layout.MinPanelSize(), 'g', -1, 64)}, nil
	}
	size, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return CommandResult{}, fmt.Errorf("invalid size %q: %w", args[0], err)
	}
	stored := in.layout.SetMinPanelSize(size)
	return CommandResult{Output: "min panel size " + strconv.FormatFloat(stored, 'g', -1, 64), Mutated: true}, nil
}

func (in *Interpreter) validate() CommandResult {
	res := in.layout.Validate()
	lines := make([]string, 0, 1+len(res.Errors)+len(res.Warnings))
	if res.Valid {
		lines = append(lines, "valid")
	} else {
		lines = append(lines, "invalid")
	}
	for _, e := range res.Errors {
		lines = append(lines, "error: "+e)
	}
	for _, w := range res.Warnings {
		lines = append(lines, "warning: "+w)
	}
	return CommandResult{Output: strings.Join(lines, "\n")}
}
