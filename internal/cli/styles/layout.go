package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/docklayout/internal/domain/entity"
)

// RenderTree colors the lines of a text dump: containers in the container
// color, panels in the accent color, the empty marker muted.
func (t *Theme) RenderTree(dump string) string {
	if dump == "Empty tree" {
		return t.Subtle.Render(dump)
	}

	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	for i, line := range lines {
		body := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(body)]
		switch {
		case strings.HasPrefix(body, "Container["):
			lines[i] = indent + t.ContainerStyle.Render(body)
		case strings.HasPrefix(body, "Panel["):
			lines[i] = indent + t.PanelStyle.Render(body)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderValidation formats a validation result, errors before warnings.
func (t *Theme) RenderValidation(label string, res entity.ValidationResult) string {
	var b strings.Builder

	status := t.SuccessStyle.Render("valid")
	if !res.Valid {
		status = t.ErrorStyle.Render("invalid")
	}
	fmt.Fprintf(&b, "%s %s\n", t.Title.Render(label), status)

	for _, e := range res.Errors {
		fmt.Fprintf(&b, "  %s %s\n", t.ErrorStyle.Render("error:"), e)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", t.WarningStyle.Render("warning:"), w)
	}
	return b.String()
}

// RenderError formats an error line.
func (t *Theme) RenderError(err error) string {
	return t.ErrorStyle.Render("error: ") + err.Error()
}

// RenderSuccess formats a confirmation line.
func (t *Theme) RenderSuccess(msg string) string {
	return t.SuccessStyle.Render("✓ ") + t.Normal.Render(msg)
}
