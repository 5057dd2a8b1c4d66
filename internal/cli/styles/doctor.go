package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CheckStatus is the outcome of one doctor check.
type CheckStatus int

const (
	CheckOK CheckStatus = iota
	CheckWarn
	CheckFail
)

// DoctorCheck is one line of the doctor report.
type DoctorCheck struct {
	Name   string
	Status CheckStatus
	Detail string
}

// DoctorSection groups checks under an icon and title.
type DoctorSection struct {
	Icon   string
	Title  string
	Checks []DoctorCheck
}

// DoctorReport is everything the doctor command found.
type DoctorReport struct {
	Sections []DoctorSection
}

// OK reports whether no check failed. Warnings do not count.
func (r DoctorReport) OK() bool {
	for _, s := range r.Sections {
		for _, c := range s.Checks {
			if c.Status == CheckFail {
				return false
			}
		}
	}
	return true
}

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	sections := make([]string, 0, len(report.Sections))
	for _, s := range report.Sections {
		sections = append(sections, r.renderSection(s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report.OK()), "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.ErrorStyle
		statusText = "Needs attention"
	}
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconDoctor)
	return fmt.Sprintf("%s %s %s", icon, r.theme.Title.Render("Doctor"), statusStyle.Render(statusText))
}

func (r *DoctorRenderer) renderSection(s DoctorSection) string {
	lines := make([]string, 0, len(s.Checks)+1)
	lines = append(lines, r.theme.Highlight.Render(s.Icon+" "+s.Title))
	for _, c := range s.Checks {
		lines = append(lines, r.renderCheck(c))
	}
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon, style := IconCheck, r.theme.SuccessStyle
	switch c.Status {
	case CheckWarn:
		icon, style = IconWarning, r.theme.WarningStyle
	case CheckFail:
		icon, style = IconX, r.theme.ErrorStyle
	}
	line := fmt.Sprintf("%s %s", style.Render(icon), r.theme.Normal.Render(c.Name))
	if c.Detail != "" {
		line += "\n  " + r.theme.Subtle.Render(c.Detail)
	}
	return line
}
