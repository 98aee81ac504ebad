package tui

import (
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	selectedStyle    = lipgloss.NewStyle().Bold(true)
	highlightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dateStyle        = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	sessionHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	alertBaseStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1)
)

var severityColors = map[notify.Severity]lipgloss.Color{
	notify.Success: lipgloss.Color("10"),
	notify.Info:    lipgloss.Color("14"),
	notify.Warning: lipgloss.Color("11"),
	notify.Error:   lipgloss.Color("9"),
}

func alertStyle(s notify.Severity) lipgloss.Style {
	c, ok := severityColors[s]
	if !ok {
		return alertBaseStyle
	}
	return alertBaseStyle.BorderForeground(c)
}

func alertHeaderStyle(s notify.Severity) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := severityColors[s]; ok {
		style = style.Foreground(c)
	}
	return style
}
