// Package ui holds the lipgloss styles shared by the seratosync commands.
// Only cmd uses it; the flows themselves log plain text.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// RenderHeader renders a summary heading.
func RenderHeader(s string) string { return headerStyle.Render(s) }

// RenderSuccess renders a success marker or line.
func RenderSuccess(s string) string { return successStyle.Render(s) }

// RenderError renders an error marker or line.
func RenderError(s string) string { return errorStyle.Render(s) }

// RenderAccent renders an informational highlight.
func RenderAccent(s string) string { return accentStyle.Render(s) }

// RenderDim renders de-emphasized detail text.
func RenderDim(s string) string { return dimStyle.Render(s) }
