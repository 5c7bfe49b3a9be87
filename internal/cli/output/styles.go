package output

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles used for text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// newStyles builds styles bound to lr so color output follows the
// capabilities of the writer.
func newStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: lr.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#B69CFF"}),
		Header2: lr.NewStyle().Bold(true).Underline(true),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#8A8A8A"}),
		Success: lr.NewStyle().Foreground(lipgloss.Color("2")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}
