package render

import "github.com/charmbracelet/lipgloss"

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d16d7a")).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	HeaderStyle  = lipgloss.NewStyle().Bold(true)
	FooterStyle  = lipgloss.NewStyle().Faint(true)
)

// Success formats a success notification.
func Success(msg string) string { return SuccessStyle.Render("✓ " + msg) }

// Error formats an error notification.
func Error(msg string) string { return ErrorStyle.Render("✗ " + msg) }
