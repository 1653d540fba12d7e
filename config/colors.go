package config

import "github.com/charmbracelet/lipgloss"

var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5d445"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f05c07"))
)

// Green renders a log level tag like INF.
func Green(s string) string { return greenStyle.Render(s) }

// Yellow renders a log level tag like WAR.
func Yellow(s string) string { return yellowStyle.Render(s) }

// Red renders a log level tag like ERR.
func Red(s string) string { return redStyle.Render(s) }
