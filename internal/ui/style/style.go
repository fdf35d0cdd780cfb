// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Styles shared by plan rendering.
var (
	Header   = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Name     = lipgloss.NewStyle().Bold(true)
	Dim      = lipgloss.NewStyle().Foreground(Slate)
	Notice   = lipgloss.NewStyle().Foreground(Yellow)
	Problem  = lipgloss.NewStyle().Foreground(Red)
	Positive = lipgloss.NewStyle().Foreground(Green)
)
