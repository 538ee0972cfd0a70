package style

import "github.com/charmbracelet/lipgloss"

// Base tones, dark-first.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Surface = lipgloss.Color("#313244")
	Overlay = lipgloss.Color("#6c7086")
	Text    = lipgloss.Color("#cdd6f4")
)

// Accents.
var (
	Mauve  = lipgloss.Color("#cba6f7")
	Red    = lipgloss.Color("#f38ba8")
	Peach  = lipgloss.Color("#fab387")
	Yellow = lipgloss.Color("#f9e2af")
	Green  = lipgloss.Color("#a6e3a1")
	Blue   = lipgloss.Color("#89b4fa")
)

// Roles the views actually style with.
var (
	AccentColor = Mauve
	FaintColor  = Overlay
	HiRed       = Red
)
