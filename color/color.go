// Package color provides the terminal color palette.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps a string value in a lipgloss.Color.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI colors. Numbered so the user's terminal theme decides the
// actual shade.
var (
	Black  = New("0")
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

// Bright ANSI variants.
var (
	HiBlack  = New("8")
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
	HiWhite  = New("15")
)

// Accents with no ANSI slot.
var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)
