// Package style wraps lipgloss in the small set of text decorators
// the interface layers share.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/episan-cli/episan/color"
)

// New returns a blank style to build on.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored pairs a foreground with a background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg renders strings in the given foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return renderWith(Colored(c, ""))
}

// Bg renders strings on the given background color.
func Bg(c lipgloss.Color) func(string) string {
	return renderWith(Colored("", c))
}

// Truncate cuts rendered strings off at max cells instead of letting
// them wrap.
func Truncate(max int) func(string) string {
	return renderWith(New().MaxWidth(max))
}

var (
	Faint     = renderWith(New().Faint(true))
	Bold      = renderWith(New().Bold(true))
	Italic    = renderWith(New().Italic(true))
	Underline = renderWith(New().Underline(true))
)

// Title renders the standard section banner.
var Title = renderWith(Colored(color.New("230"), color.New("62")).Padding(0, 1))

// ErrorTitle renders a banner for failure states.
var ErrorTitle = renderWith(Colored(color.New("230"), color.Red).Padding(0, 1))

func renderWith(st lipgloss.Style) func(string) string {
	return func(s string) string {
		return st.Render(s)
	}
}
