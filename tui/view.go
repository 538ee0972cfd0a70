package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/style"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	errorTextStyle        = lipgloss.NewStyle().Foreground(style.HiRed).Bold(true)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case searchState:
		output = b.viewSearch()
	case grabState:
		output = b.viewGrab()
	case errorState:
		output = b.viewError()
	default:
		// Everything else is one of the list screens.
		if l := b.activeList(); l != nil {
			output = listExtraPaddingStyle.Render(l.View())
		}
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		style.Title("Loading"),
		"",
		b.spinnerC.View()+" "+b.progressStatus,
	)
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Releases"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s (tab to accept)", icon.Get(icon.Search), suggestion)))
	}

	return b.renderLines(lines...)
}

func (b *statefulBubble) viewGrab() string {
	var current string
	if b.currentGrab != nil {
		current = b.currentGrab.String()
	}

	var ratio float64
	if b.grabTotal > 0 {
		ratio = float64(b.grabCount) / float64(b.grabTotal)
	}

	return b.renderLines(
		style.Title("Grabbing"),
		"",
		style.Truncate(b.width)(icon.Get(icon.Download)+" "+style.Fg(color.Purple)(current)),
		"",
		b.progressC.ViewAs(ratio),
		"",
		style.Truncate(b.width)(b.spinnerC.View()+" "+b.progressStatus),
	)
}

func (b *statefulBubble) viewError() string {
	return b.renderLines(
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail)+" An error occurred:",
		"",
		wrap.String(errorTextStyle.Render(fmt.Sprintf("%v", b.lastError)), b.width),
	)
}

// renderLines joins lines, pads to the full height and pins the help bar
// to the bottom.
func (b *statefulBubble) renderLines(lines ...string) string {
	out := strings.Join(lines, "\n")
	if pad := b.height - len(lines); pad > 0 {
		out += strings.Repeat("\n", pad)
	}
	out += b.helpC.View(b.keymap)

	return paddingStyle.Render(out)
}
