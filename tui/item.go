package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/provider"
	"github.com/episan-cli/episan/seen"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/style"
	"github.com/spf13/viper"
)

var (
	markStyle       = lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor)
	resolutionStyle = lipgloss.NewStyle().Foreground(style.AccentColor)
	groupStyle      = lipgloss.NewStyle().Foreground(style.Green)
	metaStyle       = lipgloss.NewStyle().Foreground(style.FaintColor)
)

// listItem adapts the domain models to the list component. A list holds
// episodes, grab history entries, providers or plain menu strings.
type listItem struct {
	internal any
	marked   bool
}

func (i *listItem) toggleMark() {
	i.marked = !i.marked
}

func (i *listItem) mark() string {
	switch i.internal.(type) {
	case *source.Episode:
		return markStyle.Render(icon.Get(icon.Mark))
	case *provider.Provider:
		return icon.Get(icon.Search)
	default:
		return ""
	}
}

func (i *listItem) Title() string {
	title := i.FilterValue()
	if e, ok := i.internal.(*seen.GrabbedEpisode); ok {
		title = e.String()
	}

	if title != "" && i.marked {
		title += " " + i.mark()
	}
	return title
}

func (i *listItem) Description() string {
	switch e := i.internal.(type) {
	case *source.Episode:
		var parts []string

		if e.Resolution != source.ResolutionUnknown {
			parts = append(parts, resolutionStyle.Render(e.Resolution.String()))
		}
		if group, ok := e.Group.Get(); ok {
			parts = append(parts, groupStyle.Render(group))
		}
		if e.Extension != "" {
			parts = append(parts, metaStyle.Render(e.Extension))
		}
		if e.Source != nil {
			parts = append(parts, metaStyle.Render(e.Source.Name()))
		}

		description := strings.Join(parts, " • ")
		if viper.GetBool(key.TUIShowLinks) && e.Link != "" {
			description = strings.TrimSpace(description + " " + style.Faint(e.Link))
		}
		return description
	case *seen.GrabbedEpisode:
		var parts []string

		if e.Resolution != source.ResolutionUnknown {
			parts = append(parts, e.Resolution.String())
		}
		if e.Group != "" {
			parts = append(parts, e.Group)
		}
		if e.SourceID != "" {
			parts = append(parts, e.SourceID)
		}
		parts = append(parts, e.GrabbedAt.Format("2006-01-02"))

		return strings.Join(parts, " • ")
	case *provider.Provider:
		description := "Built-in Feed"
		if e.IsCustom {
			description = "Lua Extension"
		}
		if e.UsesHeadless {
			description += " (Requires Headless Chrome)"
		}
		return description
	default:
		return ""
	}
}

// FilterValue feeds the list filter, the series name alone for history
// entries so typing a title narrows them down.
func (i *listItem) FilterValue() string {
	switch e := i.internal.(type) {
	case *source.Episode:
		return e.String()
	case *seen.GrabbedEpisode:
		return e.Series
	case *provider.Provider:
		return e.Name
	case string:
		return e
	default:
		return ""
	}
}
