package release

import (
	"fmt"
	"strings"

	"github.com/episan-cli/episan/source"
)

// Style selects which naming convention Render emits.
type Style uint8

const (
	// StyleBracketed renders "[Group] Series Name - NN [Resolution][Extension]".
	StyleBracketed Style = iota
	// StyleDotted renders "Series.Name.SxxEyy.Resolution-Group".
	StyleDotted
)

// ParseStyle maps a configuration token to a Style, defaulting to bracketed.
func ParseStyle(name string) Style {
	if strings.EqualFold(strings.TrimSpace(name), "dotted") {
		return StyleDotted
	}
	return StyleBracketed
}

// String returns the configuration token form of the style.
func (s Style) String() string {
	if s == StyleDotted {
		return "dotted"
	}
	return "bracketed"
}

// Render produces a display string for an episode under the given style.
// It consumes only the immutable episode fields and is the presentational
// inverse of Parse.
func Render(e *source.Episode, style Style) string {
	if style == StyleDotted {
		return renderDotted(e)
	}
	return renderBracketed(e)
}

func renderBracketed(e *source.Episode) string {
	var b strings.Builder

	if group, ok := e.Group.Get(); ok {
		fmt.Fprintf(&b, "[%s] ", group)
	}

	b.WriteString(e.SeriesName)

	if season, ok := e.Season.Get(); ok {
		fmt.Fprintf(&b, " S%d", season)
	}

	fmt.Fprintf(&b, " - %02d", e.Number)

	var tags []string
	if e.Resolution != source.ResolutionUnknown {
		tags = append(tags, e.Resolution.String())
	}
	if e.Extension != "" {
		tags = append(tags, e.Extension)
	}

	if len(tags) != 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(tags, "]["))
	}

	return b.String()
}

func renderDotted(e *source.Episode) string {
	var b strings.Builder

	b.WriteString(strings.ReplaceAll(e.SeriesName, " ", "."))
	fmt.Fprintf(&b, ".S%02dE%02d", e.EffectiveSeason(), e.Number)

	if e.Resolution != source.ResolutionUnknown {
		fmt.Fprintf(&b, ".%s", e.Resolution)
	}

	if group, ok := e.Group.Get(); ok {
		fmt.Fprintf(&b, "-%s", strings.ReplaceAll(group, " ", "."))
	}

	if e.Extension != "" {
		fmt.Fprintf(&b, ".%s", e.Extension)
	}

	return b.String()
}
