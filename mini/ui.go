package mini

import (
	"fmt"
	"strings"

	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/util"
)

func progress(msg string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Faint(msg)))
}

func fail(msg string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(msg))
}

func success(msg string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Success), style.Fg(color.Green)(msg))
}

// episodeLabel renders one selectable line for an episode. The index prefix
// keeps labels unique when variants collapse to the same display form.
func episodeLabel(i int, e *source.Episode) string {
	label := fmt.Sprintf("%d. %s", i+1, e)

	var tags []string
	if e.Resolution != source.ResolutionUnknown {
		tags = append(tags, e.Resolution.String())
	}
	if group, ok := e.Group.Get(); ok {
		tags = append(tags, group)
	}
	if e.Extension != "" {
		tags = append(tags, e.Extension)
	}
	if len(tags) > 0 {
		label = fmt.Sprintf("%s [%s]", label, strings.Join(tags, " "))
	}

	if runes := []rune(label); truncateAt > 1 && len(runes) > truncateAt {
		label = string(runes[:truncateAt-1]) + "…"
	}

	return label
}
