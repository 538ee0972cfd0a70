package release

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/episan-cli/episan/source"
	"github.com/samber/mo"
)

// Dotted convention: "Series.Name.SxxEyy.Resolution-Group".
// Season and episode ride in an SxxEyy token, the resolution is a free token
// somewhere after it, and the group trails after the last hyphen.
var (
	seasonEpisodePattern = regexp.MustCompile(`(?i)\bS(\d{1,2})E(\d{1,3})\b`)
	resolutionPattern    = regexp.MustCompile(`(?i)\b\d{3,4}p\b`)
)

func parseDotted(raw string) (*source.Episode, bool) {
	rest, extension := splitExtension(raw)

	// Dots and underscores are separators under this convention.
	normalized := strings.ReplaceAll(rest, ".", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")

	match := seasonEpisodePattern.FindStringSubmatchIndex(normalized)
	if match == nil {
		return nil, false
	}

	season, err := strconv.Atoi(normalized[match[2]:match[3]])
	if err != nil {
		return nil, false
	}

	number, err := strconv.Atoi(normalized[match[4]:match[5]])
	if err != nil {
		return nil, false
	}

	series := collapseSpaces(normalized[:match[0]])
	if series == "" {
		return nil, false
	}

	episode := &source.Episode{
		SeriesName: series,
		Season:     mo.Some(season),
		Number:     number,
		Extension:  extension,
	}

	// Attributes only trail the SxxEyy token, the series itself never
	// contributes a resolution or group.
	tail := normalized[match[1]:]

	if token := resolutionPattern.FindString(tail); token != "" {
		episode.Resolution = source.ParseResolution(token)
	}

	if idx := strings.LastIndex(tail, "-"); idx >= 0 {
		group := collapseSpaces(tail[idx+1:])

		switch {
		case group == "":
		case source.ParseResolution(group) != source.ResolutionUnknown:
			// A bare resolution suffix ("...-1080p") is not a group.
		case strings.ContainsRune(group, ' '):
		default:
			episode.Group = mo.Some(group)
		}
	}

	return episode, true
}
