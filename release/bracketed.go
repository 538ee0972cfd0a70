package release

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Bracketed convention: "[Group] Series Name - NN [Resolution][Extension]".
// The group rides in a leading bracketed tag, the episode number follows a
// dash, and release attributes trail in bracketed or parenthesized tags.
var (
	bracketedPattern = regexp.MustCompile(`^(?:\[(?P<group>[^\]]+)\]\s*)?(?P<series>[^\[\]]+?)\s*-\s*(?P<episode>\d{1,4})(?:v\d+)?(?P<tags>(?:\s*[\[(][^\])]*[\])])*)\s*$`)
	bracketedTag     = regexp.MustCompile(`[\[(]([^\])]*)[\])]`)
	trailingSeason   = regexp.MustCompile(`(?i)^(?P<name>.*\S)\s+S(?P<season>\d{1,2})$`)
)

func parseBracketed(raw string) (*source.Episode, bool) {
	rest, extension := splitExtension(raw)

	groups := util.ReGroups(bracketedPattern, rest)
	if len(groups) == 0 {
		return nil, false
	}

	number, err := strconv.Atoi(groups["episode"])
	if err != nil {
		return nil, false
	}

	series := collapseSpaces(groups["series"])
	if series == "" {
		return nil, false
	}

	episode := &source.Episode{
		SeriesName: series,
		Number:     number,
		Extension:  extension,
	}

	// Some titles suffix the series with a season token ("Show Name S2").
	if se := util.ReGroups(trailingSeason, series); len(se) != 0 {
		if season, err := strconv.Atoi(se["season"]); err == nil {
			episode.SeriesName = collapseSpaces(se["name"])
			episode.Season = mo.Some(season)
		}
	}

	if group := collapseSpaces(groups["group"]); group != "" {
		episode.Group = mo.Some(group)
	}

	for _, tag := range bracketedTag.FindAllStringSubmatch(groups["tags"], -1) {
		content := collapseSpaces(tag[1])

		if r := source.ParseResolution(content); r != source.ResolutionUnknown {
			if episode.Resolution == source.ResolutionUnknown {
				episode.Resolution = r
			}
			continue
		}

		if lowered := strings.ToLower(content); episode.Extension == "" && lo.Contains(knownExtensions, lowered) {
			episode.Extension = lowered
		}
	}

	return episode, true
}
