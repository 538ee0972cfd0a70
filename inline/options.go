package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/episan-cli/episan/search"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	// SeriesPicker narrows a multi-series result down to one series name.
	// It receives the distinct series names in result order.
	SeriesPicker func([]string) string
	// EpisodesFilter trims the ordered selection down by position.
	EpisodesFilter func([]*source.Episode) ([]*source.Episode, error)
)

type Options struct {
	Out       io.Writer
	Sources   []source.Source
	Query     string
	Selection *search.Query
	Json      bool
	Links     bool
	Download  bool

	SeriesPicker   mo.Option[SeriesPicker]
	EpisodesFilter mo.Option[EpisodesFilter]
}

// ParseSeriesPicker builds a picker from its command line description.
// Known kinds are first, last, exact and index; value carries the name
// for exact and the position for index.
func ParseSeriesPicker(kind, value string) (SeriesPicker, error) {
	// pick guards a choice against an empty result.
	pick := func(choose func([]string) string) SeriesPicker {
		return func(series []string) string {
			if len(series) == 0 {
				return ""
			}
			return choose(series)
		}
	}

	switch kind {
	case "first":
		return pick(func(series []string) string {
			return series[0]
		}), nil
	case "last":
		return pick(func(series []string) string {
			return series[len(series)-1]
		}), nil
	case "exact":
		return func(series []string) string {
			target := source.NormalizeSeries(value)
			for _, s := range series {
				if source.NormalizeSeries(s) == target {
					return s
				}
			}
			return ""
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return pick(func(series []string) string {
			return series[util.Min(idx, uint64(len(series)-1))]
		}), nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}

// ParseEpisodesFilter parses a string description of a positional filter.
// Format: "first", "last", "all", "1-5", "@text@", "5".
// Positions refer to the ordered selection result, not episode numbers;
// number criteria belong to the query itself.
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	keep := func(f func([]*source.Episode) []*source.Episode) EpisodesFilter {
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return f(episodes), nil
		}
	}

	switch description {
	case "all":
		return keep(func(episodes []*source.Episode) []*source.Episode {
			return episodes
		}), nil
	case "first":
		return keep(func(episodes []*source.Episode) []*source.Episode {
			return episodes[:util.Min(1, len(episodes))]
		}), nil
	case "last":
		return keep(func(episodes []*source.Episode) []*source.Episode {
			if len(episodes) == 0 {
				return episodes
			}
			return episodes[len(episodes)-1:]
		}), nil
	}

	if sub := strings.TrimPrefix(description, "@"); len(sub) < len(description) && strings.HasSuffix(sub, "@") {
		sub = strings.TrimSuffix(sub, "@")
		return keep(func(episodes []*source.Episode) []*source.Episode {
			return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.String()), strings.ToLower(sub))
			})
		}), nil
	}

	if fromRaw, toRaw, ok := strings.Cut(description, "-"); ok {
		from, err1 := strconv.ParseUint(fromRaw, 10, 16)
		to, err2 := strconv.ParseUint(toRaw, 10, 16)
		if err1 == nil && err2 == nil {
			return keep(func(episodes []*source.Episode) []*source.Episode {
				start := util.Min(from, uint64(len(episodes)))
				end := util.Min(to+1, uint64(len(episodes)))
				if start > end {
					return nil
				}
				return episodes[start:end]
			}), nil
		}
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return keep(func(episodes []*source.Episode) []*source.Episode {
			if uint64(len(episodes)) <= idx {
				return nil
			}
			return episodes[idx : idx+1]
		}), nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}
