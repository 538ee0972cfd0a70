package search

import (
	"strconv"
	"strings"

	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Wildcard is the token that resets the resolution or extension dimension
// back to unconstrained, discarding any earlier accumulation in the same
// configuration pass.
const Wildcard = "any"

// Builder accumulates query criteria through an ordered sequence of
// validated transformations. Build is the single point where accumulated
// violations surface.
type Builder struct {
	seasons         []int
	episodes        []int
	matchLatest     bool
	resolutions     []source.Resolution
	extensions      []string
	groups          []string
	allowDuplicates bool

	err error
}

// NewBuilder returns an empty builder: every dimension unconstrained,
// latest matching and duplicates off.
func NewBuilder() *Builder {
	return &Builder{}
}

// ConfigBuilder returns a builder seeded with the search defaults from the
// user configuration. Flag-level criteria are applied on top by the caller.
func ConfigBuilder() *Builder {
	return NewBuilder().
		Seasons(viper.GetIntSlice(key.SearchSeasons)...).
		Episodes(viper.GetIntSlice(key.SearchEpisodes)...).
		Resolutions(viper.GetStringSlice(key.SearchResolutions)...).
		Extensions(viper.GetStringSlice(key.SearchExtensions)...).
		Groups(viper.GetStringSlice(key.SearchGroups)...).
		Latest(viper.GetBool(key.SearchLatest)).
		Duplicates(viper.GetBool(key.SearchDuplicates))
}

// fail records the first violation; later ones keep the earliest context.
func (b *Builder) fail(criterion, value, reason string) {
	if b.err == nil {
		b.err = &InvalidQueryError{Criterion: criterion, Value: value, Reason: reason}
	}
}

// Seasons restricts matching to the given season numbers.
func (b *Builder) Seasons(seasons ...int) *Builder {
	for _, season := range seasons {
		if season < 0 {
			b.fail("seasons", strconv.Itoa(season), "season numbers are non-negative")
			continue
		}
		b.seasons = append(b.seasons, season)
	}
	return b
}

// Episodes restricts matching to the given episode numbers.
func (b *Builder) Episodes(numbers ...int) *Builder {
	for _, number := range numbers {
		if number < 0 {
			b.fail("episodes", strconv.Itoa(number), "episode numbers are non-negative")
			continue
		}
		b.episodes = append(b.episodes, number)
	}
	return b
}

// Latest toggles the latest-episode refinement.
func (b *Builder) Latest(on bool) *Builder {
	b.matchLatest = on
	return b
}

// Duplicates toggles whether same-identity release variants survive
// selection.
func (b *Builder) Duplicates(on bool) *Builder {
	b.allowDuplicates = on
	return b
}

// Resolutions restricts matching to the given resolution tokens.
// The wildcard token resets the dimension; "unknown" matches episodes whose
// title carried no recognizable resolution.
func (b *Builder) Resolutions(tokens ...string) *Builder {
	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)

		switch {
		case trimmed == "":
			b.fail("resolutions", token, "empty token")
		case strings.EqualFold(trimmed, Wildcard):
			b.resolutions = nil
		case strings.EqualFold(trimmed, "unknown"):
			b.resolutions = append(b.resolutions, source.ResolutionUnknown)
		default:
			r := source.ParseResolution(trimmed)
			if r == source.ResolutionUnknown {
				b.fail("resolutions", token, "unrecognized resolution token")
				continue
			}
			b.resolutions = append(b.resolutions, r)
		}
	}
	return b
}

// Extensions restricts matching to the given file type tokens.
// Tokens are folded to comparison form (lower-cased, leading dot stripped);
// the wildcard token resets the dimension.
func (b *Builder) Extensions(tokens ...string) *Builder {
	for _, token := range tokens {
		trimmed := strings.TrimSpace(token)

		switch {
		case trimmed == "":
			b.fail("extensions", token, "empty token")
		case strings.EqualFold(trimmed, Wildcard):
			b.extensions = nil
		default:
			b.extensions = append(b.extensions, strings.ToLower(strings.TrimPrefix(trimmed, ".")))
		}
	}
	return b
}

// Groups restricts matching to the given release groups.
func (b *Builder) Groups(names ...string) *Builder {
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			b.groups = append(b.groups, trimmed)
		}
	}
	return b
}

// Build validates the accumulated criteria and freezes them into a Query.
// Criterion sets come out deduplicated and sorted so equal criteria always
// produce an identical query.
func (b *Builder) Build() (*Query, error) {
	if b.err != nil {
		return nil, b.err
	}

	query := &Query{
		Seasons:         lo.Uniq(b.seasons),
		Episodes:        lo.Uniq(b.episodes),
		MatchLatest:     b.matchLatest,
		Resolutions:     lo.Uniq(b.resolutions),
		Extensions:      lo.Uniq(b.extensions),
		Groups:          lo.Uniq(b.groups),
		AllowDuplicates: b.allowDuplicates,
	}

	slices.Sort(query.Seasons)
	slices.Sort(query.Episodes)
	slices.Sort(query.Resolutions)
	slices.Sort(query.Extensions)
	slices.Sort(query.Groups)

	return query, nil
}
