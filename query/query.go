// Package query keeps a ranked history of past searches to power
// prompt suggestions.
package query

import (
	"strings"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var store = gache.New[map[string]*record](&gache.Options{
	Path:       where.Queries(),
	FileSystem: &filesystem.GacheFs{},
})

// memo holds filtered suggestion lists per input for the lifetime of
// the process, so typing in the search prompt does not reread the
// history file on every keystroke.
var memo = make(map[string][]*record)

// Remember adds q to the history, raising its rank by weight when it
// is already known.
func Remember(q string, weight int) error {
	q = sanitize(q)

	history, expired, err := store.Get()
	if expired || err != nil || history == nil {
		history = make(map[string]*record)
	}

	if known, ok := history[q]; ok {
		known.Rank += weight
	} else {
		history[q] = &record{Rank: weight, Query: q}
	}

	return store.Set(history)
}

// Suggest returns the highest ranked suggestion matching q.
func Suggest(q string) mo.Option[string] {
	if all := SuggestMany(q); len(all) > 0 {
		return mo.Some(all[0])
	}
	return mo.None[string]()
}

// SuggestMany returns every historical query fuzzy-matching q, best
// rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	matched, hit := memo[q]
	if !hit {
		matched = matching(q)
		memo[q] = matched
	}

	return lo.Map(matched, func(r *record, _ int) string {
		return r.Query
	})
}

func matching(q string) []*record {
	history, expired, err := store.Get()
	if err != nil || expired || history == nil {
		return nil
	}

	var matched []*record
	for _, r := range history {
		if fuzzy.Match(q, r.Query) {
			matched = append(matched, r)
		}
	}

	slices.SortFunc(matched, func(a, b *record) int {
		return b.Rank - a.Rank
	})
	return matched
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
