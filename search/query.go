// Package search implements the declarative episode selection engine: a
// query model with validated construction, a concurrent pool builder over
// catalog adapters, and a deterministic selection pass.
package search

import (
	"fmt"

	"github.com/episan-cli/episan/source"
)

// Query is the declarative set of match criteria derived from user
// configuration. It is built once per invocation and immutable thereafter.
// An empty criterion set means "unconstrained on that dimension", never
// "match nothing".
type Query struct {
	Seasons         []int               `json:"seasons,omitempty"`
	Episodes        []int               `json:"episodes,omitempty"`
	MatchLatest     bool                `json:"match_latest"`
	Resolutions     []source.Resolution `json:"resolutions,omitempty"`
	Extensions      []string            `json:"extensions,omitempty"`
	Groups          []string            `json:"groups,omitempty"`
	AllowDuplicates bool                `json:"allow_duplicates"`
}

// InvalidQueryError reports a criterion that can never be satisfied, with
// enough context to correct the input. It is raised at build time, before
// any selection runs.
type InvalidQueryError struct {
	Criterion string
	Value     string
	Reason    string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query: criterion %q rejected value %q: %s", e.Criterion, e.Value, e.Reason)
}

// AdapterError reports a catalog adapter that could not contribute to a
// search. It is non-fatal: the remaining adapters are unaffected.
type AdapterError struct {
	Source string
	Err    error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("source %s failed: %v", e.Source, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}
