// Package source holds the release domain model shared by every catalog
// adapter, builtin feeds and Lua scripts alike.
package source

// Source is one searchable release catalog.
type Source interface {
	// Name is the human-facing catalog name, unique across adapters.
	Name() string

	// ID distinguishes adapters that share a name, such as a custom
	// script shadowing a builtin feed.
	ID() string

	// Options lists the configurable flags this catalog accepts.
	Options() []Option

	// Search runs a query and returns the raw candidates the catalog
	// advertises for it, prior to any title extraction.
	Search(query string) ([]*Candidate, error)
}

// Option describes one configurable flag a catalog adapter accepts.
type Option struct {
	// Flag name (e.g. "category").
	Name string `json:"name"`
	// Human-readable purpose of the flag.
	Description string `json:"description"`
	// Argument shape (e.g. "string", "int", "bool").
	Shape string `json:"shape"`
}

// String returns the flag name for display.
func (o Option) String() string {
	return o.Name
}
