// Package constant pins the identifiers the rest of the application
// derives names from.
package constant

const (
	// Episan names the application. Config paths, env prefixes and CLI
	// branding all derive from it.
	Episan = "episan"

	// Version of the current release.
	Version = "0.1.0"

	// UserAgent presented to catalogs on plain HTTP requests. Matches the
	// Chrome build the TLS fingerprint imitates.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, overridden at link time by the release pipeline.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
