// Package release extracts structured episode metadata from freeform catalog
// titles and renders episodes back to displayable release names.
//
// Catalogs advertise the same episode under competing naming conventions.
// Each convention is implemented as a parsing strategy; strategies run in a
// fixed priority order and the first one able to extract an episode number
// wins. Fields a convention does not encode keep their absent value.
package release

import (
	"fmt"
	"strings"

	"github.com/episan-cli/episan/source"
	"github.com/samber/lo"
)

// ParseError reports a title that could not yield a mandatory episode number.
// It is non-fatal: the candidate carrying the title is dropped and the batch
// continues.
type ParseError struct {
	Title  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparsable release title %q: %s", e.Title, e.Reason)
}

// strategy attempts one naming convention against a raw title.
// It reports false when the convention's required tokens are missing.
type strategy func(raw string) (*source.Episode, bool)

// strategies in priority order. The bracketed convention is attempted first
// since its dash-number marker is the more distinctive of the two.
var strategies = []strategy{
	parseBracketed,
	parseDotted,
}

// knownExtensions are the file type tokens recognized in trailing tags and
// filename suffixes. Anything else is ignored, not an error.
var knownExtensions = []string{"mkv", "mp4", "avi", "webm", "ts", "torrent"}

// Parse turns a raw catalog title into a structured episode.
// The episode number is the only mandatory field; a title without one yields
// a *ParseError. The returned episode carries no link and no source, those
// belong to the surrounding candidate.
func Parse(raw string) (*source.Episode, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &ParseError{Title: raw, Reason: "empty title"}
	}

	for _, parse := range strategies {
		if episode, ok := parse(trimmed); ok {
			return episode, nil
		}
	}

	return nil, &ParseError{Title: raw, Reason: "no recognizable episode number"}
}

// splitExtension detaches a trailing filename extension from the title when
// the title is actually a filename. Unknown suffixes stay attached.
func splitExtension(title string) (rest, extension string) {
	idx := strings.LastIndex(title, ".")
	if idx <= 0 || idx == len(title)-1 {
		return title, ""
	}

	candidate := strings.ToLower(title[idx+1:])
	if !lo.Contains(knownExtensions, candidate) {
		return title, ""
	}

	return title[:idx], candidate
}

// collapseSpaces folds internal whitespace runs to single spaces, keeping the
// original casing for display.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
