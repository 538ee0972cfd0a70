package source

import (
	"fmt"
	"strings"

	"github.com/episan-cli/episan/util"
	"github.com/samber/mo"
)

// Episode represents one identifiable unit of media content extracted from a
// release title. Instances are immutable once parsed.
type Episode struct {
	// Originally-cased series name with separators collapsed to single spaces.
	SeriesName string `json:"series_name"`
	// Season is absent when the title carries no season token.
	// Matching and identity treat an absent season as season 1.
	Season mo.Option[int] `json:"season"`
	// Episode number. The only mandatory field.
	Number int `json:"episode_number"`
	// Release group tag, if the title encodes one.
	Group mo.Option[string] `json:"group"`
	// Recognized vertical resolution.
	Resolution Resolution `json:"resolution"`
	// Lower-cased file type token ("mkv", "torrent"). Empty if undetermined.
	Extension string `json:"extension"`
	// Opaque locator consumed only by the download stage, never by matching.
	Link string `json:"link"`

	Source Source `json:"-"`
}

// Identity is the (series, season, number) triple that defines "the same
// episode" regardless of release variant. The series component is normalized.
type Identity struct {
	Series string `json:"series"`
	Season int    `json:"season"`
	Number int    `json:"episode"`
}

// String returns the canonical persistent form of the identity key.
func (id Identity) String() string {
	return fmt.Sprintf("%s s%02de%03d", id.Series, id.Season, id.Number)
}

// NormalizeSeries folds a series name to its comparison form:
// lower-cased with internal whitespace collapsed to single spaces.
func NormalizeSeries(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// EffectiveSeason returns the season number, defaulting to 1 when the
// source title carried none.
func (e *Episode) EffectiveSeason() int {
	return e.Season.OrElse(1)
}

// Identity derives the identity key of the episode. Identity is independent
// of group, resolution and extension.
func (e *Episode) Identity() Identity {
	return Identity{
		Series: NormalizeSeries(e.SeriesName),
		Season: e.EffectiveSeason(),
		Number: e.Number,
	}
}

// String returns a short human-readable form of the episode.
func (e *Episode) String() string {
	return fmt.Sprintf("%s S%02dE%02d", e.SeriesName, e.EffectiveSeason(), e.Number)
}

// Filename returns a filesystem-safe name for storing the grabbed release.
func (e *Episode) Filename() string {
	stem := util.SanitizeFilename(e.String())
	if e.Extension == "" {
		return stem
	}
	return stem + "." + e.Extension
}
