package seen

import (
	"fmt"
	"time"

	"github.com/episan-cli/episan/source"
)

// GrabbedEpisode represents a single grab entry preserved in the seen store.
type GrabbedEpisode struct {
	SourceID   string            `json:"source_id"`
	Series     string            `json:"series"`
	Season     int               `json:"season"`
	Number     int               `json:"number"`
	Resolution source.Resolution `json:"resolution"`
	Group      string            `json:"group,omitempty"`
	Link       string            `json:"link"`
	GrabbedAt  time.Time         `json:"grabbed_at"`
	Grabs      int               `json:"grabs"`
}

// Identity returns the stable episode identity this record was keyed under.
func (g *GrabbedEpisode) Identity() source.Identity {
	return source.Identity{
		Series: source.NormalizeSeries(g.Series),
		Season: g.Season,
		Number: g.Number,
	}
}

func (g *GrabbedEpisode) encode() string {
	return g.Identity().String()
}

func (g *GrabbedEpisode) String() string {
	return fmt.Sprintf("%s S%02dE%02d", g.Series, g.Season, g.Number)
}
