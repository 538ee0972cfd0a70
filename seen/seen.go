// Package seen provides the implementation for tracking and persisting grabbed-episode state.
package seen

import (
	"time"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/where"
	"github.com/metafates/gache"
)

// cacher provides an abstracted, disk-backed registry for grab records.
var cacher = gache.New[map[string]*GrabbedEpisode](
	&gache.Options{
		Path:       where.Seen(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of grab records from the persistent store.
func Get() (map[string]*GrabbedEpisode, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*GrabbedEpisode), nil
	}
	return cached, nil
}

// Save persists a grab record for the episode. Grabbing another release of an
// already seen episode keeps the original timestamp and bumps the counter.
func Save(episode *source.Episode) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newGrabbedEpisode(episode)

	if existing, exists := saved[record.encode()]; exists {
		record.GrabbedAt = existing.GrabbedAt
		record.Grabs = existing.Grabs
	}
	record.Grabs++

	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Has reports whether any release of the episode's identity was grabbed before.
func Has(episode *source.Episode) (bool, error) {
	saved, err := Get()
	if err != nil {
		return false, err
	}

	_, ok := saved[episode.Identity().String()]
	return ok, nil
}

// Remove permanently deletes a specific grab record from the registry.
func Remove(episode *GrabbedEpisode) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, episode.encode())
	return cacher.Set(saved)
}

func newGrabbedEpisode(episode *source.Episode) *GrabbedEpisode {
	record := &GrabbedEpisode{
		Series:     episode.SeriesName,
		Season:     episode.EffectiveSeason(),
		Number:     episode.Number,
		Resolution: episode.Resolution,
		Group:      episode.Group.OrElse(""),
		Link:       episode.Link,
		GrabbedAt:  time.Now(),
	}
	if episode.Source != nil {
		record.SourceID = episode.Source.ID()
	}
	return record
}
