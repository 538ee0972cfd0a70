package search

import (
	"sync"

	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/release"
	"github.com/episan-cli/episan/source"
)

// Pool is the merged multiset of structured episodes one search invocation
// produced, closed for selection once BuildPool returns. It imposes no
// identity constraint: duplicates from different adapters are expected and
// resolved later by Select.
type Pool struct {
	Episodes []*source.Episode
	Failures []*AdapterError
}

// BuildPool fetches raw candidates from every adapter concurrently, parses
// each title and merges the successful parses. Adapters are independent: a
// failing or empty adapter contributes nothing without blocking the others.
// Unparsable candidates are logged and dropped.
func BuildPool(sources []source.Source, text string) *Pool {
	pool := &Pool{}

	wg := sync.WaitGroup{}
	var mutex sync.Mutex

	for _, src := range sources {
		wg.Add(1)

		go func(src source.Source) {
			defer wg.Done()

			candidates, err := src.Search(text)
			if err != nil {
				log.Errorf("search failed on %s: %v", src.Name(), err)

				mutex.Lock()
				pool.Failures = append(pool.Failures, &AdapterError{Source: src.Name(), Err: err})
				mutex.Unlock()
				return
			}

			var parsed []*source.Episode
			for _, candidate := range candidates {
				episode, err := release.Parse(candidate.Title)
				if err != nil {
					log.Warn(err)
					continue
				}

				episode.Link = candidate.Link
				episode.Source = src
				parsed = append(parsed, episode)
			}

			mutex.Lock()
			pool.Episodes = append(pool.Episodes, parsed...)
			mutex.Unlock()
		}(src)
	}

	wg.Wait()
	return pool
}
