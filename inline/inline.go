// Package inline runs one full search round without the TUI, for shell
// pipelines and scripted use.
package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/episan-cli/episan/download"
	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/search"
	"github.com/episan-cli/episan/source"
	"github.com/samber/lo"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	// Step 1: Gather raw candidates from every source and parse them.
	pool := search.BuildPool(options.Sources, options.Query)
	for _, failure := range pool.Failures {
		log.Warn(failure)
	}

	// A single broken source is tolerable, a fully failed search is not.
	if len(options.Sources) > 0 && len(pool.Failures) == len(options.Sources) {
		return fmt.Errorf("every source failed: %w", pool.Failures[0])
	}

	// Step 2: Run the configured selection over the pool.
	q := options.Selection
	if q == nil {
		var err error
		q, err = search.ConfigBuilder().Build()
		if err != nil {
			return err
		}
	}

	episodes := search.Select(pool.Episodes, q)

	// Step 3: Narrow to one series if a picker is defined.
	if picker, ok := options.SeriesPicker.Get(); ok {
		episodes = pickSeries(episodes, picker)
	}

	// Step 4: Trim the result down by position if a filter is defined.
	if filter, ok := options.EpisodesFilter.Get(); ok {
		var err error
		episodes, err = filter(episodes)
		if err != nil {
			return err
		}
	}

	// Step 5: Dispatch to the download handler or the configured output writer.
	if options.Download {
		return grab(options.Out, episodes)
	}

	if options.Json {
		return writeJson(options.Out, episodes, q, options)
	}

	for _, episode := range episodes {
		if options.Links {
			fmt.Fprintln(options.Out, episode.Link)
		} else {
			fmt.Fprintln(options.Out, episode)
		}
	}

	return nil
}

// pickSeries keeps only the episodes of the series the picker chose.
func pickSeries(episodes []*source.Episode, picker SeriesPicker) []*source.Episode {
	chosen := picker(distinctSeries(episodes))
	if chosen == "" {
		return nil
	}

	target := source.NormalizeSeries(chosen)
	return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
		return e.Identity().Series == target
	})
}

// distinctSeries lists the series names present in the result, one entry
// per identity, preserving result order.
func distinctSeries(episodes []*source.Episode) []string {
	present := make(map[string]struct{})

	var names []string
	for _, e := range episodes {
		id := e.Identity().Series
		if _, ok := present[id]; ok {
			continue
		}
		present[id] = struct{}{}
		names = append(names, e.SeriesName)
	}

	return names
}

func grab(out io.Writer, episodes []*source.Episode) error {
	var failures []error
	for _, episode := range episodes {
		if err := download.Do(episode); err != nil {
			log.Error(err)
			failures = append(failures, fmt.Errorf("%s: %w", episode, err))
			continue
		}

		fmt.Fprintf(out, "Grabbed %s\n", episode)
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d grabs failed: %w", len(failures), len(episodes), failures[0])
	}

	return nil
}
