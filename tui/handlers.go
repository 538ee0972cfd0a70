package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/download"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/provider"
	"github.com/episan-cli/episan/search"
	"github.com/episan-cli/episan/seen"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// providerItems wraps providers as list items, sorted by name.
func providerItems(providers []*provider.Provider) []list.Item {
	slices.SortFunc(providers, func(a, b *provider.Provider) int {
		return strings.Compare(a.Name, b.Name)
	})

	return lo.Map(providers, func(p *provider.Provider, _ int) list.Item {
		return &listItem{internal: p}
	})
}

// loadProviders fills the sources list, builtin feeds first, then the
// custom catalog scripts.
func (b *statefulBubble) loadProviders() tea.Cmd {
	items := append(providerItems(provider.Builtins()), providerItems(provider.Customs())...)
	return b.sourcesC.SetItems(items)
}

// loadSeen fills the grab history list. Providers are loaded along the way
// because history entries navigate back into the source they came from.
func (b *statefulBubble) loadSeen() (tea.Cmd, error) {
	saved, err := seen.Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, z *seen.GrabbedEpisode) int {
		if c := strings.Compare(a.Series, z.Series); c != 0 {
			return c
		}
		if a.Season != z.Season {
			return a.Season - z.Season
		}
		return a.Number - z.Number
	})

	items := lo.Map(entries, func(e *seen.GrabbedEpisode, _ int) list.Item {
		return &listItem{internal: e}
	})

	return tea.Batch(b.seenC.SetItems(items), b.loadProviders()), nil
}

// loadSources initializes the given providers in parallel. Partial failures
// are logged and dropped, only a total failure surfaces as an error.
func (b *statefulBubble) loadSources(providers []*provider.Provider) tea.Cmd {
	return func() tea.Msg {
		var (
			mu      sync.Mutex
			wg      sync.WaitGroup
			sources []source.Source
			errs    []error
		)

		wg.Add(len(providers))
		for _, p := range providers {
			go func() {
				defer wg.Done()

				log.Infof("loading source %s", p.ID)
				s, err := p.CreateSource()

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					log.Error(err)
					errs = append(errs, err)
					return
				}

				log.Infof("source %s loaded", p.ID)
				sources = append(sources, s)
			}()
		}
		wg.Wait()

		if len(sources) == 0 && len(providers) > 0 {
			err := fmt.Errorf("no sources could be loaded")
			if len(errs) > 0 {
				err = errs[0]
			}
			b.errorChannel <- err
			return nil
		}

		b.sourcesLoadedChannel <- sources
		return nil
	}
}

func (b *statefulBubble) waitForSourcesLoaded() tea.Cmd {
	return func() tea.Msg {
		select {
		case sources := <-b.sourcesLoadedChannel:
			return sources
		case err := <-b.errorChannel:
			return err
		}
	}
}

// searchEpisodes builds the release pool across the selected sources and
// runs the configured selection over it.
func (b *statefulBubble) searchEpisodes(text string) tea.Cmd {
	return func() tea.Msg {
		log.Infof("searching for %s", text)
		b.progressStatus = fmt.Sprintf("Searching among %s", util.Quantify(len(b.selectedSources), "source", "sources"))

		pool := search.BuildPool(b.selectedSources, text)
		for _, failure := range pool.Failures {
			log.Error(failure)
		}

		if len(pool.Episodes) == 0 && len(pool.Failures) == len(b.selectedSources) && len(b.selectedSources) > 0 {
			b.errorChannel <- fmt.Errorf("every source failed, see the log for details")
			return nil
		}

		q, err := search.ConfigBuilder().Build()
		if err != nil {
			log.Error(err)
			b.errorChannel <- err
			return nil
		}

		episodes := search.Select(pool.Episodes, q)
		episodes = b.withoutSeen(episodes)

		log.Infof("selected %d of %d episodes from %d sources", len(episodes), len(pool.Episodes), len(b.selectedSources))
		b.foundEpisodesChannel <- episodes
		return nil
	}
}

// withoutSeen drops episodes that were already grabbed when the skip
// option is on.
func (b *statefulBubble) withoutSeen(episodes []*source.Episode) []*source.Episode {
	if !viper.GetBool(key.SeenSkip) {
		return episodes
	}

	saved, err := seen.Get()
	if err != nil {
		log.Warn(err)
		return episodes
	}

	return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
		_, grabbed := saved[e.Identity().String()]
		return !grabbed
	})
}

func (b *statefulBubble) waitForEpisodes() tea.Cmd {
	return func() tea.Msg {
		select {
		case found := <-b.foundEpisodesChannel:
			return found
		case err := <-b.errorChannel:
			return err
		}
	}
}

// grabDoneMsg reports the outcome of a batch handoff.
type grabDoneMsg struct {
	succeeded int
	failures  []error
}

// grabEpisodes hands the episodes to the configured download handler one
// by one, so the progress view can follow along.
func (b *statefulBubble) grabEpisodes(episodes []*source.Episode) tea.Cmd {
	return func() tea.Msg {
		b.grabTotal = len(episodes)
		b.grabCount = 0

		var failures []error
		for _, episode := range episodes {
			b.currentGrab = episode
			b.progressStatus = fmt.Sprintf("Grabbing %s", style.Fg(color.Purple)(episode.String()))

			if err := download.Do(episode); err != nil {
				log.Error(err)
				failures = append(failures, fmt.Errorf("%s: %w", episode, err))
			}

			b.grabCount++
		}

		b.grabDoneChannel <- grabDoneMsg{
			succeeded: len(episodes) - len(failures),
			failures:  failures,
		}
		return nil
	}
}

func (b *statefulBubble) waitForGrabDone() tea.Cmd {
	return func() tea.Msg {
		select {
		case res := <-b.grabDoneChannel:
			return res
		case err := <-b.errorChannel:
			return err
		}
	}
}
