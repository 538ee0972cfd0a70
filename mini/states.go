package mini

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/episan-cli/episan/download"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/open"
	"github.com/episan-cli/episan/provider"
	"github.com/episan-cli/episan/query"
	"github.com/episan-cli/episan/search"
	"github.com/episan-cli/episan/seen"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/util"
	"github.com/episan-cli/episan/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type state int

const (
	searchState state = iota + 1
	sourceSelectState
	episodeSelectState
	grabState
	doneState
	seenSelectState
	quitState
)

func (m *mini) handleSourceSelectState() error {
	if names := viper.GetStringSlice(key.DefaultSources); len(names) != 0 {
		for _, name := range names {
			p, ok := provider.Get(name)
			if !ok {
				return fmt.Errorf("unknown source %q", name)
			}

			erase := progress("Initializing source..")
			s, err := p.CreateSource()
			if err != nil {
				return err
			}
			erase()

			m.selectedSources = append(m.selectedSources, s)
		}
	} else {
		var providers []*provider.Provider
		providers = append(providers, provider.Builtins()...)
		providers = append(providers, provider.Customs()...)

		slices.SortFunc(providers, func(a, b *provider.Provider) int {
			return strings.Compare(a.String(), b.String())
		})

		prompt := survey.Select{
			Message: "Select source",
			Options: lo.Map(providers, func(p *provider.Provider, _ int) string {
				return p.String()
			}),
		}

		var chosen string
		if err := survey.AskOne(&prompt, &chosen); err != nil {
			return err
		}

		p, ok := lo.Find(providers, func(p *provider.Provider) bool {
			return p.String() == chosen
		})
		if !ok {
			return fmt.Errorf("unknown source %q", chosen)
		}

		erase := progress("Initializing source..")
		s, err := p.CreateSource()
		if err != nil {
			return err
		}
		erase()

		m.selectedSources = []source.Source{s}
	}

	m.newState(searchState)
	return nil
}

func (m *mini) handleSearchState() error {
	input := survey.Input{
		Message: "Search releases",
	}

	var text string
	if err := survey.AskOne(&input, &text, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	go query.Remember(text, 1)
	return m.search(text)
}

// search runs the full pipeline over the selected sources and stages the
// result for episode selection.
func (m *mini) search(text string) error {
	erase := progress("Searching..")
	pool := search.BuildPool(m.selectedSources, text)
	erase()

	for _, failure := range pool.Failures {
		log.Error(failure)
	}

	if len(m.selectedSources) > 0 && len(pool.Failures) == len(m.selectedSources) {
		return fmt.Errorf("every source failed: %w", pool.Failures[0])
	}

	q, err := search.ConfigBuilder().Build()
	if err != nil {
		return err
	}

	episodes := search.Select(pool.Episodes, q)

	if viper.GetBool(key.SeenSkip) {
		if saved, err := seen.Get(); err == nil {
			episodes = lo.Filter(episodes, func(e *source.Episode, _ int) bool {
				_, grabbed := saved[e.Identity().String()]
				return !grabbed
			})
		}
	}

	if len(episodes) == 0 {
		fail("No matching episodes found")
		m.setState(searchState)
		return nil
	}

	max := lo.Min([]int{len(episodes), viper.GetInt(key.MiniSearchLimit)})
	m.foundEpisodes = episodes[:max]
	m.newState(episodeSelectState)
	return nil
}

func (m *mini) handleEpisodeSelectState() error {
	byLabel := make(map[string]*source.Episode, len(m.foundEpisodes))
	labels := make([]string, len(m.foundEpisodes))
	for i, e := range m.foundEpisodes {
		label := episodeLabel(i, e)
		labels[i] = label
		byLabel[label] = e
	}

	prompt := survey.MultiSelect{
		Message: "Pick episodes to grab",
		Options: labels,
	}

	var chosen []string
	if err := survey.AskOne(&prompt, &chosen); err != nil {
		return err
	}

	if len(chosen) == 0 {
		m.previousState()
		return nil
	}

	m.selectedEpisodes = lo.FilterMap(chosen, func(label string, _ int) (*source.Episode, bool) {
		e, ok := byLabel[label]
		return e, ok
	})

	m.newState(grabState)
	return nil
}

func (m *mini) handleGrabState() error {
	for _, episode := range m.selectedEpisodes {
		erase := progress(fmt.Sprintf("Grabbing %s..", episode))
		err := download.Do(episode)
		erase()

		if err != nil {
			log.Error(err)
			fail(fmt.Sprintf("Failed to grab %s: %v", episode, err))
			continue
		}

		success(fmt.Sprintf("Grabbed %s", episode))
	}

	m.selectedEpisodes = nil
	m.newState(doneState)
	return nil
}

func (m *mini) handleDoneState() error {
	const (
		searchAgain   = "Search again"
		openDownloads = "Open downloads folder"
		quitOption    = "Quit"
	)

	prompt := survey.Select{
		Message: "Done",
		Options: []string{searchAgain, openDownloads, quitOption},
	}

	var chosen string
	if err := survey.AskOne(&prompt, &chosen); err != nil {
		return err
	}

	switch chosen {
	case searchAgain:
		util.ClearScreen()
		m.newState(searchState)
	case openDownloads:
		if err := open.Start(where.Downloads()); err != nil {
			return err
		}
	case quitOption:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleSeenSelectState() error {
	saved, err := seen.Get()
	if err != nil {
		return err
	}

	entries := lo.Values(saved)
	if len(entries) == 0 {
		fail("Nothing grabbed yet")
		m.setState(sourceSelectState)
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].GrabbedAt.After(entries[j].GrabbedAt)
	})

	byLabel := make(map[string]*seen.GrabbedEpisode, len(entries))
	labels := make([]string, len(entries))
	for i, entry := range entries {
		label := fmt.Sprintf("%s (%s)", entry, entry.SourceID)
		labels[i] = label
		byLabel[label] = entry
	}

	prompt := survey.Select{
		Message: "Search again for",
		Options: labels,
	}

	var chosen string
	if err := survey.AskOne(&prompt, &chosen); err != nil {
		return err
	}

	entry := byLabel[chosen]

	var providers []*provider.Provider
	providers = append(providers, provider.Builtins()...)
	providers = append(providers, provider.Customs()...)

	p, ok := lo.Find(providers, func(p *provider.Provider) bool {
		return p.ID == entry.SourceID
	})
	if !ok {
		return fmt.Errorf("provider %s not found (was used for %s)", entry.SourceID, entry.Series)
	}

	erase := progress("Initializing source..")
	s, err := p.CreateSource()
	if err != nil {
		return err
	}
	erase()

	m.selectedSources = []source.Source{s}
	return m.search(entry.Series)
}
