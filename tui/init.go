package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/provider"
	"github.com/spf13/viper"
)

// Init starts the event loop. With default sources configured the
// source picker is skipped and loading begins right away. Catalog
// script updates run in the background either way.
func (b *statefulBubble) Init() tea.Cmd {
	names := viper.GetStringSlice(key.DefaultSources)
	if b.state == seenState || len(names) == 0 {
		return tea.Batch(textinput.Blink, b.loadProviders(), provider.UpdateScrapers())
	}

	providers := make([]*provider.Provider, 0, len(names))
	for _, name := range names {
		p, ok := provider.Get(name)
		if !ok {
			b.raiseError(fmt.Errorf("source %s not found", name))
			return nil
		}
		providers = append(providers, p)
	}

	if len(providers) == 1 {
		b.episodesC.Title = "Episodes - " + providers[0].Name
	}

	b.setState(loadingState)
	return tea.Batch(b.startLoading(), b.loadSources(providers), b.waitForSourcesLoaded(), provider.UpdateScrapers())
}
