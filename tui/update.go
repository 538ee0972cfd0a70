package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/episan-cli/episan/config"
	"github.com/episan-cli/episan/download"
	"github.com/episan-cli/episan/internal/ui"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/open"
	"github.com/episan-cli/episan/provider"
	"github.com/episan-cli/episan/query"
	"github.com/episan-cli/episan/search"
	"github.com/episan-cli/episan/seen"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// selectedEntry returns the typed payload behind the cursor of l.
func selectedEntry[T any](l *list.Model) (T, bool) {
	var zero T
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return zero, false
	}
	entry, ok := item.internal.(T)
	return entry, ok
}

// setAllMarks marks or unmarks every item of l and syncs the selection set.
func setAllMarks[T comparable](l *list.Model, selection map[T]struct{}, marked bool) {
	for _, item := range l.Items() {
		item := item.(*listItem)
		item.marked = marked

		entry := item.internal.(T)
		if marked {
			selection[entry] = struct{}{}
		} else {
			delete(selection, entry)
		}
	}
}

// toggleSelection flips the mark of item and syncs the selection set.
func toggleSelection[T comparable](item *listItem, selection map[T]struct{}) {
	entry := item.internal.(T)
	if item.marked {
		delete(selection, entry)
	} else {
		selection[entry] = struct{}{}
	}
	item.toggleMark()
}

// activeList returns the list component backing the current state, if any.
func (b *statefulBubble) activeList() *list.Model {
	switch b.state {
	case seenState:
		return &b.seenC
	case sourcesState:
		return &b.sourcesC
	case episodesState:
		return &b.episodesC
	case confirmState:
		return &b.confirmC
	case doneState:
		return &b.doneC
	default:
		return nil
	}
}

// wrapCursor jumps the cursor from either end of the active list to the
// opposite one.
func (b *statefulBubble) wrapCursor(msg tea.KeyMsg) bool {
	l := b.activeList()
	if l == nil {
		return false
	}

	n := len(l.Items())
	if n == 0 {
		return false
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.up) && l.Index() == 0:
		l.Select(n - 1)
	case bubblesKey.Matches(msg, b.keymap.down) && l.Index() == n-1:
		l.Select(0)
	default:
		return false
	}
	return true
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// The notifier consumes its own message types and ignores the rest.
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case provider.ScraperUpdatedMsg:
		return b, b.loadProviders()
	case error:
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		// While an async operation is in flight only the loading, grab
		// and error screens still take keys, everything else is dropped.
		if b.busy && !lo.Contains([]state{loadingState, grabState, errorState}, b.state) {
			return b, nil
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			return b.goBack(msg, cmd)
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case seenState:
		return b.updateSeen(msg)
	case sourcesState:
		return b.updateSources(msg)
	case searchState:
		return b.updateSearch(msg)
	case episodesState:
		return b.updateEpisodes(msg)
	case confirmState:
		return b.updateConfirm(msg)
	case grabState:
		return b.updateGrab(msg)
	case doneState:
		return b.updateDone(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

// goBack leaves the current state. An active list filter is handed the key
// instead, so esc first clears the filter and only then navigates.
func (b *statefulBubble) goBack(msg tea.KeyMsg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch b.state {
	case searchState:
		b.inputC.SetValue("")
	case seenState, sourcesState, episodesState:
		l := b.activeList()
		if l.FilterState() != list.Unfiltered {
			var c tea.Cmd
			*l, c = l.Update(msg)
			return b, c
		}

		if b.state == episodesState {
			b.selectedEpisodes = make(map[*source.Episode]struct{})
		}

		l.ResetSelected()
		l.ResetFilter()
		cmd = tea.Batch(cmd, l.NewStatusMessage(""))
	}

	b.previousState()
	b.stopLoading()
	return b, cmd
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case []*source.Episode:
		if viper.GetBool(key.TUIReverseEpisodes) {
			msg = lo.Reverse(msg)
		}

		items := make([]list.Item, len(msg))
		for i, e := range msg {
			items[i] = &listItem{internal: e}
		}

		cmds = append(cmds, b.episodesC.SetItems(items))
		b.newState(episodesState)
		b.stopLoading()
	case []source.Source:
		b.selectedSources = msg

		// Arriving from the seen list means the user asked to search a
		// grabbed series again with the provider it came from.
		if b.statesHistory.Peek() == seenState {
			if entry, ok := selectedEntry[*seen.GrabbedEpisode](&b.seenC); ok {
				b.progressStatus = fmt.Sprintf("Searching for %s...", entry.Series)
				return b, tea.Batch(b.searchEpisodes(entry.Series), b.waitForEpisodes(), b.spinnerC.Tick)
			}
		}

		b.stopLoading()
		b.newState(searchState)
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateSeen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.seenC.FilterState() != list.Filtering {
		switch {
		case b.wrapCursor(msg):
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openLink):
			if entry, ok := selectedEntry[*seen.GrabbedEpisode](&b.seenC); ok {
				if err := open.Start(entry.Link); err != nil {
					b.raiseError(err)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.remove):
			entry, ok := selectedEntry[*seen.GrabbedEpisode](&b.seenC)
			if !ok {
				break
			}

			if err := seen.Remove(entry); err != nil {
				b.raiseError(err)
				return b, nil
			}

			reload, err := b.loadSeen()
			if err != nil {
				b.raiseError(err)
				return b, nil
			}
			return b, reload
		case bubblesKey.Matches(msg, b.keymap.selectOne, b.keymap.confirm):
			entry, ok := selectedEntry[*seen.GrabbedEpisode](&b.seenC)
			if !ok {
				break
			}

			p, ok := provider.GetByID(entry.SourceID)
			if !ok {
				b.raiseError(fmt.Errorf("provider %s not found (%s was grabbed with it)", entry.SourceID, entry.Series))
				return b, nil
			}

			b.progressStatus = fmt.Sprintf("Loading %s...", p.Name)
			b.newState(loadingState)
			return b, tea.Batch(b.startLoading(), b.loadSources([]*provider.Provider{p}), b.waitForSourcesLoaded())
		}
	}

	b.seenC, cmd = b.seenC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSources(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// loadOne switches to a single provider and starts loading it.
	loadOne := func(p *provider.Provider) (tea.Model, tea.Cmd) {
		b.episodesC.Title = "Episodes - " + p.Name
		b.progressStatus = fmt.Sprintf("Loading %s...", p.Name)
		b.newState(loadingState)
		return b, tea.Batch(b.startLoading(), b.loadSources([]*provider.Provider{p}), b.waitForSourcesLoaded())
	}

	if msg, ok := msg.(tea.KeyMsg); ok && b.sourcesC.FilterState() != list.Filtering {
		switch {
		case b.wrapCursor(msg):
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.selectAll):
			setAllMarks(&b.sourcesC, b.selectedProviders, true)
		case bubblesKey.Matches(msg, b.keymap.clearSelection):
			setAllMarks(&b.sourcesC, b.selectedProviders, false)
		case bubblesKey.Matches(msg, b.keymap.selectOne):
			if item, ok := b.sourcesC.SelectedItem().(*listItem); ok {
				toggleSelection(item, b.selectedProviders)
			}
		case bubblesKey.Matches(msg, b.keymap.saveAsDefault):
			p, ok := selectedEntry[*provider.Provider](&b.sourcesC)
			if !ok {
				break
			}

			viper.Set(key.DefaultSources, []string{p.Name})
			if err := config.Persist(); err != nil {
				b.raiseError(err)
				break
			}

			b.sourcesC.NewStatusMessage(fmt.Sprintf("Saved %s as default source", p.Name))
			return loadOne(p)
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if len(b.selectedProviders) > 0 {
				b.progressStatus = "Loading selected providers..."
				b.newState(loadingState)
				return b, tea.Batch(b.startLoading(), b.loadSources(lo.Keys(b.selectedProviders)), b.waitForSourcesLoaded())
			}

			if p, ok := selectedEntry[*provider.Provider](&b.sourcesC); ok {
				return loadOne(p)
			}
		}
	}

	b.sourcesC, cmd = b.sourcesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.changeSource):
			b.newState(sourcesState)
			return b, b.loadProviders()
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			text := b.inputC.Value()
			b.progressStatus = fmt.Sprintf("Searching for %s...", text)
			b.startLoading()
			b.newState(loadingState)
			go query.Remember(text, 1)
			return b, tea.Batch(b.searchEpisodes(text), b.waitForEpisodes(), b.spinnerC.Tick)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	b.searchSuggestion = mo.None[string]()
	if text := b.inputC.Value(); text != "" {
		if suggestion, ok := query.Suggest(text).Get(); ok && suggestion != text {
			b.searchSuggestion = mo.Some(suggestion)
		}
	}

	return b, cmd
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && b.episodesC.FilterState() != list.Filtering {
		switch {
		case b.wrapCursor(msg):
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.changeSource):
			b.newState(sourcesState)
			return b, b.loadProviders()
		case bubblesKey.Matches(msg, b.keymap.openLink):
			if e, ok := selectedEntry[*source.Episode](&b.episodesC); ok {
				if err := open.Start(e.Link); err != nil {
					b.raiseError(err)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.selectOne):
			if item, ok := b.episodesC.SelectedItem().(*listItem); ok {
				toggleSelection(item, b.selectedEpisodes)
			}
		case bubblesKey.Matches(msg, b.keymap.selectAll):
			setAllMarks(&b.episodesC, b.selectedEpisodes, true)
		case bubblesKey.Matches(msg, b.keymap.clearSelection):
			setAllMarks(&b.episodesC, b.selectedEpisodes, false)
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if len(b.selectedEpisodes) > 0 {
				b.confirmC.Select(0)
				b.newState(confirmState)
				break
			}

			if !viper.GetBool(key.TUIGrabOnEnter) {
				break
			}

			e, ok := selectedEntry[*source.Episode](&b.episodesC)
			if !ok {
				break
			}

			b.newState(grabState)
			return b, tea.Batch(b.grabEpisodes([]*source.Episode{e}), b.waitForGrabDone(), b.startLoading())
		}
	}

	b.episodesC, cmd = b.episodesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case b.wrapCursor(msg):
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm, b.keymap.selectOne):
			choice, ok := selectedEntry[string](&b.confirmC)
			if !ok {
				break
			}

			switch choice {
			case "Grab":
				episodes := lo.Keys(b.selectedEpisodes)
				search.Order(episodes)

				b.newState(grabState)
				return b, tea.Batch(b.grabEpisodes(episodes), b.waitForGrabDone(), b.startLoading())
			case "Back to Episodes":
				b.previousState()
				return b, nil
			}
		}
	}

	b.confirmC, cmd = b.confirmC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateGrab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(grabDoneMsg); ok {
		b.stopLoading()
		b.currentGrab = nil

		// Consumed selections are cleared so a fresh search starts clean.
		b.selectedEpisodes = make(map[*source.Episode]struct{})
		for _, item := range b.episodesC.Items() {
			item.(*listItem).marked = false
		}

		if len(msg.failures) > 0 && msg.succeeded == 0 {
			b.raiseError(msg.failures[0])
			return b, nil
		}

		status := fmt.Sprintf("Grabbed %d", msg.succeeded)
		if len(msg.failures) > 0 {
			status = fmt.Sprintf("%s, %d failed (see log)", status, len(msg.failures))
		}

		b.doneC.Select(0)
		b.newState(doneState)

		statusCmd := b.doneC.NewStatusMessage(style.Faint(status))
		if len(msg.failures) > 0 && viper.GetString(key.DownloadHandler) == download.HandlerClient {
			// Failed daemon handoffs were queued by the download layer.
			return b, tea.Batch(statusCmd, ui.QueuedRetryNotice())
		}
		return b, statusCmd
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case b.wrapCursor(msg):
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm, b.keymap.selectOne):
			choice, ok := selectedEntry[string](&b.doneC)
			if !ok {
				break
			}

			switch choice {
			case "Search Again":
				b.inputC.SetValue("")
				b.newState(searchState)
				return b, nil
			case "Open Downloads Folder":
				if err := open.Start(where.Downloads()); err != nil {
					b.raiseError(err)
				}
				return b, nil
			case "Quit":
				return b, tea.Quit
			}
		}
	}

	b.doneC, cmd = b.doneC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return b, tea.Quit
	}
	return b, nil
}
