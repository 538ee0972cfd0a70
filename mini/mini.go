// Package mini implements the prompt-based frontend, a sequential
// alternative to the full-screen mode.
package mini

import (
	"os"

	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/util"
)

// truncateAt is the display width prompt labels are trimmed to. Run
// adjusts it to the attached terminal.
var truncateAt = 100

type Options struct {
	Continue bool
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	selectedSources  []source.Source
	foundEpisodes    []*source.Episode
	selectedEpisodes []*source.Episode
}

func (m *mini) setState(s state) {
	m.state = s
}

// newState transitions to s, recording the departure point unless the
// current screen is transient.
func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if m.state != grabState {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

// Run drives the prompt loop until the user quits or a prompt fails.
func Run(options *Options) error {
	m := new(mini)
	m.state = sourceSelectState
	if options.Continue {
		m.state = seenSelectState
	}

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case seenSelectState:
		return m.handleSeenSelectState()
	case sourceSelectState:
		return m.handleSourceSelectState()
	case searchState:
		return m.handleSearchState()
	case episodeSelectState:
		return m.handleEpisodeSelectState()
	case grabState:
		return m.handleGrabState()
	case doneState:
		return m.handleDoneState()
	case quitState:
		os.Exit(0)
	}

	return nil
}
