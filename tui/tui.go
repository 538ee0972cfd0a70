// Package tui implements the full-screen interactive mode.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures how the interactive mode starts.
type Options struct {
	// Continue starts at the grab history instead of source selection.
	Continue bool
}

// Run blocks inside the Bubble Tea program until the user quits.
func Run(options *Options) error {
	b := newBubble(options)

	start := sourcesState
	if options.Continue {
		if _, err := b.loadSeen(); err != nil {
			return err
		}
		start = seenState
	}
	b.newState(start)

	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}
