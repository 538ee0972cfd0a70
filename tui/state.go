package tui

// state names one screen of the interactive flow. The happy path runs
// sources, search, episodes, confirm, grab, done. Loading and error
// are reachable from any of them.
type state int

const (
	loadingState state = iota
	errorState
	seenState
	sourcesState
	searchState
	episodesState
	confirmState
	grabState
	doneState
)
