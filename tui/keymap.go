package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/style"
)

// statefulKeymap exposes different bindings depending on the screen,
// so the help bar only ever shows what currently works.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	selectOne, selectAll, clearSelection,
	acceptSearchSuggestion,
	remove,
	confirm,
	openLink,
	grab,
	back,
	filter,
	up, down, left, right,
	top, bottom,
	saveAsDefault, changeSource,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(s state) {
	k.state = s
}

func bind(help string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], help),
	)
}

func newStatefulKeymap() *statefulKeymap {
	k := &statefulKeymap{
		quit:                   bind("quit", "q"),
		forceQuit:              bind("quit", "ctrl+c", "ctrl+d"),
		remove:                 bind("remove", "d"),
		clearSelection:         bind("clear selection", "backspace"),
		confirm:                bind("confirm", "enter"),
		openLink:               bind("open link", "o"),
		acceptSearchSuggestion: bind("accept search suggestion", "tab"),
		back:                   bind("back", "esc"),
		filter:                 bind("filter", "/"),
		top:                    bind("top", "g"),
		bottom:                 bind("bottom", "G"),
		showHelp:               bind("help", "?", "h"),
		saveAsDefault:          bind("save as default", "S", "ctrl+s"),
		changeSource:           bind("change source", "S"),
	}

	// Bindings whose displayed key differs from the raw key name.
	k.selectOne = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select one"))
	k.selectAll = key.NewBinding(key.WithKeys("ctrl+a", "tab", "*"), key.WithHelp("tab", "select all"))
	k.up = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up"))
	k.down = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down"))
	k.left = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left"))
	k.right = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right"))
	k.grab = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("grab")),
	)

	return k
}

// help returns the short and the full binding set for the current
// screen.
func (k *statefulKeymap) help() (short, full []key.Binding) {
	same := func(bindings ...key.Binding) ([]key.Binding, []key.Binding) {
		return bindings, bindings
	}

	switch k.state {
	case loadingState:
		return same(k.forceQuit, k.back)
	case seenState:
		return same(k.confirm, k.remove, k.back, k.openLink)
	case sourcesState:
		search := withDescription(k.confirm, "search with selected")
		short = []key.Binding{k.selectOne, k.selectAll, search, k.saveAsDefault}
		full = []key.Binding{k.selectOne, k.selectAll, k.clearSelection, search, k.saveAsDefault}
		return short, full
	case searchState:
		return same(k.confirm, k.acceptSearchSuggestion, k.changeSource, k.forceQuit)
	case episodesState:
		short = []key.Binding{k.grab, k.selectOne, k.selectAll, k.back}
		full = []key.Binding{k.grab, k.selectOne, k.selectAll, k.clearSelection, k.openLink, k.filter, k.back}
		return short, full
	case confirmState:
		return same(k.confirm, k.back)
	case grabState:
		return same(k.back, k.forceQuit)
	case doneState:
		return same(k.confirm, k.back, k.quit)
	case errorState:
		return same(k.back, k.quit)
	default:
		return same()
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

// forList adapts the keymap to the shape the list component expects.
func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		Filter:               k.filter,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
