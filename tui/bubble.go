package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/internal/ui"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/provider"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble is the model behind the full-screen mode. One screen
// is active at a time, components for the others idle in the
// background.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool
	busy          bool // Swallows input while an async operation runs

	keymap *statefulKeymap

	spinnerC  spinner.Model
	inputC    textinput.Model
	seenC     list.Model
	sourcesC  list.Model
	episodesC list.Model
	confirmC  list.Model
	doneC     list.Model
	progressC progress.Model
	helpC     help.Model

	selectedProviders map[*provider.Provider]struct{}
	selectedSources   []source.Source
	selectedEpisodes  map[*source.Episode]struct{}

	sourcesLoadedChannel chan []source.Source
	foundEpisodesChannel chan []*source.Episode
	grabDoneChannel      chan grabDoneMsg
	errorChannel         chan error

	progressStatus string

	currentGrab *source.Episode
	grabTotal   int
	grabCount   int
	lastError   error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

// raiseError switches to the failure view with err on display.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState transitions to s and records where we came from, so esc
// can go back. Transient screens stay out of the history.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	transient := []state{loadingState, grabState, confirmState}
	if !lo.Contains(transient, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// resize propagates new terminal dimensions to every component.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth, listHeight := width-xx, height-yy

	lists := []*list.Model{&b.seenC, &b.sourcesC, &b.episodesC, &b.confirmC, &b.doneC}
	for _, l := range lists {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.progressC.Width = listWidth
	b.helpC.Width = listWidth

	b.width = width - x
	b.height = height - y
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	b.busy = true
	return tea.Batch(b.episodesC.StartSpinner(), b.spinnerC.Tick)
}

func (b *statefulBubble) stopLoading() tea.Cmd {
	b.loading = false
	b.busy = false
	b.episodesC.StopSpinner()
	return nil
}

func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		keymap:            newStatefulKeymap(),
		selectedProviders: make(map[*provider.Provider]struct{}),
		selectedEpisodes:  make(map[*source.Episode]struct{}),

		sourcesLoadedChannel: make(chan []source.Source),
		foundEpisodesChannel: make(chan []*source.Episode),
		grabDoneChannel:      make(chan grabDoneMsg),
		errorChannel:         make(chan error),

		notifier: &ui.Model{},
		options:  options,
	}

	makeList := func(title string, showDescription bool, titleBg lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = showDescription
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(titleBg).Padding(0, 1)
		listC.StatusMessageLifetime = time.Hour
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search Releases (v%s)", constant.Version)
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.progressC = progress.New(progress.WithDefaultGradient())

	bubble.sourcesC = makeList("Catalog Sources", false, style.AccentColor)
	bubble.sourcesC.SetStatusBarItemName("source", "sources")

	bubble.seenC = makeList("Grab History", true, style.Yellow)
	bubble.seenC.SetStatusBarItemName("entry", "entries")

	bubble.episodesC = makeList("Episodes", true, style.Peach)
	bubble.episodesC.SetStatusBarItemName("episode", "episodes")

	bubble.confirmC = makeList("Confirm", false, style.Blue)
	bubble.confirmC.SetItems([]list.Item{
		&listItem{internal: "Grab"},
		&listItem{internal: "Back to Episodes"},
	})
	bubble.confirmC.SetStatusBarItemName("option", "options")
	bubble.confirmC.SetFilteringEnabled(false)

	bubble.doneC = makeList("Done", false, style.Mauve)
	bubble.doneC.SetItems([]list.Item{
		&listItem{internal: "Search Again"},
		&listItem{internal: "Open Downloads Folder"},
		&listItem{internal: "Quit"},
	})
	bubble.doneC.SetStatusBarItemName("option", "options")
	bubble.doneC.SetFilteringEnabled(false)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
