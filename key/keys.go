// Package key lists every configuration key by name.
package key

// DefinedFieldsCount pins the size of the defaults table. A test keeps
// the two in sync.
const DefinedFieldsCount = 28

// Catalog sources.
const (
	DefaultSources = "sources.default"
	SourceFeeds    = "sources.feeds"
)

// Seed values for the selection query when flags are omitted.
const (
	SearchSeasons     = "search.seasons"
	SearchEpisodes    = "search.episodes"
	SearchResolutions = "search.resolutions"
	SearchExtensions  = "search.extensions"
	SearchGroups      = "search.groups"
	SearchLatest      = "search.latest"
	SearchDuplicates  = "search.duplicates"
)

const SearchShowQuerySuggestions = "search.show_query_suggestions"

// Episode-to-text rendering.
const FormatStyle = "format.style"

// Grab history.
const (
	SeenSaveOnGrab = "seen.save_on_grab"
	SeenSkip       = "seen.skip"
)

// Release handoff.
const (
	DownloadHandler    = "download.handler"
	DownloadClientURL  = "download.client_url"
	DownloadClientUser = "download.client_user"
)

// Prompt mode.
const MiniSearchLimit = "mini.search_limit"

const IconsVariant = "icons.variant"

// Full-screen mode.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUIGrabOnEnter        = "tui.grab_on_enter"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowLinks          = "tui.show_links"
	TUIReverseEpisodes    = "tui.reverse_episodes"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
