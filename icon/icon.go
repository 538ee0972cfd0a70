// Package icon renders the interface symbols as emoji, nerd-font
// glyphs, plain ASCII, kaomoji or Unicode squares, depending on the
// configured variant.
package icon

import (
	"github.com/episan-cli/episan/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the icon styles the icons.variant key
// accepts.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef holds one symbol's glyph per variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders an icon in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}

// Icon identifies a symbol in the registry below.
type Icon uint8

const (
	Lua Icon = iota
	Feed
	Search
	Progress
	Success
	Fail
	Link
	Mark
	Download
)

// icons maps each identifier to its per-variant glyphs.
var icons = map[Icon]*iconDef{
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(=^･ω･^=)",
		squares: "■",
	},
	Feed: {
		emoji:   "📡",
		nerd:    "",
		plain:   "Rss",
		kaomoji: "((･ω･))",
		squares: "▤",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "[?]",
		kaomoji: "(・・ )?",
		squares: "▢",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(  - З-)",
		squares: "▱",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "[ok]",
		kaomoji: "(￣▽￣)",
		squares: "▣",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "[x]",
		kaomoji: "(╯°□°)╯",
		squares: "▨",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(つ・・)つ",
		squares: "▭",
	},
	Mark: {
		emoji:   "★",
		nerd:    "",
		plain:   "*",
		kaomoji: "☆",
		squares: "▰",
	},
	Download: {
		emoji:   "📥",
		nerd:    "",
		plain:   "[v]",
		kaomoji: "(・∀・)",
		squares: "▼",
	},
}
