// Package icon renders UI symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/bencyn-cli/bencyn/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

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

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Address
	Phone
	Email
	Clock
	Video
	Image
	Link
	Search
	Mark
	Star
	Featured
)

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "X", kaomoji: "(╯°□°）╯︵ ┻━┻", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "OK", kaomoji: "(ᵔᴥᵔ)", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・ヾ", squares: "🟨"},
	Address:  {emoji: "📍", nerd: "", plain: "@", kaomoji: "(⌐■_■)", squares: "🟧"},
	Phone:    {emoji: "📞", nerd: "", plain: "T", kaomoji: "(☎ ˘ ³˘)", squares: "🟧"},
	Email:    {emoji: "✉️", nerd: "", plain: "M", kaomoji: "(・∀・)ノ", squares: "🟧"},
	Clock:    {emoji: "🕐", nerd: "", plain: "H", kaomoji: "(´-ω-`)", squares: "🟧"},
	Video:    {emoji: "🎬", nerd: "", plain: "V", kaomoji: "(◉_◉)", squares: "🟪"},
	Image:    {emoji: "🖼️", nerd: "", plain: "I", kaomoji: "(◕‿◕)", squares: "🟦"},
	Link:     {emoji: "🔗", nerd: "", plain: "->", kaomoji: "(☞ﾟヮﾟ)☞", squares: "⬜"},
	Search:   {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(ಠ_ಠ)", squares: "⬜"},
	Mark:     {emoji: "✔", nerd: "", plain: "*", kaomoji: "(•̀ᴗ•́)و", squares: "🟩"},
	Star:     {emoji: "⭐", nerd: "", plain: "*", kaomoji: "☆", squares: "🟨"},
	Featured: {emoji: "🌟", nerd: "", plain: "!", kaomoji: "(ﾉ◕ヮ◕)ﾉ*:･ﾟ✧", squares: "🟧"},
}

// Get renders i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
