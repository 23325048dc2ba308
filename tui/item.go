package tui

import (
	"fmt"
	"strings"

	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/icon"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/bencyn-cli/bencyn/thumbnail"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/charmbracelet/lipgloss"
)

// listItem implements list.Item for menu routes, blog posts and gallery cards.
type listItem struct {
	internal interface{}
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case router.Route:
		title = e.Title
	case content.BlogPost:
		title = e.Title
	case page.GalleryCard:
		title = e.Title
		if e.IsFeatured {
			title = fmt.Sprintf("%s %s", title, lipgloss.NewStyle().Foreground(style.AccentColor).Render(icon.Get(icon.Featured)))
		}
	default:
		title = t.FilterValue()
	}
	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case router.Route:
		description = e.Pattern
	case content.BlogPost:
		parts := []string{
			lipgloss.NewStyle().Foreground(style.AccentColor).Render(e.Category),
			e.Author,
			formatDate(e.CreatedDate),
		}
		if e.Views > 0 {
			parts = append(parts, util.Quantify(e.Views, "view", "views"))
		}
		description = joinParts(parts)
	case page.GalleryCard:
		media := icon.Get(icon.Image)
		if e.IsVideo() {
			media = icon.Get(icon.Video)
		}
		parts := []string{
			media,
			lipgloss.NewStyle().Foreground(style.SecondaryColor).Render(util.Capitalize(e.EventType)),
			formatDate(e.EventDate),
		}
		if e.Thumbnail.Source == thumbnail.SourcePlaceholder {
			parts = append(parts, style.Faint(e.Thumbnail.Label))
		}
		description = joinParts(parts)
	}
	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case router.Route:
		return e.Title
	case content.BlogPost:
		return e.Title
	case page.GalleryCard:
		return e.Title
	case string:
		return e
	default:
		return ""
	}
}

func joinParts(parts []string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " • ")
}
