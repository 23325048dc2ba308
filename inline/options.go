package inline

import (
	"fmt"
	"io"

	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/thumbnail"
	"github.com/samber/lo"
)

type Options struct {
	Out  io.Writer
	Path string
	Json bool

	// Footer adds the site footer to the output.
	Footer bool

	Blog    page.BlogQuery
	Gallery page.GalleryQuery

	// Assembler and Thumbnails default to the configured ones.
	Assembler  *page.Assembler
	Thumbnails *thumbnail.Cache
}

// ParseCategory accepts a blog category case-insensitively.
func ParseCategory(value string) (string, error) {
	if value == "" {
		return "all", nil
	}
	c, ok := lo.Find(page.BlogCategories, func(c string) bool { return equalFold(c, value) })
	if !ok {
		return "", fmt.Errorf("unknown category %q, expected one of %v", value, page.BlogCategories)
	}
	return c, nil
}

// ParseEventType accepts an event type value or label.
func ParseEventType(value string) (string, error) {
	return parseChoice("event type", page.EventTypes, value)
}

// ParseMediaType accepts a media type value or label.
func ParseMediaType(value string) (string, error) {
	return parseChoice("media type", page.MediaTypes, value)
}

func parseChoice(what string, choices []page.Choice, value string) (string, error) {
	if value == "" {
		return "all", nil
	}
	c, ok := lo.Find(choices, func(c page.Choice) bool {
		return equalFold(c.Value, value) || equalFold(c.Label, value)
	})
	if !ok {
		values := lo.Map(choices, func(c page.Choice, _ int) string { return c.Value })
		return "", fmt.Errorf("unknown %s %q, expected one of %v", what, value, values)
	}
	return c.Value, nil
}
