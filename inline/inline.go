// Package inline assembles a single page without the terminal UI and
// writes it as JSON or plain text.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bencyn-cli/bencyn/log"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	"github.com/bencyn-cli/bencyn/thumbnail"
)

var ErrNotFound = errors.New("page not found")

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Assembler == nil {
		options.Assembler = page.FromConfig()
	}

	output := Assemble(ctx, options)

	var err error
	if options.Json {
		err = writeJson(options.Out, output)
	} else {
		err = writeText(options.Out, output)
	}
	if err != nil {
		return err
	}

	if output.NotFound != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, output.NotFound.Path)
	}
	return nil
}

// Assemble resolves options.Path and builds its view model.
func Assemble(ctx context.Context, options *Options) *Output {
	a := options.Assembler
	m := router.Resolve(options.Path)
	log.Infof("inline: assembling %s as %s", m.Path, m.Page)

	output := &Output{Route: m.Path, Page: m.Page}
	if len(m.Params) > 0 {
		output.Params = m.Params
	}

	switch m.Page {
	case router.Home:
		view, live := a.Home(ctx)
		output.Home, output.WithData = &view, live
	case router.About:
		view, live := a.About(ctx)
		output.About, output.WithData = &view, live
	case router.Services:
		view, live := a.Services(ctx)
		output.Services, output.WithData = &view, live
	case router.Blog:
		view, live := a.Blog(ctx, options.Blog)
		output.Blog, output.WithData = &view, live
	case router.BlogPost:
		view, live := a.BlogPost(ctx, m.Param("id"))
		output.Post, output.WithData = &view, live
	case router.Gallery:
		thumbs := options.Thumbnails
		if thumbs == nil {
			thumbs = thumbnail.CacheFromConfig()
		}
		defer thumbs.Reset()
		view, live := a.Gallery(ctx, options.Gallery, thumbs)
		output.Gallery, output.WithData = &view, live
	case router.Updates:
		view, live := a.Updates(ctx)
		output.Updates, output.WithData = &view, live
	case router.Contact:
		view, live := a.ContactInfo(ctx)
		output.Contact, output.WithData = &view, live
	default:
		output.NotFound = &NotFound{Path: m.Path}
		if r, ok := router.Closest(m.Path).Get(); ok {
			output.NotFound.Suggestion = r.Pattern
		}
	}

	if options.Footer {
		footer, _ := a.Footer(ctx)
		output.Footer = &footer
	}

	return output
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
