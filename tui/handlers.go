package tui

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/internal/ui"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/bencyn-cli/bencyn/open"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// settledMsg carries an assembled view back to the program. settle
// applies it to the loader and reports false when a newer load won.
type settledMsg struct {
	match  router.Match
	settle func() bool
}

// failedMsg is sent when assembling a page panicked.
type failedMsg struct {
	match router.Match
	err   error
}

type submittedMsg page.Outcome

// load begins a load on l right away and assembles in the returned command.
func load[V any](b *statefulBubble, m router.Match, l *page.Loader[V], assemble func(context.Context) (V, bool)) tea.Cmd {
	ticket := l.Begin()
	ctx := b.ctx

	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("assembling %s: %v\n%s", m.Path, r, debug.Stack())
				l.Abandon(ticket)
				msg = failedMsg{match: m, err: fmt.Errorf("%v", r)}
			}
		}()

		view, withData := assemble(ctx)
		return settledMsg{
			match: m,
			settle: func() bool {
				return l.Settle(ticket, view, withData)
			},
		}
	}
}

// fetch returns the load for m, or nil when m has nothing to fetch.
func (b *statefulBubble) fetch(m router.Match) tea.Cmd {
	a := b.assembler

	switch m.Page {
	case router.Home:
		return load(b, m, &b.home, a.Home)
	case router.About:
		return load(b, m, &b.about, a.About)
	case router.Services:
		return load(b, m, &b.services, a.Services)
	case router.Blog:
		q := b.blogQuery
		return load(b, m, &b.blog, func(ctx context.Context) (page.BlogView, bool) {
			return a.Blog(ctx, q)
		})
	case router.BlogPost:
		id := m.Param("id")
		return load(b, m, &b.post, func(ctx context.Context) (page.BlogPostView, bool) {
			return a.BlogPost(ctx, id)
		})
	case router.Gallery:
		q, thumbs := b.galleryQuery, b.thumbs
		return load(b, m, &b.gallery, func(ctx context.Context) (page.GalleryView, bool) {
			return a.Gallery(ctx, q, thumbs)
		})
	case router.Updates:
		return load(b, m, &b.updates, a.Updates)
	case router.Contact:
		return load(b, m, &b.contact, a.ContactInfo)
	case footerPage:
		return load(b, m, &b.footer, a.Footer)
	default:
		return nil
	}
}

func (b *statefulBubble) fetchFooter() tea.Cmd {
	return b.fetch(router.Match{Page: footerPage, Path: string(footerPage)})
}

// isLoading reports whether p has a load in flight.
func (b *statefulBubble) isLoading(p router.Page) bool {
	switch p {
	case router.Home:
		return b.home.IsLoading()
	case router.About:
		return b.about.IsLoading()
	case router.Services:
		return b.services.IsLoading()
	case router.Blog:
		return b.blog.IsLoading()
	case router.BlogPost:
		return b.post.IsLoading()
	case router.Gallery:
		return b.gallery.IsLoading()
	case router.Updates:
		return b.updates.IsLoading()
	case router.Contact:
		return b.contact.IsLoading()
	default:
		return false
	}
}

// refresh pushes the current page's settled view into its component.
// Rendering is guarded: a panic becomes an error for the error view.
func (b *statefulBubble) refresh() (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("rendering %s: %v\n%s", b.current.Path, r, debug.Stack())
			err = fmt.Errorf("%v", r)
		}
	}()

	switch stateFor(b.current.Page) {
	case pageState:
		if b.current.Path != "" {
			b.viewportC.SetContent(b.renderPage())
		}
	case blogState:
		view, _ := b.blog.View()
		b.blogC.Title = "Blog " + categoryLabel(b.blogQuery.Category)
		b.blogC.SetItems(lo.Map(view.Posts, func(p content.BlogPost, _ int) list.Item {
			return &listItem{internal: p}
		}))
		if !b.blog.IsLoading() {
			b.blogC.StopSpinner()
		}
	case galleryState:
		b.galleryC.Title = "Gallery " + galleryLabel(b.galleryQuery)
		b.galleryC.SetItems(lo.Map(b.galleryCards(), func(c page.GalleryCard, _ int) list.Item {
			return &listItem{internal: c}
		}))
		if !b.gallery.IsLoading() {
			b.galleryC.StopSpinner()
		}
	}

	return nil
}

// galleryCards lists featured items first, the order the lightbox steps through.
func (b *statefulBubble) galleryCards() []page.GalleryCard {
	view, _ := b.gallery.View()
	return append(append([]page.GalleryCard{}, view.Featured...), view.Regular...)
}

func (b *statefulBubble) selectedCard() (page.GalleryCard, bool) {
	if b.state == lightboxState {
		cards := b.galleryCards()
		if b.lightboxAt < len(cards) {
			return cards[b.lightboxAt], true
		}
		return page.GalleryCard{}, false
	}

	item, ok := b.galleryC.SelectedItem().(*listItem)
	if !ok {
		return page.GalleryCard{}, false
	}
	card, ok := item.internal.(page.GalleryCard)
	return card, ok
}

func (b *statefulBubble) cycleCategory() tea.Cmd {
	b.blogQuery.Category = next(page.BlogCategories, b.blogQuery.Category)
	return b.activate()
}

func (b *statefulBubble) cycleEventType() tea.Cmd {
	values := lo.Map(page.EventTypes, func(c page.Choice, _ int) string { return c.Value })
	b.galleryQuery.EventType = next(values, b.galleryQuery.EventType)
	return b.activate()
}

func (b *statefulBubble) cycleMediaType() tea.Cmd {
	values := lo.Map(page.MediaTypes, func(c page.Choice, _ int) string { return c.Value })
	b.galleryQuery.MediaType = next(values, b.galleryQuery.MediaType)
	return b.activate()
}

// search reissues the blog load for the current input. Earlier loads
// still in flight lose to this one.
func (b *statefulBubble) search() tea.Cmd {
	if b.blogQuery.Search == b.searchC.Value() {
		return nil
	}
	b.blogQuery.Search = b.searchC.Value()
	return b.activate()
}

// submit validates locally and only posts a valid form.
func (b *statefulBubble) submit() tea.Cmd {
	if b.submitting {
		return nil
	}

	for i, field := range formInputs {
		b.form.Set(field, b.fieldsC[i].Value())
	}
	b.form.Set(page.FieldMessage, b.messageC.Value())

	if errs := page.Validate(b.form.Values()); len(errs) > 0 {
		// never reaches the network
		b.form.Submit(b.ctx)
		return nil
	}

	b.submitting = true
	form, ctx := b.form, b.ctx
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		return submittedMsg(form.Submit(ctx))
	})
}

func (b *statefulBubble) submitted(outcome page.Outcome) tea.Cmd {
	b.submitting = false
	if outcome.Status == page.FormSucceeded {
		b.resetFields()
	}
	if outcome.Status == page.FormInvalid {
		return nil
	}
	return ui.Notify(outcome.Message)
}

// openURL hands url to the system browser.
func (b *statefulBubble) openURL(url string) tea.Cmd {
	if url == "" {
		return ui.Notify("Nothing to open")
	}
	if err := open.Start(url); err != nil {
		log.Warn(err)
		return ui.Notify("Could not open " + url)
	}
	return nil
}

func next(values []string, current string) string {
	if len(values) == 0 {
		return current
	}
	_, i, _ := lo.FindIndexOf(values, func(v string) bool { return v == current })
	return values[(i+1)%len(values)]
}
