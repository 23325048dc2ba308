package tui

import (
	"strconv"
	"strings"

	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, tea.Batch(cmds...)
	case settledMsg:
		return b, tea.Batch(append(cmds, b.settled(msg))...)
	case failedMsg:
		if msg.match.Path == b.current.Path {
			b.raiseError(msg.err)
		}
		return b, tea.Batch(cmds...)
	case submittedMsg:
		return b, tea.Batch(append(cmds, b.submitted(page.Outcome(msg)))...)
	case spinner.TickMsg:
		if b.isLoading(b.current.Page) || b.submitting {
			var cmd tea.Cmd
			b.spinnerC, cmd = b.spinnerC.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var (
		model tea.Model
		cmd   tea.Cmd
	)
	switch b.state {
	case pageState:
		model, cmd = b.updatePage(msg)
	case blogState:
		model, cmd = b.updateBlog(msg)
	case galleryState:
		model, cmd = b.updateGallery(msg)
	case lightboxState:
		model, cmd = b.updateLightbox(msg)
	case formState:
		model, cmd = b.updateForm(msg)
	case menuState:
		model, cmd = b.updateMenu(msg)
	case gotoState:
		model, cmd = b.updateGoto(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	default:
		model = b
	}

	return model, tea.Batch(append(cmds, cmd)...)
}

// settled applies a finished load. Results of superseded loads are dropped.
func (b *statefulBubble) settled(msg settledMsg) tea.Cmd {
	if !msg.settle() {
		return nil
	}

	if msg.match.Path != b.current.Path && msg.match.Page != footerPage {
		return nil
	}
	if msg.match.Page == footerPage && stateFor(b.current.Page) != pageState {
		return nil
	}

	if err := b.refresh(); err != nil {
		b.raiseError(err)
	}
	return nil
}

// navigate handles the keys shared by every page state. handled is false
// when msg is none of them.
func (b *statefulBubble) navigate(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	switch {
	case bubblesKey.Matches(msg, b.keymap.quit):
		return tea.Quit, true
	case bubblesKey.Matches(msg, b.keymap.back):
		return b.back(), true
	case bubblesKey.Matches(msg, b.keymap.menu):
		b.openOverlay(menuState)
		return nil, true
	case bubblesKey.Matches(msg, b.keymap.jump):
		b.gotoC.SetValue("")
		b.suggestion = b.suggest("")
		b.openOverlay(gotoState)
		return b.gotoC.Focus(), true
	case bubblesKey.Matches(msg, b.keymap.reload):
		return b.activate(), true
	}

	// digits jump straight to a menu entry
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		menu := router.Menu()
		if i := int(s[0] - '1'); i < len(menu) {
			return b.visit(router.Resolve(menu[i].Pattern)), true
		}
	}

	return nil, false
}

func (b *statefulBubble) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if bubblesKey.Matches(msg, b.keymap.openURL) && b.current.Page == router.BlogPost {
			view, _ := b.post.View()
			if view.Post != nil {
				return b, b.openURL(view.Post.FeaturedImageURL)
			}
			return b, nil
		}
		if bubblesKey.Matches(msg, b.keymap.top) {
			b.viewportC.GotoTop()
			return b, nil
		}
		if bubblesKey.Matches(msg, b.keymap.bottom) {
			b.viewportC.GotoBottom()
			return b, nil
		}
		if cmd, handled := b.navigate(msg); handled {
			return b, cmd
		}
	}

	if !b.scrollable {
		return b, nil
	}

	var cmd tea.Cmd
	b.viewportC, cmd = b.viewportC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateBlog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.searchC.Value() != "" {
				b.searchC.SetValue("")
				return b, b.search()
			}
			return b, b.back()
		case bubblesKey.Matches(msg, b.keymap.cycleCategory):
			return b, b.cycleCategory()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.blogC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			post, ok := item.internal.(content.BlogPost)
			if !ok {
				return b, nil
			}
			return b, b.visit(router.Resolve(router.Path(router.BlogPost, map[string]string{"id": strconv.Itoa(post.ID)})))
		case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown, msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
			var cmd tea.Cmd
			b.blogC, cmd = b.blogC.Update(msg)
			return b, cmd
		}

		var cmd tea.Cmd
		b.searchC, cmd = b.searchC.Update(msg)
		cmds = append(cmds, cmd, b.search())
		return b, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	b.blogC, cmd = b.blogC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateGallery(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.openLightbox(b.galleryC.Index())
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.cycleEvent):
			return b, b.cycleEventType()
		case bubblesKey.Matches(msg, b.keymap.cycleMedia):
			return b, b.cycleMediaType()
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if card, ok := b.selectedCard(); ok {
				return b, b.openURL(cardURL(card))
			}
			return b, nil
		}
		if cmd, handled := b.navigate(msg); handled {
			return b, cmd
		}
	}

	if !b.scrollable {
		return b, nil
	}

	var cmd tea.Cmd
	b.galleryC, cmd = b.galleryC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateLightbox(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	total := len(b.galleryCards())
	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.back, b.keymap.quit, b.keymap.confirm):
		b.galleryC.Select(b.lightboxAt)
		b.closeOverlay()
	case bubblesKey.Matches(keyMsg, b.keymap.left) && total > 0:
		b.lightboxAt = (b.lightboxAt - 1 + total) % total
	case bubblesKey.Matches(keyMsg, b.keymap.right) && total > 0:
		b.lightboxAt = (b.lightboxAt + 1) % total
	case bubblesKey.Matches(keyMsg, b.keymap.openURL):
		if card, ok := b.selectedCard(); ok {
			return b, b.openURL(cardURL(card))
		}
	}
	return b, nil
}

func (b *statefulBubble) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			return b, b.back()
		case bubblesKey.Matches(msg, b.keymap.submit):
			return b, b.submit()
		case msg.Type == tea.KeyEnter && b.focused < len(formInputs):
			return b, b.focusField(b.focused + 1)
		case msg.Type == tea.KeyTab:
			return b, b.focusField(b.focused + 1)
		case msg.Type == tea.KeyShiftTab:
			return b, b.focusField(b.focused - 1)
		}
	}

	var cmd tea.Cmd
	if b.focused < len(b.fieldsC) {
		b.fieldsC[b.focused], cmd = b.fieldsC[b.focused].Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			b.form.Set(formInputs[b.focused], b.fieldsC[b.focused].Value())
		}
	} else {
		b.messageC, cmd = b.messageC.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			b.form.Set(page.FieldMessage, b.messageC.Value())
		}
	}
	return b, cmd
}

func (b *statefulBubble) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back, b.keymap.menu):
			b.closeOverlay()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.menuC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			return b, b.visit(router.Resolve(item.internal.(router.Route).Pattern))
		}
	}

	var cmd tea.Cmd
	b.menuC, cmd = b.menuC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateGoto(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.gotoC.Blur()
			b.closeOverlay()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSuggestion):
			if r, ok := b.suggestion.Get(); ok {
				b.gotoC.SetValue(r.Pattern)
				b.gotoC.CursorEnd()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			target := strings.TrimSpace(b.gotoC.Value())
			if target == "" {
				if r, ok := b.suggestion.Get(); ok {
					target = r.Pattern
				}
			}
			b.gotoC.Blur()
			return b, b.visit(router.Resolve(target))
		}
	}

	var cmd tea.Cmd
	b.gotoC, cmd = b.gotoC.Update(msg)
	b.suggestion = b.suggest(b.gotoC.Value())
	return b, cmd
}

func (b *statefulBubble) suggest(input string) (found mo.Option[router.Route]) {
	if input == "" {
		return
	}
	if routes := router.Suggest(input); len(routes) > 0 {
		return mo.Some(routes[0])
	}
	return
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.retry):
		b.lastError = nil
		b.closeOverlay()
		return b, b.activate()
	case bubblesKey.Matches(keyMsg, b.keymap.back):
		b.lastError = nil
		b.closeOverlay()
		return b, b.back()
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return b, tea.Quit
	}
	return b, nil
}

func cardURL(card page.GalleryCard) string {
	if card.IsVideo() {
		return videoURL(card.EmbedURL, card.VideoURL, card.VideoFileURL)
	}
	return card.ImageURL
}
