package tui

import (
	"context"
	"time"

	"github.com/bencyn-cli/bencyn/internal/ui"
	"github.com/bencyn-cli/bencyn/key"
	"github.com/bencyn-cli/bencyn/modal"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/bencyn-cli/bencyn/thumbnail"
	"github.com/bencyn-cli/bencyn/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble is the whole program state: the page being shown, the
// loaders behind every page and the components that render them.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	visited       util.Stack[router.Match]
	current       router.Match

	keymap *statefulKeymap

	assembler *page.Assembler
	thumbs    *thumbnail.Cache
	ctx       context.Context
	cancel    context.CancelFunc

	home     page.Loader[page.HomeView]
	about    page.Loader[page.AboutView]
	services page.Loader[page.ServicesView]
	blog     page.Loader[page.BlogView]
	post     page.Loader[page.BlogPostView]
	gallery  page.Loader[page.GalleryView]
	updates  page.Loader[page.UpdatesView]
	contact  page.Loader[page.ContactView]
	footer   page.Loader[page.FooterView]

	blogQuery    page.BlogQuery
	galleryQuery page.GalleryQuery
	form         *page.Form
	focused      int
	submitting   bool

	// components
	spinnerC  spinner.Model
	viewportC viewport.Model
	menuC     list.Model
	blogC     list.Model
	galleryC  list.Model
	searchC   textinput.Model
	gotoC     textinput.Model
	fieldsC   []textinput.Model
	messageC  textarea.Model
	helpC     help.Model

	scrollable bool
	scroll     *modal.Lock
	release    modal.Release
	lightboxAt int

	lastError  error
	width      int
	height     int
	suggestion mo.Option[router.Route]
	notifier   *ui.Model

	options *Options
}

// footerPage keys the footer load, which is not a route of its own.
const footerPage router.Page = "footer"

// historyLimit bounds how many pages esc can walk back through.
const historyLimit = 64

// formInputs are the single line fields in display order, the message
// textarea comes last.
var formInputs = []string{page.FieldName, page.FieldEmail, page.FieldPhone, page.FieldSubject}

func (b *statefulBubble) raiseError(err error) {
	if b.state == lightboxState {
		b.releaseModal()
	}
	b.lastError = err
	b.openOverlay(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// openOverlay shows s over the current state. Esc returns to it.
func (b *statefulBubble) openOverlay(s state) {
	if b.state == s {
		return
	}
	if !lo.Contains(overlays, b.state) {
		b.statesHistory.Push(b.state)
	}
	b.setState(s)
}

func (b *statefulBubble) closeOverlay() {
	if b.state == lightboxState {
		b.releaseModal()
	}
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
		return
	}
	b.setState(stateFor(b.current.Page))
}

// visit makes m the current page and starts loading it.
func (b *statefulBubble) visit(m router.Match) tea.Cmd {
	if b.current.Path != "" {
		b.visited.Push(b.current)
	}
	return b.mount(m)
}

// back returns to the previous page. The first page has nowhere to go.
func (b *statefulBubble) back() tea.Cmd {
	if b.visited.Len() == 0 {
		return nil
	}
	return b.mount(b.visited.Pop())
}

func (b *statefulBubble) mount(m router.Match) tea.Cmd {
	b.unmount()

	b.current = m
	b.statesHistory.Clear()
	b.setState(stateFor(m.Page))
	b.viewportC.GotoTop()

	switch m.Page {
	case router.Contact:
		b.focusField(0)
	case router.Blog:
		b.searchC.Focus()
	}

	return b.activate()
}

// unmount drops whatever the current page holds on to.
func (b *statefulBubble) unmount() {
	b.releaseModal()
	if b.current.Page == router.Gallery {
		b.thumbs.Reset()
	}
	b.searchC.Blur()
}

// activate fetches the current page and refreshes the components.
func (b *statefulBubble) activate() tea.Cmd {
	fetch := b.fetch(b.current)
	if err := b.refresh(); err != nil {
		b.raiseError(err)
	}
	if fetch == nil {
		return nil
	}

	cmds := []tea.Cmd{fetch, b.spinnerC.Tick}
	switch b.current.Page {
	case router.Blog:
		cmds = append(cmds, b.blogC.StartSpinner())
	case router.Gallery:
		cmds = append(cmds, b.galleryC.StartSpinner())
	}
	return tea.Batch(cmds...)
}

// ScrollEnabled and SetScrollEnabled let a modal freeze the page behind it.
func (b *statefulBubble) ScrollEnabled() bool {
	return b.scrollable
}

func (b *statefulBubble) SetScrollEnabled(enabled bool) {
	b.scrollable = enabled
	b.viewportC.MouseWheelEnabled = enabled
}

func (b *statefulBubble) openLightbox(index int) {
	cards := b.galleryCards()
	if index < 0 || index >= len(cards) {
		return
	}

	b.lightboxAt = index
	if b.release == nil {
		b.release = b.scroll.Acquire()
	}
	b.openOverlay(lightboxState)
}

func (b *statefulBubble) releaseModal() {
	if b.release != nil {
		b.release()
		b.release = nil
	}
}

func (b *statefulBubble) focusField(i int) tea.Cmd {
	n := len(formInputs) + 1
	b.focused = (i%n + n) % n

	var cmd tea.Cmd
	for j := range b.fieldsC {
		if j == b.focused {
			cmd = b.fieldsC[j].Focus()
		} else {
			b.fieldsC[j].Blur()
		}
	}

	if b.focused == len(formInputs) {
		cmd = b.messageC.Focus()
	} else {
		b.messageC.Blur()
	}
	return cmd
}

func (b *statefulBubble) resetFields() {
	for i := range b.fieldsC {
		b.fieldsC[i].SetValue("")
	}
	b.messageC.SetValue("")
	b.focusField(0)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	b.menuC.SetSize(listWidth, listHeight)
	b.menuC.Help.Width = listWidth

	// the blog list shares the screen with the search input
	b.blogC.SetSize(listWidth, listHeight-2)
	b.blogC.Help.Width = listWidth

	b.galleryC.SetSize(listWidth, listHeight)
	b.galleryC.Help.Width = listWidth

	b.viewportC.Width = styledWidth
	b.viewportC.Height = util.Max(styledHeight-2, 1)

	b.searchC.Width = listWidth
	b.gotoC.Width = styledWidth
	for i := range b.fieldsC {
		b.fieldsC[i].Width = util.Min(styledWidth, 60)
	}
	b.messageC.SetWidth(util.Min(styledWidth, 60))

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth

	if err := b.refresh(); err != nil {
		b.raiseError(err)
	}
}

func (b *statefulBubble) close() {
	b.releaseModal()
	b.thumbs.Reset()
	b.cancel()
}

func newBubble(options *Options, assembler *page.Assembler, thumbs *thumbnail.Cache) *statefulBubble {
	ctx, cancel := context.WithCancel(context.Background())

	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		visited:       util.Stack[router.Match]{Limit: historyLimit},
		keymap:        keymap,
		assembler:     assembler,
		thumbs:        thumbs,
		ctx:           ctx,
		cancel:        cancel,
		form:          assembler.NewForm(),
		blogQuery:     page.BlogQuery{Category: "all"},
		galleryQuery:  page.GalleryQuery{EventType: "all", MediaType: "all"},
		scrollable:    true,
		notifier:      ui.New(lipgloss.NewStyle().Foreground(style.SuccessColor)),
		options:       options,
	}
	bubble.scroll = modal.New(&bubble)

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
		KeyMap     mo.Option[list.KeyMap]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(style.Text)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = options.KeyMap.OrElse(bubble.keymap.forList())
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.viewportC = viewport.New(0, 0)
	bubble.viewportC.KeyMap = keymap.forViewport()
	bubble.viewportC.MouseWheelEnabled = true

	bubble.menuC = makeList("B.C BENCYN SUSU", false, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Orange).Padding(0, 1),
		),
	})
	bubble.menuC.SetItems(lo.Map(router.Menu(), func(r router.Route, _ int) list.Item {
		return &listItem{internal: r}
	}))

	bubble.blogC = makeList("Blog", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Orange).Padding(0, 1),
		),
		KeyMap: mo.Some(keymap.forSearchList()),
	})
	bubble.blogC.SetStatusBarItemName("article", "articles")

	bubble.galleryC = makeList("Gallery", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Green).Padding(0, 1),
		),
	})
	bubble.galleryC.SetStatusBarItemName("item", "items")

	bubble.searchC = textinput.New()
	bubble.searchC.Placeholder = "Search articles..."
	bubble.searchC.CharLimit = 80
	bubble.searchC.Prompt = "Search: "

	bubble.gotoC = textinput.New()
	bubble.gotoC.Placeholder = "/gallery"
	bubble.gotoC.CharLimit = 80
	bubble.gotoC.Prompt = "Go to: "

	placeholders := map[string]string{
		page.FieldName:    "Your full name",
		page.FieldEmail:   "your.email@example.com",
		page.FieldPhone:   "+233 XX XXX XXXX",
		page.FieldSubject: "How can we help you?",
	}
	bubble.fieldsC = lo.Map(formInputs, func(field string, _ int) textinput.Model {
		input := textinput.New()
		input.Placeholder = placeholders[field]
		input.CharLimit = 120
		input.Prompt = ""
		return input
	})

	bubble.messageC = textarea.New()
	bubble.messageC.Placeholder = "Tell us more about your inquiry..."
	bubble.messageC.ShowLineNumbers = false
	bubble.messageC.SetHeight(5)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
