package tui

import (
	"github.com/bencyn-cli/bencyn/color"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
)

// statefulKeymap holds every binding and knows which ones apply in the current state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm, back,
	menu, jump, acceptSuggestion,
	openURL, reload, retry,
	nextField, prevField, submit,
	cycleCategory, cycleEvent, cycleMedia,
	up, down, left, right,
	top, bottom,
	pageUp, pageDown,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		jump: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to"),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open url"),
		),
		reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp(style.Fg(color.Orange)("r"), style.Fg(color.Orange)("try again")),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		prevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp(style.Fg(color.Orange)("ctrl+s"), style.Fg(color.Orange)("send message")),
		),
		cycleCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "category"),
		),
		cycleEvent: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "event type"),
		),
		cycleMedia: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "media type"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next"),
		),
		top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case pageState:
		return h(k.menu, k.jump, k.back, k.quit),
			h(k.up, k.down, k.pageUp, k.pageDown, k.top, k.bottom, k.menu, k.jump, k.openURL, k.reload, k.back, k.quit)
	case blogState:
		return to2(h(withDescription(k.confirm, "read"), k.cycleCategory, k.back))
	case galleryState:
		return h(withDescription(k.confirm, "view"), k.cycleEvent, k.cycleMedia, k.back),
			h(withDescription(k.confirm, "view"), k.cycleEvent, k.cycleMedia, k.openURL, k.menu, k.jump, k.reload, k.back, k.quit)
	case lightboxState:
		return to2(h(k.left, k.right, k.openURL, withDescription(k.back, "close")))
	case formState:
		return to2(h(k.submit, k.nextField, k.prevField, k.back))
	case menuState:
		return to2(h(withDescription(k.confirm, "go"), withDescription(k.back, "close")))
	case gotoState:
		return to2(h(withDescription(k.confirm, "go"), k.acceptSuggestion, withDescription(k.back, "close")))
	case errorState:
		return to2(h(k.retry, k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:      k.up,
		CursorDown:    k.down,
		NextPage:      k.right,
		PrevPage:      k.left,
		GoToStart:     k.top,
		GoToEnd:       k.bottom,
		ShowFullHelp:  k.showHelp,
		CloseFullHelp: k.showHelp,
		Quit:          k.quit,
		ForceQuit:     k.forceQuit,
	}
}

// forSearchList leaves every printable key to the search input.
func (k *statefulKeymap) forSearchList() list.KeyMap {
	arrows := func(keys, help string) key.Binding {
		return key.NewBinding(key.WithKeys(keys), key.WithHelp(help, ""))
	}
	return list.KeyMap{
		CursorUp:   arrows("up", "↑"),
		CursorDown: arrows("down", "↓"),
		NextPage:   arrows("pgdown", "pgdn"),
		PrevPage:   arrows("pgup", "pgup"),
		ForceQuit:  k.forceQuit,
	}
}

func (k *statefulKeymap) forViewport() viewport.KeyMap {
	return viewport.KeyMap{
		Up:       k.up,
		Down:     k.down,
		PageUp:   k.pageUp,
		PageDown: k.pageDown,
		HalfPageUp: key.NewBinding(
			key.WithKeys("u"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("d"),
		),
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
