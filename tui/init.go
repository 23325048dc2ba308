package tui

import (
	"github.com/bencyn-cli/bencyn/router"
	tea "github.com/charmbracelet/bubbletea"
)

// Init mounts the first page and loads the footer shared by every page.
func (b *statefulBubble) Init() tea.Cmd {
	path := "/"
	if b.options != nil && b.options.Path != "" {
		path = b.options.Path
	}

	return tea.Batch(b.mount(router.Resolve(path)), b.fetchFooter())
}
