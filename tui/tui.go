// Package tui is the interactive terminal rendition of the site.
package tui

import (
	"fmt"
	"runtime/debug"

	"github.com/bencyn-cli/bencyn/log"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/thumbnail"
	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Path is the route shown first, "/" when empty.
	Path string
}

// Run starts the program and blocks until it exits. A panic anywhere in
// the program is turned into an error instead of tearing down the terminal.
func Run(options *Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("tui: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	bubble := newBubble(options, page.FromConfig(), thumbnail.CacheFromConfig())
	defer bubble.close()

	_, err = tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
