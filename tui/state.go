package tui

import "github.com/bencyn-cli/bencyn/router"

type state int

const (
	pageState state = iota
	blogState
	galleryState
	lightboxState
	formState
	menuState
	gotoState
	errorState
)

// overlays are drawn over the current page and never become part of the
// page history.
var overlays = []state{lightboxState, menuState, gotoState, errorState}

// stateFor is the state that presents p.
func stateFor(p router.Page) state {
	switch p {
	case router.Blog:
		return blogState
	case router.Gallery:
		return galleryState
	case router.Contact:
		return formState
	default:
		return pageState
	}
}
