// Package modal scopes the "modal open" state of a screen.
//
// While a modal is held the screen underneath must not scroll. Acquire
// remembers whatever scroll setting was in effect and the returned Release
// puts it back, once, no matter how the modal was dismissed.
package modal

import "sync"

// Scroller is the background surface a modal covers.
type Scroller interface {
	ScrollEnabled() bool
	SetScrollEnabled(enabled bool)
}

// Release ends a modal scope. Calls after the first are no-ops.
type Release func()

type Lock struct {
	mu     sync.Mutex
	target Scroller
	held   bool
}

func New(target Scroller) *Lock {
	return &Lock{target: target}
}

// Acquire disables scrolling on the target. Acquiring a lock that is
// already held returns a no-op release, the outer scope stays in charge.
func (l *Lock) Acquire() Release {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held {
		return func() {}
	}

	previous := l.target.ScrollEnabled()
	l.target.SetScrollEnabled(false)
	l.held = true

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()

			l.target.SetScrollEnabled(previous)
			l.held = false
		})
	}
}

// Held reports whether a modal is currently open.
func (l *Lock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}
