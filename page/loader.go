package page

import (
	"context"
	"sync"
)

// Status of a page load.
type Status int

const (
	Idle Status = iota
	Loading
	Ready
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "idle"
	}
}

// Ticket identifies one load. Only the most recently issued ticket may settle.
type Ticket uint64

// Loader holds the view of one page instance across reloads.
//
// Every Begin supersedes earlier loads, so a slow response for an old
// filter can never overwrite the result of a newer one.
type Loader[V any] struct {
	mu       sync.Mutex
	issued   Ticket
	status   Status
	view     V
	withData bool
	settled  bool
}

// Begin starts a load and returns its ticket.
func (l *Loader[V]) Begin() Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.issued++
	l.status = Loading
	return l.issued
}

// Settle applies view if t is still the latest ticket and reports whether it did.
func (l *Loader[V]) Settle(t Ticket, view V, withData bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t != l.issued {
		return false
	}

	l.view = view
	l.withData = withData
	l.status = Ready
	l.settled = true
	return true
}

// Abandon ends the load for t without a result. The last settled view, if
// any, stays in place. It reports false when t was already superseded.
func (l *Loader[V]) Abandon(t Ticket) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t != l.issued || l.status != Loading {
		return false
	}

	l.status = Idle
	if l.settled {
		l.status = Ready
	}
	return true
}

// Load runs assemble under a fresh ticket and settles its result.
func (l *Loader[V]) Load(ctx context.Context, assemble func(context.Context) (V, bool)) bool {
	t := l.Begin()
	view, withData := assemble(ctx)
	return l.Settle(t, view, withData)
}

func (l *Loader[V]) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status == Loading
}

func (l *Loader[V]) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// View returns the last settled view and whether it came from live data.
func (l *Loader[V]) View() (view V, withData bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.view, l.withData
}

// Settled reports whether any load has settled yet.
func (l *Loader[V]) Settled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settled
}

// Current is the ticket that will be accepted by Settle.
func (l *Loader[V]) Current() Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.issued
}
