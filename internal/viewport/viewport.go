// Package viewport is the host side of breakpoint observation: it tracks the
// viewport width and notifies media-query listeners when their match result
// flips.
package viewport

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/viewkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/viewkit/internal/ports"
)

// Dispatcher delivers a notification. The default runs it immediately.
type Dispatcher func(notify func())

// Option configures a Viewport.
type Option func(*Viewport)

// WithDispatcher overrides how change notifications are delivered.
func WithDispatcher(d Dispatcher) Option {
	return func(v *Viewport) {
		if d != nil {
			v.dispatch = d
		}
	}
}

// WithLogger attaches a logger for resize and listener activity.
func WithLogger(logger ports.Logger) Option {
	return func(v *Viewport) {
		if logger != nil {
			v.logger = logger.With("component", "viewport")
		}
	}
}

// Viewport holds the current width and the media query lists that have listeners.
type Viewport struct {
	mu       sync.RWMutex
	width    int
	lists    []*MediaQueryList
	dispatch Dispatcher
	logger   ports.Logger
}

// New creates a viewport with the given initial width. Negative widths clamp to 0.
func New(width int, opts ...Option) *Viewport {
	v := &Viewport{
		width:    clamp(width),
		dispatch: func(notify func()) { notify() },
		logger:   logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Width returns the current width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// MatchMedia returns a MediaQueryList evaluating r against this viewport.
func (v *Viewport) MatchMedia(r breakpoint.Range) breakpoint.MediaQuery {
	return v.List(r)
}

// List is MatchMedia with the concrete return type. The list takes part in
// resizes only while it has listeners.
func (v *Viewport) List(r breakpoint.Range) *MediaQueryList {
	return &MediaQueryList{viewport: v, query: r}
}

// Resize sets the width and notifies listeners of every list whose match
// result flipped. Listeners run outside the viewport lock.
func (v *Viewport) Resize(width int) {
	width = clamp(width)

	v.mu.Lock()
	prev := v.width
	v.width = width
	var pending []breakpoint.Listener
	for _, l := range v.lists {
		now := l.query.Contains(width)
		if now == l.matched {
			continue
		}
		l.matched = now
		pending = append(pending, l.listeners...)
	}
	v.mu.Unlock()

	if prev != width {
		v.logger.Debug(context.Background(), "viewport resized", "from", prev, "width", width, "notifications", len(pending))
	}
	for _, listener := range pending {
		v.dispatch(listener.MediaQueryChanged)
	}
}

// ListenerCount returns the number of registered listeners across all lists.
func (v *Viewport) ListenerCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	n := 0
	for _, l := range v.lists {
		n += len(l.listeners)
	}
	return n
}

// MediaQueryList is a range query bound to a Viewport.
type MediaQueryList struct {
	viewport  *Viewport
	query     breakpoint.Range
	matched   bool
	listeners []breakpoint.Listener
}

// Media returns the query text.
func (l *MediaQueryList) Media() string {
	return l.query.MediaQuery()
}

// Matches reports whether the current viewport width is inside the range.
func (l *MediaQueryList) Matches() bool {
	return l.query.Contains(l.viewport.Width())
}

// OnChange registers listener. Registering the same listener twice is a no-op.
func (l *MediaQueryList) OnChange(listener breakpoint.Listener) {
	if listener == nil {
		return
	}
	v := l.viewport
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, existing := range l.listeners {
		if existing == listener {
			return
		}
	}
	if len(l.listeners) == 0 {
		l.matched = l.query.Contains(v.width)
		v.lists = append(v.lists, l)
	}
	l.listeners = append(l.listeners, listener)
}

// OffChange removes listener if present. A list left without listeners is
// detached from the viewport.
func (l *MediaQueryList) OffChange(listener breakpoint.Listener) {
	v := l.viewport
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, existing := range l.listeners {
		if existing != listener {
			continue
		}
		l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
		if len(l.listeners) == 0 {
			v.detach(l)
		}
		return
	}
}

// detach removes l from the resize set. Callers hold v.mu.
func (v *Viewport) detach(l *MediaQueryList) {
	for i, existing := range v.lists {
		if existing == l {
			v.lists = append(v.lists[:i:i], v.lists[i+1:]...)
			return
		}
	}
}

func clamp(width int) int {
	if width < 0 {
		return 0
	}
	return width
}

var _ breakpoint.Source = (*Viewport)(nil)
