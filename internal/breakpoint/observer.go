package breakpoint

import (
	"sync"

	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

// Listener is notified when a MediaQuery's match result flips. Hosts compare
// listeners by identity, so implementations should be pointers.
type Listener interface {
	MediaQueryChanged()
}

// MediaQuery is a host-provided boundary test that can report changes.
type MediaQuery interface {
	Matches() bool
	OnChange(l Listener)
	OffChange(l Listener)
}

// Source builds MediaQuery objects for width ranges. It is the host's
// viewport-change capability.
type Source interface {
	MatchMedia(r Range) MediaQuery
}

// Queries are the four boundary queries evaluated in XS, SM, MD, LG order.
type Queries struct {
	XS MediaQuery
	SM MediaQuery
	MD MediaQuery
	LG MediaQuery
}

// NewQueries binds the boundary ranges of t to the host source.
func NewQueries(src Source, t Thresholds) (Queries, error) {
	if src == nil {
		return Queries{}, apperrors.NewEnvironmentError("viewport", "no viewport query source available", nil)
	}
	if err := t.Validate(); err != nil {
		return Queries{}, err
	}
	r := t.Ranges()
	return Queries{
		XS: src.MatchMedia(r[XS]),
		SM: src.MatchMedia(r[SM]),
		MD: src.MatchMedia(r[MD]),
		LG: src.MatchMedia(r[LG]),
	}, nil
}

func (q Queries) ordered() [4]MediaQuery {
	return [4]MediaQuery{q.XS, q.SM, q.MD, q.LG}
}

func (q Queries) validate() error {
	for i, mq := range q.ordered() {
		if mq == nil {
			return apperrors.NewEnvironmentError("viewport", "missing media query for "+Breakpoint(i).String(), nil)
		}
	}
	return nil
}

// Resolve returns the first matching breakpoint in XS, SM, MD, LG order, or XL.
func Resolve(q Queries) Breakpoint {
	for i, mq := range q.ordered() {
		if mq != nil && mq.Matches() {
			return Breakpoint(i)
		}
	}
	return XL
}

// ChangeFunc receives breakpoint transitions.
type ChangeFunc func(from, to Breakpoint)

// Observer tracks the active breakpoint for one subscription lifetime.
type Observer struct {
	queries  Queries
	onChange ChangeFunc

	mu      sync.Mutex
	current Breakpoint
	closed  bool
	l       *listener
}

type listener struct {
	o *Observer
}

func (l *listener) MediaQueryChanged() {
	l.o.refresh()
}

// Observe evaluates the queries, registers one change listener per query and
// returns the running Observer. onChange may be nil.
func Observe(q Queries, onChange ChangeFunc) (*Observer, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	o := &Observer{
		queries:  q,
		onChange: onChange,
		current:  Resolve(q),
	}
	o.l = &listener{o: o}
	for _, mq := range q.ordered() {
		mq.OnChange(o.l)
	}
	return o, nil
}

// Current returns the active breakpoint.
func (o *Observer) Current() Breakpoint {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Close deregisters every listener. Calling Close more than once is a no-op.
func (o *Observer) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	for _, mq := range o.queries.ordered() {
		mq.OffChange(o.l)
	}
}

// Closed reports whether Close has been called.
func (o *Observer) Closed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

// refresh reads the host under the lock, so the last refresh to run applies
// the latest width.
func (o *Observer) refresh() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	next := Resolve(o.queries)
	if next == o.current {
		o.mu.Unlock()
		return
	}
	prev := o.current
	o.current = next
	onChange := o.onChange
	o.mu.Unlock()

	if onChange != nil {
		onChange(prev, next)
	}
}
