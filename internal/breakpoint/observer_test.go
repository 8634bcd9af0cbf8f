package breakpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

// fakeViewport is a synchronous host double: resizing fires listeners of
// every query whose match result flipped.
type fakeViewport struct {
	width   int
	queries []*fakeQuery
}

type fakeQuery struct {
	vp        *fakeViewport
	r         Range
	last      bool
	listeners []Listener
}

func (v *fakeViewport) MatchMedia(r Range) MediaQuery {
	q := &fakeQuery{vp: v, r: r, last: r.Contains(v.width)}
	v.queries = append(v.queries, q)
	return q
}

func (v *fakeViewport) resize(width int) {
	v.width = width
	for _, q := range v.queries {
		now := q.r.Contains(width)
		if now == q.last {
			continue
		}
		q.last = now
		for _, l := range append([]Listener(nil), q.listeners...) {
			l.MediaQueryChanged()
		}
	}
}

func (v *fakeViewport) listenerCount() int {
	n := 0
	for _, q := range v.queries {
		n += len(q.listeners)
	}
	return n
}

func (q *fakeQuery) Matches() bool { return q.r.Contains(q.vp.width) }

func (q *fakeQuery) OnChange(l Listener) { q.listeners = append(q.listeners, l) }

func (q *fakeQuery) OffChange(l Listener) {
	for i, existing := range q.listeners {
		if existing == l {
			q.listeners = append(q.listeners[:i], q.listeners[i+1:]...)
			return
		}
	}
}

func newObserved(t *testing.T, width int) (*fakeViewport, *Observer, *[]Breakpoint) {
	t.Helper()

	vp := &fakeViewport{width: width}
	queries, err := NewQueries(vp, DefaultThresholds())
	require.NoError(t, err)

	seen := []Breakpoint{}
	obs, err := Observe(queries, func(_, to Breakpoint) {
		seen = append(seen, to)
	})
	require.NoError(t, err)
	return vp, obs, &seen
}

func TestObserveInitialState(t *testing.T) {
	t.Parallel()

	cases := map[int]Breakpoint{100: XS, 700: SM, 1000: MD, 1500: LG, 2400: XL}
	for width, want := range cases {
		_, obs, seen := newObserved(t, width)
		assert.Equal(t, want, obs.Current(), "width %d", width)
		assert.Empty(t, *seen, "construction must not emit")
	}
}

func TestObserverEmitsOnlyOnBreakpointChange(t *testing.T) {
	t.Parallel()

	vp, obs, seen := newObserved(t, 500)
	require.Equal(t, XS, obs.Current())

	vp.resize(550)
	assert.Empty(t, *seen)

	vp.resize(1000)
	vp.resize(2000)
	assert.Equal(t, []Breakpoint{MD, XL}, *seen)
	assert.Equal(t, XL, obs.Current())

	vp.resize(2100)
	assert.Len(t, *seen, 2)
}

func TestObserverReEvaluatesWholeChain(t *testing.T) {
	t.Parallel()

	// xs -> lg flips both xs and lg queries; the second notification must
	// not produce a duplicate emission.
	vp, obs, seen := newObserved(t, 100)
	vp.resize(1500)
	assert.Equal(t, []Breakpoint{LG}, *seen)
	assert.Equal(t, LG, obs.Current())
}

func TestObserverRegistersOneListenerPerQuery(t *testing.T) {
	t.Parallel()

	vp, obs, _ := newObserved(t, 800)
	assert.Equal(t, 4, vp.listenerCount())

	obs.Close()
	assert.Equal(t, 0, vp.listenerCount())
	assert.True(t, obs.Closed())

	obs.Close()
	assert.Equal(t, 0, vp.listenerCount())
}

func TestObserverSilentAfterClose(t *testing.T) {
	t.Parallel()

	vp, obs, seen := newObserved(t, 800)
	obs.Close()

	vp.resize(100)
	vp.resize(3000)
	assert.Empty(t, *seen)
	assert.Equal(t, SM, obs.Current())
}

func TestObserverStaleListenerIgnoredAfterClose(t *testing.T) {
	t.Parallel()

	vp, obs, seen := newObserved(t, 800)
	stale := obs.l
	obs.Close()

	vp.width = 3000
	stale.MediaQueryChanged()
	assert.Empty(t, *seen)
}

func TestResubscribeReEvaluatesFromCurrentWidth(t *testing.T) {
	t.Parallel()

	vp, first, _ := newObserved(t, 500)
	first.Close()
	vp.resize(1300)

	queries, err := NewQueries(vp, DefaultThresholds())
	require.NoError(t, err)
	second, err := Observe(queries, nil)
	require.NoError(t, err)
	t.Cleanup(second.Close)

	assert.Equal(t, XS, first.Current())
	assert.Equal(t, LG, second.Current())

	vp.resize(100)
	assert.Equal(t, XS, second.Current())
}

func TestObserveFailsFastWithoutHost(t *testing.T) {
	t.Parallel()

	_, err := NewQueries(nil, DefaultThresholds())
	var envErr *apperrors.EnvironmentError
	require.ErrorAs(t, err, &envErr)

	vp := &fakeViewport{width: 100}
	_, err = Observe(Queries{XS: vp.MatchMedia(Range{Max: 10})}, nil)
	require.ErrorAs(t, err, &envErr)
	assert.Contains(t, err.Error(), "sm")
}

func TestNewQueriesRejectsInvalidThresholds(t *testing.T) {
	t.Parallel()

	_, err := NewQueries(&fakeViewport{}, Thresholds{XS: 10, SM: 5, MD: 20, LG: 30})
	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestResolveFallsBackToXL(t *testing.T) {
	t.Parallel()

	vp := &fakeViewport{width: 5000}
	queries, err := NewQueries(vp, DefaultThresholds())
	require.NoError(t, err)
	assert.Equal(t, XL, Resolve(queries))

	vp.width = 0
	assert.Equal(t, XS, Resolve(queries))
}
