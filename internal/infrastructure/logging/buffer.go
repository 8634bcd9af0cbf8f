package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/viewkit/internal/ports"
)

const defaultBufferLimit = 1000

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

type entry struct {
	ctx    context.Context
	level  level
	msg    string
	fields []interface{}
}

// SessionBuffer holds log entries while the TUI owns the terminal. Once the
// program exits the entries are replayed onto the real logger. When full, the
// oldest entry is dropped.
type SessionBuffer struct {
	mu      sync.Mutex
	limit   int
	entries []entry
}

// NewSessionBuffer creates a buffer holding at most limit entries (default 1000).
func NewSessionBuffer(limit int) *SessionBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &SessionBuffer{limit: limit, entries: make([]entry, 0, limit)}
}

// Logger returns a ports.Logger writing into the buffer.
func (b *SessionBuffer) Logger() ports.Logger {
	return &bufferedLogger{buffer: b}
}

// Len reports the number of pending entries.
func (b *SessionBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func (b *SessionBuffer) add(e entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.limit {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = e
		return
	}
	b.entries = append(b.entries, e)
}

// Flush replays pending entries on delegate in order and empties the buffer.
func (b *SessionBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	pending := append([]entry(nil), b.entries...)
	b.entries = b.entries[:0]
	b.mu.Unlock()

	for _, e := range pending {
		switch e.level {
		case levelDebug:
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case levelWarn:
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case levelError:
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
}

type bufferedLogger struct {
	buffer *SessionBuffer
	fields []interface{}
}

func (l *bufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelDebug, msg, fields)
}

func (l *bufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelInfo, msg, fields)
}

func (l *bufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelWarn, msg, fields)
}

func (l *bufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelError, msg, fields)
}

func (l *bufferedLogger) With(fields ...interface{}) ports.Logger {
	return &bufferedLogger{buffer: l.buffer, fields: append(append([]interface{}{}, l.fields...), fields...)}
}

func (l *bufferedLogger) log(ctx context.Context, lvl level, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	l.buffer.add(entry{
		ctx:    ctx,
		level:  lvl,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	})
}
