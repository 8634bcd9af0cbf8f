package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/viewkit/internal/ports"
)

// Options configures the charmbracelet/log adapter.
type Options struct {
	Writer     io.Writer
	Level      string
	TimeFormat string
	Formatter  cblog.Formatter
	Layer      string
	Component  string
	Fields     map[string]interface{}
}

// Logger implements ports.Logger using charmbracelet/log.
type Logger struct {
	logger *cblog.Logger
	fields []interface{}
	layer  string
}

// New creates a Logger adapter with the supplied options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: true,
		Formatter:       opts.Formatter,
		Fields:          sortedPairs(opts.Fields),
	})

	var fields []interface{}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}
	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	return &Logger{logger: base, fields: fields, layer: layer}, nil
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, fields...)
}

// With derives a logger with persistent fields.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	next := append(append([]interface{}{}, l.fields...), fields...)
	return &Logger{logger: l.logger, fields: next, layer: l.layer}
}

func (l *Logger) log(ctx context.Context, level cblog.Level, msg string, fields ...interface{}) {
	if l == nil || l.logger == nil {
		return
	}

	payload := newFieldSet()
	payload.addPairs(l.fields)
	payload.addPairs(fields)
	payload.add("layer", l.layer)
	if id := ports.GetCorrelationID(ctx); id != "" {
		payload.add("correlation_id", id)
	}

	switch level {
	case cblog.DebugLevel:
		l.logger.Debug(msg, payload.pairs()...)
	case cblog.WarnLevel:
		l.logger.Warn(msg, payload.pairs()...)
	case cblog.ErrorLevel:
		l.logger.Error(msg, payload.pairs()...)
	default:
		l.logger.Info(msg, payload.pairs()...)
	}
}

// fieldSet keeps the last value for each key in first-seen order.
type fieldSet struct {
	order  []string
	values map[string]interface{}
}

func newFieldSet() *fieldSet {
	return &fieldSet{values: make(map[string]interface{})}
}

func (f *fieldSet) add(key string, value interface{}) {
	if key == "" {
		return
	}
	if _, exists := f.values[key]; !exists {
		f.order = append(f.order, key)
	}
	f.values[key] = value
}

func (f *fieldSet) addPairs(kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			f.add(key, kv[i+1])
		}
	}
}

func (f *fieldSet) pairs() []interface{} {
	out := make([]interface{}, 0, len(f.order)*2)
	for _, key := range f.order {
		out = append(out, key, f.values[key])
	}
	return out
}

func sortedPairs(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		out = append(out, k, input[k])
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
