package logging

import (
	"context"

	"github.com/alexisbeaulieu97/viewkit/internal/ports"
)

// NoOpLogger discards all log entries.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(context.Context, string, ...interface{}) {}

func (n *NoOpLogger) Info(context.Context, string, ...interface{}) {}

func (n *NoOpLogger) Warn(context.Context, string, ...interface{}) {}

func (n *NoOpLogger) Error(context.Context, string, ...interface{}) {}

func (n *NoOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOpLogger returns a ports.Logger that discards everything.
func NewNoOpLogger() ports.Logger {
	return &NoOpLogger{}
}
