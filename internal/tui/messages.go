package tui

import (
	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/viewkit/internal/config"
)

// BreakpointChangedMsg reports a breakpoint transition applied by the model.
type BreakpointChangedMsg struct {
	From breakpoint.Breakpoint
	To   breakpoint.Breakpoint
}

// ConfigReloadedMsg carries a reloaded configuration or the error that
// prevented the reload.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// breakpointSignalMsg is delivered after the observer reported at least one
// change. Several changes between deliveries collapse into one signal.
type breakpointSignalMsg struct{}
