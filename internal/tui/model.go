// Package tui is the responsive terminal shell: it feeds terminal resizes
// into a viewport, follows the active breakpoint and lays the account view
// out accordingly.
package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/viewkit/internal/components"
	"github.com/alexisbeaulieu97/viewkit/internal/config"
	"github.com/alexisbeaulieu97/viewkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/viewkit/internal/ports"
	"github.com/alexisbeaulieu97/viewkit/internal/viewport"
)

// Options configures a Model.
type Options struct {
	// Config is the active configuration; nil uses config.Default().
	Config *config.Config
	// Columns is the terminal width in cells before the first resize message.
	Columns int
	// Publisher receives breakpoint, resize and account events. Optional.
	Publisher ports.EventPublisher
	// Logger receives model activity. Optional.
	Logger ports.Logger
	// Context is attached to published events and log entries.
	Context context.Context
}

// Model contains the Bubbletea state for the responsive shell.
type Model struct {
	ctx       context.Context
	cfg       *config.Config
	logger    ports.Logger
	publisher ports.EventPublisher

	vp       *viewport.Viewport
	observer *breakpoint.Observer
	signal   chan struct{}
	done     chan struct{}
	stop     func()

	current breakpoint.Breakpoint
	history []breakpoint.Breakpoint

	theme   components.Theme
	account *components.Account
	keys    keyMap
	help    help.Model

	columns  int
	height   int
	err      error
	quitting bool
}

// NewModel builds the shell and starts observing the viewport.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	logger = logger.With("component", "tui")

	done := make(chan struct{})
	m := Model{
		ctx:       ctx,
		cfg:       cfg,
		logger:    logger,
		publisher: opts.Publisher,
		signal:    make(chan struct{}, 1),
		done:      done,
		stop:      sync.OnceFunc(func() { close(done) }),
		theme:     components.DefaultTheme().WithBadges(cfg.Theme.Badges),
		keys:      defaultKeyMap(),
		help:      help.New(),
		columns:   opts.Columns,
	}

	m.vp = viewport.New(viewport.ColumnsToWidth(opts.Columns, cfg.CellWidth), viewport.WithLogger(logger))
	if err := m.subscribe(); err != nil {
		return Model{}, err
	}
	m.current = m.observer.Current()
	m.history = []breakpoint.Breakpoint{m.current}

	m.account = m.newAccount()
	m.relayout()
	return m, nil
}

// Init waits for the first breakpoint change.
func (m Model) Init() tea.Cmd {
	return m.waitForBreakpoint()
}

// Current returns the breakpoint the view is laid out for.
func (m Model) Current() breakpoint.Breakpoint {
	return m.current
}

// History returns the breakpoints seen so far, oldest first, without
// consecutive duplicates.
func (m Model) History() []breakpoint.Breakpoint {
	return append([]breakpoint.Breakpoint(nil), m.history...)
}

// Viewport returns the viewport the model observes.
func (m Model) Viewport() *viewport.Viewport {
	return m.vp
}

// Close stops observing the viewport. It is safe to call more than once.
func (m Model) Close() {
	if m.observer != nil {
		m.observer.Close()
	}
	m.stop()
}

func (m *Model) subscribe() error {
	queries, err := breakpoint.NewQueries(m.vp, m.cfg.Thresholds)
	if err != nil {
		return fmt.Errorf("bind breakpoint queries: %w", err)
	}
	signal := m.signal
	obs, err := breakpoint.Observe(queries, func(from, to breakpoint.Breakpoint) {
		select {
		case signal <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("observe breakpoints: %w", err)
	}
	m.observer = obs
	return nil
}

// waitForBreakpoint blocks until the observer signals or the model stops.
func (m Model) waitForBreakpoint() tea.Cmd {
	signal, done := m.signal, m.done
	return func() tea.Msg {
		select {
		case <-signal:
			return breakpointSignalMsg{}
		case <-done:
			return nil
		}
	}
}

func (m *Model) newAccount() *components.Account {
	ctx, publisher, logger := m.ctx, m.publisher, m.logger
	var account *components.Account
	account = components.NewAccount(customerFrom(m.cfg), components.AccountCallbacks{
		OnUpdateEmailSubmit: func(v components.EmailValues) {
			publishEvent(ctx, publisher, logger, ports.EventAccountEmailSubmitted, map[string]interface{}{"email": v.Email})
		},
		OnUpdateInfoSubmit: func(v components.InfoValues) {
			publishEvent(ctx, publisher, logger, ports.EventAccountInfoSubmitted, map[string]interface{}{
				"locale":   v.Locale,
				"country":  v.Country,
				"currency": v.Currency,
			})
		},
		OnDeleteAccountClick: func() {
			publishEvent(ctx, publisher, logger, ports.EventAccountDeleteRequested, map[string]interface{}{"id": account.Customer().ID})
		},
	}, m.theme)
	return account
}

func (m Model) publish(eventType string, data map[string]interface{}) {
	publishEvent(m.ctx, m.publisher, m.logger, eventType, data)
}

func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger ports.Logger, eventType string, data map[string]interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, ports.Event{Type: eventType, Data: data}); err != nil {
		logger.Warn(ctx, "publish event failed", "event", eventType, "error", err)
	}
}

func (m *Model) relayout() {
	m.account.SetBreakpoint(m.current)
	if m.columns > 0 {
		m.account.SetWidth(m.columns)
	}
	ip, _ := m.cfg.OverrideIP()
	m.account.SetOverrideIP(ip)
}

func customerFrom(cfg *config.Config) components.Customer {
	a := cfg.Account
	return components.Customer{
		ID:         a.ID,
		Email:      a.Email,
		Locale:     a.Locale,
		Country:    a.Country,
		Currency:   a.Currency,
		LastUserIP: a.LastUserIP,
	}
}
