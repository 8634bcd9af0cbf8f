package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/viewkit/internal/components"
	"github.com/alexisbeaulieu97/viewkit/internal/ports"
	"github.com/alexisbeaulieu97/viewkit/internal/viewport"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.columns = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		width := viewport.ColumnsToWidth(msg.Width, m.cfg.CellWidth)
		m.vp.Resize(width)
		m.publish(ports.EventViewportResized, map[string]interface{}{
			"columns": msg.Width,
			"width":   width,
		})
		m.relayout()
		return m, nil

	case breakpointSignalMsg:
		var cmd tea.Cmd
		if next := m.observer.Current(); next != m.current {
			m, cmd = m.applyBreakpoint(next)
		}
		return m, tea.Batch(cmd, m.waitForBreakpoint())

	case ConfigReloadedMsg:
		return m.applyConfig(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.QuitMsg:
		m.Close()
		m.quitting = true
		return m, nil
	}

	return m, m.account.Update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.account.Editing() {
		return m, m.account.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, m.account.Update(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	m.quitting = true
	return m, tea.Quit
}

func (m Model) applyBreakpoint(next breakpoint.Breakpoint) (Model, tea.Cmd) {
	prev := m.current
	m.current = next
	if len(m.history) == 0 || m.history[len(m.history)-1] != next {
		m.history = append(m.history, next)
	}
	m.logger.Info(m.ctx, "breakpoint changed", "from", prev.String(), "to", next.String(), "width", m.vp.Width())
	m.publish(ports.EventBreakpointChanged, map[string]interface{}{
		"from":  prev.String(),
		"to":    next.String(),
		"width": m.vp.Width(),
	})
	m.relayout()

	changed := BreakpointChangedMsg{From: prev, To: next}
	return m, func() tea.Msg { return changed }
}

func (m Model) applyConfig(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.logger.Warn(m.ctx, "config reload rejected", "error", msg.Err)
		return m, nil
	}
	if msg.Config == nil {
		return m, nil
	}

	prevCfg, prevObserver := m.cfg, m.observer
	m.cfg = msg.Config
	if err := m.subscribe(); err != nil {
		m.cfg, m.observer = prevCfg, prevObserver
		m.err = err
		m.logger.Warn(m.ctx, "config reload rejected", "error", err)
		return m, nil
	}
	prevObserver.Close()
	m.err = nil

	m.theme = components.DefaultTheme().WithBadges(m.cfg.Theme.Badges)
	customer := m.account.Customer()
	m.account = m.newAccount()
	if customerFrom(m.cfg) == customerFrom(prevCfg) {
		m.account.SetCustomer(customer)
	}
	m.vp.Resize(viewport.ColumnsToWidth(m.columns, m.cfg.CellWidth))

	m.publish(ports.EventConfigReloaded, map[string]interface{}{
		"cell_width": m.cfg.CellWidth,
	})
	m.logger.Info(m.ctx, "config reloaded", "thresholds", m.cfg.Thresholds)

	var cmd tea.Cmd
	if next := m.observer.Current(); next != m.current {
		m, cmd = m.applyBreakpoint(next)
	} else {
		m.relayout()
	}
	return m, cmd
}
