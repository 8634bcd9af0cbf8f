package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/viewkit/internal/config"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("viewkit"), " ",
		m.theme.Badge(m.current), " ",
		mutedStyle.Render(fmt.Sprintf("%dpx (%d cols)", m.vp.Width(), m.columns)),
	)
	sections = append(sections, header)

	if m.cfg.Feature(config.FeatureDev) {
		sections = append(sections, devStyle.Render(m.renderRanges()))
	}

	if !m.cfg.FeatureDisabled(config.FeatureShowAccount) {
		sections = append(sections, sectionStyle.Render("Account"), m.account.View())
	}

	if !m.cfg.FeatureDisabled(config.FeatureShowHistory) {
		sections = append(sections, sectionStyle.Render("History"), m.renderHistory())
	}

	if m.err != nil {
		sections = append(sections, failureStyle.Render("✗ "+m.err.Error()))
	}

	sections = append(sections, helpStyle.Render(m.help.View(helpKeys{shell: m.keys, account: m.account})))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHistory() string {
	names := make([]string, 0, len(m.history))
	for _, bp := range m.history {
		names = append(names, bp.String())
	}
	return strings.Join(names, " → ")
}

func (m Model) renderRanges() string {
	lines := make([]string, 0, len(breakpoint.All()))
	for _, bp := range breakpoint.All() {
		marker := " "
		if bp == m.current {
			marker = "›"
		}
		lines = append(lines, fmt.Sprintf("%s %-2s %s", marker, bp, m.cfg.Thresholds.Range(bp).MediaQuery()))
	}
	return strings.Join(lines, "\n")
}
