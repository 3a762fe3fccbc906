package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dataLoadedMsg:
		m.loadErr = msg.err
		if msg.err == nil {
			m.today = msg.today
			m.week = msg.week
			m.month = msg.month
			m.grid = msg.grid
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		m.state = (m.state + 1) % 4
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.state = (m.state + 3) % 4
		return m, nil

	case key.Matches(msg, m.keys.Older):
		if m.state == StateWeek {
			m.weekOffset++
			return m, m.loadCmd()
		}
		if m.state == StateMonth {
			m.monthOffset++
			return m, m.loadCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Newer):
		if m.state == StateWeek && m.weekOffset > 0 {
			m.weekOffset--
			return m, m.loadCmd()
		}
		if m.state == StateMonth && m.monthOffset > 0 {
			m.monthOffset--
			return m, m.loadCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadCmd()
	}

	return m, nil
}
