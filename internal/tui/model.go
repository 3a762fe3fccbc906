// Package tui is the interactive dashboard: today's log, week and month
// reports with period navigation, and the activity heatmap.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wakelog/internal/analytics"
	"github.com/julianstephens/wakelog/internal/constants"
	"github.com/julianstephens/wakelog/internal/heatmap"
	"github.com/julianstephens/wakelog/internal/models"
	"github.com/julianstephens/wakelog/internal/storage"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateWeek
	StateMonth
	StateHeatmap
)

// periodPair holds one period's report next to the period before it.
type periodPair struct {
	current    models.PeriodReport
	previous   models.PeriodReport
	comparison models.Comparison
}

type Model struct {
	store    storage.Provider
	reporter *analytics.Reporter
	now      time.Time

	state SessionState
	keys  KeyMap
	help  help.Model

	quitting bool
	width    int
	height   int
	loadErr  error

	today       *models.Day
	weekOffset  int
	monthOffset int
	week        periodPair
	month       periodPair
	grid        string
}

type dataLoadedMsg struct {
	today *models.Day
	week  periodPair
	month periodPair
	grid  string
	err   error
}

func NewModel(store storage.Provider, now time.Time) Model {
	return Model{
		store:    store,
		reporter: analytics.NewReporter(store),
		now:      now,
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd reloads everything in one shot. The data set is small enough that
// a single pass beats tracking per-view staleness.
func (m Model) loadCmd() tea.Cmd {
	store := m.store
	reporter := m.reporter
	now := m.now
	weekOffset := m.weekOffset
	monthOffset := m.monthOffset

	return func() tea.Msg {
		msg := dataLoadedMsg{}

		if day, err := store.GetDay(now.Format(constants.DateFormat)); err == nil {
			msg.today = &day
		}

		week, err := loadPair(reporter, analytics.PeriodWeek, weekOffset, now)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.week = week

		month, err := loadPair(reporter, analytics.PeriodMonth, monthOffset, now)
		if err != nil {
			msg.err = err
			return msg
		}
		msg.month = month

		feed, err := reporter.HeatmapFeed(now)
		if err != nil {
			msg.err = err
			return msg
		}
		months := heatmap.BuildGrid(now, heatmap.EntryIndex(feed))
		msg.grid = heatmap.RenderGrid(months)

		return msg
	}
}

func loadPair(reporter *analytics.Reporter, kind analytics.PeriodKind, offset int, now time.Time) (periodPair, error) {
	current, err := reporter.PeriodReportAt(kind, offset, now)
	if err != nil {
		return periodPair{}, err
	}
	previous, err := reporter.PeriodReportAt(kind, offset+1, now)
	if err != nil {
		return periodPair{}, err
	}
	return periodPair{
		current:    current,
		previous:   previous,
		comparison: analytics.Compare(current.PeriodStats, previous.PeriodStats),
	}, nil
}

// Run starts the dashboard and blocks until the user quits.
func Run(store storage.Provider, now time.Time) error {
	p := tea.NewProgram(NewModel(store, now), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
