// Package chronometer renders a live console dashboard of the resolver's
// statistics, refreshed on a fixed tick.
package chronometer

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/sinkhole/internal/domain/resolver"
)

const (
	refreshInterval = 2 * time.Second
	topDomainCount  = 10
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// tickMsg triggers a stats refresh.
type tickMsg time.Time

// statsMsg carries the result of one refresh.
type statsMsg struct {
	summary resolver.Summary
	top     []resolver.TopDomain
	err     error
}

// Model is the chronometer bubbletea model.
type Model struct {
	stats resolver.StatsReader

	summary resolver.Summary
	table   table.Model
	err     error
}

// New creates a chronometer over the given stats source.
func New(stats resolver.StatsReader) Model {
	columns := []table.Column{
		{Title: "Domain", Width: 40},
		{Title: "Queries", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(topDomainCount),
	)
	return Model{stats: stats, table: t}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh reads the stats source once.
func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshInterval)
		defer cancel()

		summary, err := m.stats.Summary(ctx)
		if err != nil {
			return statsMsg{err: err}
		}
		top, err := m.stats.TopDomains(ctx, topDomainCount)
		if err != nil {
			return statsMsg{err: err}
		}
		return statsMsg{summary: summary, top: top}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tickMsg:
		return m, tea.Batch(m.refresh(), tick())

	case statsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.summary = msg.summary

		rows := make([]table.Row, 0, len(msg.top))
		for _, d := range msg.top {
			rows = append(rows, table.Row{d.Domain, strconv.FormatInt(d.Count, 10)})
		}
		m.table.SetRows(rows)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	header := titleStyle.Render("sinkhole chronometer")

	if m.err != nil {
		return header + "\n\n" + errStyle.Render("resolver unavailable: "+m.err.Error()) + "\n\nPress q to quit.\n"
	}

	summary := lipgloss.JoinVertical(lipgloss.Left,
		statLine("Queries today", strconv.FormatInt(m.summary.QueriesToday, 10)),
		statLine("Blocked today", strconv.FormatInt(m.summary.BlockedToday, 10)),
		statLine("Percent blocked", strconv.FormatFloat(m.summary.PercentBlocked, 'f', 1, 64)+"%"),
		statLine("Domains on lists", strconv.FormatInt(m.summary.DomainsOnLists, 10)),
		statLine("Unique clients", strconv.FormatInt(m.summary.UniqueClients, 10)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		summary,
		"",
		m.table.View(),
		"",
		labelStyle.Render("Press q to quit."),
	) + "\n"
}

func statLine(label, value string) string {
	return labelStyle.Render(label+": ") + valueStyle.Render(value)
}
