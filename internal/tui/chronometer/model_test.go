package chronometer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sinkhole/internal/domain/resolver"
)

func TestModel_RefreshPopulatesView(t *testing.T) {
	stats := &resolver.StaticStats{
		Stats: resolver.Summary{QueriesToday: 1234, BlockedToday: 321, PercentBlocked: 26.0},
		Top: []resolver.TopDomain{
			{Domain: "ads.example.com", Count: 99},
		},
	}
	m := New(stats)

	cmd := m.refresh()
	require.NotNil(t, cmd)
	msg := cmd()

	updated, _ := m.Update(msg)
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "1234")
	assert.Contains(t, view, "ads.example.com")
}

func TestModel_QuitKey(t *testing.T) {
	m := New(&resolver.StaticStats{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_RefreshErrorShownInView(t *testing.T) {
	m := New(&resolver.StaticStats{})

	updated, _ := m.Update(statsMsg{err: assert.AnError})
	m = updated.(Model)

	assert.Contains(t, m.View(), "resolver unavailable")
}
