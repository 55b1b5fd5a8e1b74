package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encscan/internal/processor"
)

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(plainRenderer(), []SummaryRow{
		{Label: "Encoding", Value: "windows-1252"},
		{Label: "Lines scanned", Value: "12"},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Repeat("-", 13+12+3), lines[0])
	assert.Equal(t, "Encoding      | windows-1252", lines[1])
	assert.Equal(t, "Lines scanned | 12          ", lines[2])
	assert.Equal(t, lines[0], lines[3])
}

func TestModelCountsUpdates(t *testing.T) {
	updates := make(chan processor.ProgressUpdate, 4)
	m := NewModel("features.html", updates)

	next, cmd := m.Update(updateMsg{TotalDelta: 3})
	require.NotNil(t, cmd)
	next, _ = next.Update(updateMsg{LinesDelta: 1})
	next, _ = next.Update(updateMsg{LinesDelta: 1, IssueDelta: 1})

	model := next.(Model)
	assert.Equal(t, 3, model.total)
	assert.Equal(t, 2, model.lines)
	assert.Equal(t, 1, model.issues)

	view := model.View()
	assert.Contains(t, view, "Lines: 2/3")
	assert.Contains(t, view, "Non-ASCII lines: 1")
	assert.Contains(t, view, "features.html")
}

func TestModelQuitsWhenUpdatesClose(t *testing.T) {
	updates := make(chan processor.ProgressUpdate, 1)
	updates <- processor.ProgressUpdate{TotalDelta: 5}
	close(updates)

	m := NewModel("features.html", updates)
	cmd := m.Init()
	assert.Equal(t, updateMsg{TotalDelta: 5}, cmd())

	msg := listenForUpdates(updates)()
	assert.Equal(t, doneMsg{}, msg)

	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "[     ]", renderBar(5, 0))
	assert.Equal(t, "[==   ]", renderBar(5, 0.4))
	assert.Equal(t, "[=====]", renderBar(5, 1.5))
}
