package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(n int) []string {
	opts := make([]string, n)
	for i := range opts {
		opts[i] = fmt.Sprintf("user%02d", i)
	}
	return opts
}

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func TestSelectModelPaging(t *testing.T) {
	m := newSelectModel("Search Result", options(25), 10)

	assert.Equal(t, 10, m.pager.PerPage)
	assert.Equal(t, 3, m.pager.TotalPages)

	view := m.View()
	assert.Contains(t, view, "user00")
	assert.Contains(t, view, "user09")
	assert.NotContains(t, view, "user10")

	m = press(t, m, keyRight).(selectModel)
	assert.Equal(t, 10, m.cursor)
	assert.Equal(t, 1, m.pager.Page)
	view = m.View()
	assert.Contains(t, view, "user10")
	assert.NotContains(t, view, "user09")

	m = press(t, m, keyRight, keyRight).(selectModel)
	assert.Equal(t, 24, m.cursor)
	assert.Equal(t, 2, m.pager.Page)

	m = press(t, m, keyLeft).(selectModel)
	assert.Equal(t, 14, m.cursor)
	assert.Equal(t, 1, m.pager.Page)
}

func TestSelectModelCursorBounds(t *testing.T) {
	m := newSelectModel("GitHub", []string{"a", "b"}, 10)

	m = press(t, m, keyUp).(selectModel)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, keyDown, keyDown, keyDown).(selectModel)
	assert.Equal(t, 1, m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}).(selectModel)
	assert.Equal(t, 0, m.cursor)
}

func TestSelectModelEnter(t *testing.T) {
	m := newSelectModel("GitHub", []string{"Search users...", "User profile"}, 10)

	next, cmd := press(t, m, keyDown).Update(keyEnter)
	sm := next.(selectModel)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, sm.done)
	assert.False(t, sm.aborted)
	assert.Equal(t, 1, sm.cursor)
	assert.Contains(t, sm.View(), "User profile")
}

func TestSelectModelAbort(t *testing.T) {
	for _, key := range []tea.KeyMsg{keyEsc, keyCtrlC} {
		t.Run(key.String(), func(t *testing.T) {
			m := newSelectModel("GitHub", []string{"a"}, 10)
			next, cmd := m.Update(key)

			require.NotNil(t, cmd)
			assert.True(t, next.(selectModel).aborted)
			assert.Empty(t, next.View())
		})
	}
}

func TestSelectModelSinglePageHidesPager(t *testing.T) {
	m := newSelectModel("GitHub", []string{"a", "b"}, 0)

	assert.Equal(t, defaultPageSize, m.pager.PerPage)
	assert.False(t, strings.Contains(m.View(), "page "))
}

func TestTeaPrompterNoOptions(t *testing.T) {
	p := NewTeaPrompter(nil, nil)

	_, err := p.Select(context.Background(), "Search Result", nil, 10)
	assert.ErrorIs(t, err, ErrNoOptions)
}
