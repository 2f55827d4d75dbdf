package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/apimgr/ghuser/src/common/terminal"
)

const defaultPageSize = 10

type selectModel struct {
	label   string
	options []string
	cursor  int
	pager   paginator.Model
	done    bool
	aborted bool
	symbols terminal.Symbols
}

func newSelectModel(label string, options []string, pageSize int) selectModel {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = pageSize
	p.SetTotalPages(len(options))

	return selectModel{
		label:   label,
		options: options,
		pager:   p,
		symbols: terminal.GetSymbols(),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	last := len(m.options) - 1
	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < last {
			m.cursor++
		}
	case "left", "h", "pgup":
		m.cursor = max(0, m.cursor-m.pager.PerPage)
	case "right", "l", "pgdown":
		m.cursor = min(last, m.cursor+m.pager.PerPage)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = last
	}
	m.pager.Page = m.cursor / m.pager.PerPage
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		if m.aborted {
			return ""
		}
		return fmt.Sprintf("%s %s %s\n", promptStyle.Render("?"), m.label, answerStyle.Render(m.options[m.cursor]))
	}

	var sb strings.Builder
	sb.WriteString(promptStyle.Render("?") + " " + m.label + "\n")

	start, end := m.pager.GetSliceBounds(len(m.options))
	for i := start; i < end; i++ {
		if i == m.cursor {
			sb.WriteString(cursorStyle.Render(m.symbols.Pointer+" "+m.options[i]) + "\n")
		} else {
			sb.WriteString("  " + m.options[i] + "\n")
		}
	}

	if m.pager.TotalPages > 1 {
		sb.WriteString(helpStyle.Render("  page "+m.pager.View()) + "\n")
	}
	sb.WriteString(helpStyle.Render("↑/↓: move • ←/→: page • enter: select • esc: abort"))
	return sb.String()
}
