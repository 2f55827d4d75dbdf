package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/apimgr/ghuser/src/common/terminal"
)

type textModel struct {
	label        string
	defaultValue string
	input        textinput.Model
	value        string
	done         bool
	aborted      bool
}

func newTextModel(label, defaultValue string) textModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = defaultValue
	ti.Focus()
	ti.Width = max(10, min(50, terminal.GetSize().Cols-len(label)-6))

	return textModel{
		label:        label,
		defaultValue: defaultValue,
		input:        ti,
	}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.value = strings.TrimSpace(m.input.Value())
			if m.value == "" {
				m.value = m.defaultValue
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done {
		if m.aborted {
			return ""
		}
		return fmt.Sprintf("%s %s %s\n", promptStyle.Render("?"), m.label, answerStyle.Render(m.value))
	}
	return fmt.Sprintf("%s %s %s", promptStyle.Render("?"), m.label, m.input.View())
}
