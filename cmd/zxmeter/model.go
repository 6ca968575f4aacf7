package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelsanzio/zxcheck"
)

// model is the bubbletea state for the live strength meter. Password
// input is handled directly from tea.KeyMsg runes rather than via a
// textinput component, since the masked echo and the live score bar
// share the same rune buffer.
type model struct {
	runes  []rune
	result passcheck.Result
	hasRun bool
	reveal bool
	width  int
	height int
	cfg    passcheck.Config
}

func newModel() model {
	return model{cfg: passcheck.DefaultConfig()}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.reveal = !m.reveal
			return m, nil
		case tea.KeyBackspace:
			if len(m.runes) > 0 {
				m.runes = m.runes[:len(m.runes)-1]
			}
		case tea.KeyRunes:
			m.runes = append(m.runes, msg.Runes...)
		case tea.KeySpace:
			m.runes = append(m.runes, ' ')
		default:
			return m, nil
		}
		result, err := passcheck.CheckWithConfig(string(m.runes), m.cfg)
		if err == nil {
			m.result = result
			m.hasRun = true
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("zxmeter — live password strength"))
	b.WriteString("\n\n")

	var box strings.Builder
	box.WriteString("Password: ")
	if m.reveal {
		box.WriteString(string(m.runes))
	} else {
		box.WriteString(strings.Repeat("•", len(m.runes)))
	}
	box.WriteString("\n\n")

	if m.hasRun {
		box.WriteString(fmt.Sprintf("%s  %3d/100  %s\n", renderBar(m.result.Score, m.result.Verdict), m.result.Score, m.result.Verdict))
		box.WriteString(fmt.Sprintf("entropy: %.1f bits\n", m.result.Entropy))
		if len(m.result.Issues) > 0 {
			box.WriteString("\n")
			for i, iss := range m.result.Issues {
				if i >= 3 {
					break
				}
				box.WriteString(issueStyle.Render("• "+iss.Message) + "\n")
			}
		}
	} else {
		box.WriteString(renderBar(0, "") + "   0/100\n")
	}

	b.WriteString(boxStyle.Render(box.String()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("[Ctrl+R] show/hide  •  [Backspace] delete  •  [Esc] quit"))

	return b.String()
}
