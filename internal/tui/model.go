// Package tui implements the full-screen clex calculator.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ltungv/clex/internal/clex"
)

const sidebarWidth = 32

// Entry is one evaluated input line
type Entry struct {
	Input  string
	Output string
	Failed bool
}

// Model is the calculator screen: a scrolling history, the variables in
// scope and an input line.
type Model struct {
	width  int
	height int
	ready  bool

	input    textinput.Model
	viewport viewport.Model

	session *clex.Session
	entries []Entry

	// recall indexes into the previously submitted lines while browsing with
	// up/down; it equals len(submitted) when not browsing.
	submitted []string
	recall    int
}

// NewModel creates a new TUI model over session
func NewModel(session *clex.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "x = 2 ^ 0.5"
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Focus()

	return Model{
		input:   ti,
		session: session,
	}
}

// Entries returns the evaluated history, oldest first.
func (m Model) Entries() []Entry {
	return m.entries
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			m.input.Reset()
			m.submitted = append(m.submitted, line)
			m.recall = len(m.submitted)

			res := m.session.Execute(line)
			if res.Quit {
				return m, tea.Quit
			}
			output := res.Output
			if res.Failed {
				output += res.Errors
			}
			m.entries = append(m.entries, Entry{line, strings.TrimRight(output, "\n"), res.Failed})
			m.updateContent()
			return m, nil

		case "up":
			if m.recall > 0 {
				m.recall--
				m.input.SetValue(m.submitted[m.recall])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.recall < len(m.submitted) {
				m.recall++
				if m.recall == len(m.submitted) {
					m.input.Reset()
				} else {
					m.input.SetValue(m.submitted[m.recall])
					m.input.CursorEnd()
				}
			}
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		width, height := m.historySize()
		if !m.ready {
			m.viewport = viewport.New(width, height)
			m.ready = true
		} else {
			m.viewport.Width = width
			m.viewport.Height = height
		}
		m.input.Width = msg.Width - 4
		m.updateContent()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) historySize() (int, int) {
	width := m.width - sidebarWidth - 4
	if width < 20 {
		width = 20
	}
	// title, input box and status bar
	height := m.height - 7
	if height < 3 {
		height = 3
	}
	return width, height
}

func (m *Model) updateContent() {
	if !m.ready {
		return
	}
	var s strings.Builder
	for _, entry := range m.entries {
		s.WriteString(InputStyle.Render("> " + entry.Input))
		s.WriteString("\n")
		if entry.Output != "" {
			if entry.Failed {
				s.WriteString(ErrorStyle.Render(entry.Output))
			} else {
				s.WriteString(ResultStyle.Render(entry.Output))
			}
			s.WriteString("\n")
		}
	}
	m.viewport.SetContent(s.String())
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(TitleStyle.Render("clex"))
	s.WriteString(" ")
	s.WriteString(SubtitleStyle.Render("arithmetic statement evaluator"))
	s.WriteString("\n")

	_, height := m.historySize()
	history := BoxStyle.Width(m.viewport.Width).Height(height).Render(m.viewport.View())
	sidebar := BoxStyle.Width(sidebarWidth - 4).Height(height).Render(m.renderVariables())
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, history, sidebar))
	s.WriteString("\n")

	s.WriteString(m.input.View())
	s.WriteString("\n")
	s.WriteString(m.renderStatus())
	return s.String()
}

func (m Model) renderVariables() string {
	interpreter := m.session.Interpreter()
	symbols := interpreter.Symbols()

	var s strings.Builder
	s.WriteString(TitleStyle.Render("Variables"))
	for _, name := range symbols.Names() {
		value, _ := symbols.Get(name)
		s.WriteString("\n")
		s.WriteString(VariableStyle.Render(name))
		s.WriteString(" = ")
		s.WriteString(interpreter.Format(value))
	}
	return s.String()
}

func (m Model) renderStatus() string {
	failed := 0
	for _, entry := range m.entries {
		if entry.Failed {
			failed++
		}
	}
	status := StatusBarStyle.Render(fmt.Sprintf("%d evaluated, %d failed", len(m.entries), failed))
	help := HelpStyle.Render("enter: eval  up/down: recall  ctrl+l: clear  esc: quit")
	return status + " " + help
}
