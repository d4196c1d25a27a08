// Package tui is a terminal host for the transliteration engine.
//
// Key strokes go to a single line text input first. After each insertion
// (a typed character or a paste) the engine runs once on the input's
// content and cursor position.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/translit"
)

// tracer writes to trace with key 'translit.tui'
func tracer() tracing.Trace {
	return tracing.Select("translit.tui")
}

const maxHints = 8

// Model is the bubbletea model of the terminal host.
type Model struct {
	engine  *translit.Engine
	input   textinput.Model
	last    translit.Edit
	history []string
	width   int
}

// New creates a focused model around eng.
func New(eng *translit.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "Type Bahnar text, e.g. aw, o7, u8 ..."
	ti.Prompt = "› "
	ti.Focus()
	return Model{engine: eng, input: ti, width: 80}
}

// Value returns the current input line.
func (m Model) Value() string {
	return m.input.Value()
}

// Position returns the cursor position within the input line, in runes.
func (m Model) Position() int {
	return m.input.Position()
}

// History returns the lines entered so far, oldest first.
func (m Model) History() []string {
	return m.history
}

// LastEdit returns the edit performed by the most recent insertion.
func (m Model) LastEdit() translit.Edit {
	return m.last
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if line := m.input.Value(); line != "" {
				m.history = append(m.history, line)
			}
			m.input.Reset()
			m.last = translit.Edit{}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.transliterate()
		}
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// transliterate runs the engine once on the state right after an insertion.
func (m *Model) transliterate() {
	text := []rune(m.input.Value())
	edit, ok := m.engine.Match(text, m.input.Position())
	m.last = edit
	if !ok {
		return
	}
	text, cursor := edit.ApplyTo(text)
	m.input.SetValue(string(text))
	m.input.SetCursor(cursor)
	tracer().Debugf("%s %q → %q", edit.Kind, edit.Trigger, edit.Output)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("translit"))
	b.WriteString("\n")
	for _, line := range m.history {
		b.WriteString(historyStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(inputBoxStyle.Width(max(m.width-4, 20)).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: new line • esc: quit"))
	return b.String()
}

// status shows the last edit and the triggers which the next key could
// complete.
func (m Model) status() string {
	var parts []string
	if m.last.Kind != translit.NoEdit {
		parts = append(parts, editStyle.Render(fmt.Sprintf("%s %s → %s",
			m.last.Kind, m.last.Trigger, m.last.Output)))
	}
	hints := m.engine.Hint([]rune(m.input.Value()), m.input.Position())
	if len(hints) > 0 {
		if len(hints) > maxHints {
			hints = hints[:maxHints]
		}
		hh := make([]string, len(hints))
		for i, h := range hints {
			hh[i] = h.Trigger + "→" + h.Output
		}
		parts = append(parts, hintStyle.Render(strings.Join(hh, "  ")))
	}
	return strings.Join(parts, "  ")
}
