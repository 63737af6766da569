// Package tui renders the interactive per-session job checklist.
//
// Checkbox state lives only inside the running session. It is never
// written to disk or synced anywhere; closing the checklist discards it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sudsywork/sudsy/internal/cli"
	"github.com/sudsywork/sudsy/internal/model"
)

// KeyMap defines the key bindings for the checklist.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard checklist key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// itemRef locates one checklist item inside the template.
type itemRef struct {
	section int
	item    int
}

// Model holds the checklist TUI state.
type Model struct {
	checked  map[itemRef]bool
	job      model.Job
	tag      model.ServiceTag
	template model.Template
	keymap   KeyMap
	items    []itemRef
	cursor   int
	quitting bool
}

// NewModel creates a checklist model for a job and its resolved template.
func NewModel(job model.Job, tag model.ServiceTag, tmpl model.Template) Model {
	var items []itemRef
	for si, section := range tmpl.Sections {
		for ii := range section.Items {
			items = append(items, itemRef{section: si, item: ii})
		}
	}

	return Model{
		job:      job,
		tag:      tag,
		template: tmpl,
		keymap:   DefaultKeyMap(),
		items:    items,
		checked:  make(map[itemRef]bool),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keymap.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keymap.Toggle):
		if len(m.items) > 0 {
			ref := m.items[m.cursor]
			m.checked[ref] = !m.checked[ref]
		}
	}

	return m, nil
}

// CheckedCount returns how many items the crew has ticked off.
func (m Model) CheckedCount() int {
	n := 0
	for _, done := range m.checked {
		if done {
			n++
		}
	}
	return n
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render(m.tag.DisplayName() + " Checklist"))
	b.WriteString("\n")
	b.WriteString(cli.SubtitleStyle.Render(cli.RenderJobLine(m.job, m.tag)))
	b.WriteString("\n")

	flat := 0
	for si, section := range m.template.Sections {
		b.WriteString("\n")
		b.WriteString(cli.SectionStyle.Render(section.Label))
		b.WriteString("\n")

		for ii, item := range section.Items {
			ref := itemRef{section: si, item: ii}

			box := "[ ]"
			if m.checked[ref] {
				box = cli.SuccessStyle.Render("[x]")
			}

			line := fmt.Sprintf("  %s %s", box, item)
			if flat == m.cursor {
				line = cli.BoldStyle.Render(fmt.Sprintf("> %s %s", box, item))
			}

			b.WriteString(line)
			b.WriteString("\n")
			flat++
		}
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("%d/%d done · space toggle · j/k move · q quit",
		m.CheckedCount(), len(m.items))))
	b.WriteString("\n")

	return b.String()
}
