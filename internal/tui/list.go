package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcurp/internal/identity"
)

// listModel displays saved records in a scrollable list.
type listModel struct {
	records []identity.Record
	cursor  int
	flash   string
}

// deleteRecordMsg requests deletion of a record.
type deleteRecordMsg struct {
	id string
}

// viewRecordMsg requests viewing a specific record.
type viewRecordMsg struct {
	record identity.Record
}

func newListModel(rs []identity.Record) listModel {
	return listModel{records: rs}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if len(m.records) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		r := m.records[m.cursor]
		return m, func() tea.Msg { return viewRecordMsg{record: r} }
	}

	if msg.String() == "d" {
		id := m.records[m.cursor].ID
		return m, func() tea.Msg { return deleteRecordMsg{id: id} }
	}

	return m, nil
}

func (m listModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n"

	if len(m.records) == 0 {
		s += "  " + zstyle.MutedText.Render("no saved records") + "\n"
		s += "\n"
		if m.flash != "" {
			s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
		} else {
			s += "\n"
		}
		return s
	}

	for i, r := range m.records {
		line := fmt.Sprintf("%-18s  %s", r.Code, truncate(r.FullName(), 40))
		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
