package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcurp/internal/identity"
)

// detailModel displays all fields of a saved record.
type detailModel struct {
	record identity.Record
	fields []recordField
	cursor int
	flash  string
}

func newDetailModel(r identity.Record) detailModel {
	return detailModel{
		record: r,
		fields: recordFields(r),
	}
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.copy(m.fields[m.cursor].value, "copied!")
	}

	switch msg.String() {
	case "c":
		return m.copy(m.record.Code, "copied curp!")

	case "d":
		id := m.record.ID
		return m, func() tea.Msg { return deleteRecordMsg{id: id} }
	}

	return m, nil
}

func (m detailModel) copy(text, ok string) (detailModel, tea.Cmd) {
	if err := copyToClipboard(text); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = ok
	return m, clearFlashAfter()
}

func (m detailModel) View() string {
	title := m.record.FullName()
	if title == "" {
		title = m.record.ID
	}
	return renderFields(title, m.fields, m.cursor, m.flash)
}
