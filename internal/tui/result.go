package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcurp/internal/identity"
)

// recordSource tells the result view where "new" should lead.
type recordSource int

const (
	sourceForm recordSource = iota
	sourceGenerator
)

// recordField represents a labeled field for display and selection.
type recordField struct {
	label string
	value string
}

// resultModel displays a freshly computed record with actions.
type resultModel struct {
	record  identity.Record
	source  recordSource
	fields  []recordField
	cursor  int
	flash   string
	flashAt time.Time
}

// saveRecordMsg requests saving the current record.
type saveRecordMsg struct {
	record identity.Record
}

// recordSavedMsg confirms the record was saved.
type recordSavedMsg struct{}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newResultModel(r identity.Record, src recordSource) resultModel {
	return resultModel{
		record: r,
		source: src,
		fields: recordFields(r),
	}
}

func recordFields(r identity.Record) []recordField {
	d := r.Data
	state := d.BirthState
	if name := identity.StateName(strings.ToUpper(state)); name != "" {
		state += " (" + name + ")"
	}
	return []recordField{
		{"curp", r.Code},
		{"given", d.GivenNames},
		{"paternal", d.PaternalSurname},
		{"maternal", d.MaternalSurname},
		{"sex", d.Sex.String()},
		{"born", d.BirthDate},
		{"state", state},
	}
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (resultModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case recordSavedMsg:
		return m.setFlash("saved"), clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m resultModel) handleKey(msg tea.KeyMsg) (resultModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
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
	case "s":
		r := m.record
		return m, func() tea.Msg { return saveRecordMsg{record: r} }

	case "c":
		return m.copy(m.record.Code, "copied curp!")

	case "n":
		next := viewForm
		if m.source == sourceGenerator {
			next = viewResult
		}
		return m, func() tea.Msg { return navigateMsg{view: next} }
	}

	return m, nil
}

func (m resultModel) copy(text, ok string) (resultModel, tea.Cmd) {
	if err := copyToClipboard(text); err != nil {
		return m.setFlash("copy: " + err.Error()), clearFlashAfter()
	}
	return m.setFlash(ok), clearFlashAfter()
}

func (m resultModel) setFlash(msg string) resultModel {
	m.flash = msg
	m.flashAt = time.Now()
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m resultModel) View() string {
	return renderFields("computed record", m.fields, m.cursor, m.flash)
}

// renderFields draws the shared field list used by result and detail.
func renderFields(title string, fields []recordField, cursor int, flash string) string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := fmt.Sprintf("\n  %s\n\n", zstyle.Title.Render(title))

	for i, f := range fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-10s", f.label))
		value := f.value
		if f.label == "curp" {
			value = accentStyle.Render(value)
		}
		if i == cursor {
			s += "  " + accentStyle.Render("▸") + " " + label + " " + value + "\n"
		} else {
			s += "    " + label + " " + value + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if flash != "" {
		s += "  " + zstyle.StatusOK.Render(flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
