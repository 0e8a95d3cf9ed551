package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcurp/internal/curp"
	"github.com/zarlcorp/zcurp/internal/identity"
	"github.com/zarlcorp/zcurp/internal/names"
)

const (
	fieldGiven = iota
	fieldPaternal
	fieldMaternal
	fieldSex
	fieldBirthDate
	fieldState
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"given names",
	"paternal",
	"maternal",
	"sex",
	"birth date",
	"state",
}

// formModel collects personal data for encoding.
type formModel struct {
	inputs [fieldCount]textinput.Model
	focus  int
	flash  string
}

// encodedMsg carries a freshly encoded record to the root model.
type encodedMsg struct {
	record identity.Record
}

func newFormModel() formModel {
	var inputs [fieldCount]textinput.Model
	for i := range fieldCount {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}

	inputs[fieldSex].CharLimit = 1
	inputs[fieldSex].Placeholder = "H or M"
	inputs[fieldBirthDate].CharLimit = 10
	inputs[fieldBirthDate].Placeholder = "YYYY-MM-DD"
	inputs[fieldState].CharLimit = 2
	inputs[fieldState].Placeholder = "DF"

	m := formModel{inputs: inputs}
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1), textinput.Blink
	case "shift+tab", "up":
		return m.moveFocus(-1), textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	return m.updateInput(msg)
}

func (m formModel) moveFocus(delta int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// personalData builds the encoder input from the form. Names are folded;
// date and state are passed through as typed.
func (m formModel) personalData() curp.PersonalData {
	sex, _ := utf8.DecodeRuneInString(strings.ToUpper(strings.TrimSpace(m.inputs[fieldSex].Value())))
	return curp.PersonalData{
		GivenNames:      names.Fold(m.inputs[fieldGiven].Value()),
		PaternalSurname: names.Fold(m.inputs[fieldPaternal].Value()),
		MaternalSurname: names.Fold(m.inputs[fieldMaternal].Value()),
		Sex:             curp.Sex(sex),
		BirthDate:       strings.TrimSpace(m.inputs[fieldBirthDate].Value()),
		BirthState:      strings.TrimSpace(m.inputs[fieldState].Value()),
	}
}

func (m formModel) submit() (formModel, tea.Cmd) {
	if strings.TrimSpace(m.inputs[fieldGiven].Value()) == "" {
		m.flash = "given names are required"
		return m, clearFlashAfter()
	}
	if strings.TrimSpace(m.inputs[fieldSex].Value()) == "" {
		m.flash = "sex is required (H or M)"
		return m, clearFlashAfter()
	}

	r := identity.NewRecord(m.personalData())
	return m, func() tea.Msg { return encodedMsg{record: r} }
}

func (m formModel) View() string {
	s := fmt.Sprintf("\n  %s\n\n", zstyle.Title.Render("personal data"))

	for i := range fieldCount {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-12s", fieldLabels[i]))
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		s += fmt.Sprintf("  %s%s %s\n", cursor, label, m.inputs[i].View())
	}

	// hint for the state field
	if code := strings.ToUpper(strings.TrimSpace(m.inputs[fieldState].Value())); len(code) == 2 {
		if name := identity.StateName(code); name != "" {
			s += "\n  " + zstyle.MutedText.Render(code+" = "+name) + "\n"
		} else {
			s += "\n  " + zstyle.StatusWarn.Render(code+" is not a known state code") + "\n"
		}
	} else {
		s += "\n\n"
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
