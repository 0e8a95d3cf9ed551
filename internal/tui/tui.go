// Package tui implements the root Bubble Tea model for zcurp.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zcurp/internal/identity"
	"github.com/zarlcorp/zcurp/internal/store"
)

type viewID int

const (
	viewPassword viewID = iota
	viewMenu
	viewForm
	viewResult
	viewList
	viewDetail
)

// accent colours cursors and the code itself.
var accent = lipgloss.Color("#2FA36B")

// Model is the root TUI model.
type Model struct {
	version  string
	dataDir  string
	gen      *identity.Generator
	store    *store.Store
	firstRun bool

	active   viewID
	password passwordModel
	menu     menuModel
	form     formModel
	result   resultModel
	list     listModel
	detail   detailModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version, dataDir string, gen *identity.Generator, firstRun bool) Model {
	return Model{
		version:  version,
		dataDir:  dataDir,
		gen:      gen,
		firstRun: firstRun,
		active:   viewPassword,
		password: newPasswordModel(firstRun),
		menu:     newMenuModel(version),
	}
}

func (m Model) Init() tea.Cmd {
	return m.password.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passwordSubmitMsg:
		return m.openStore(msg.password)

	case navigateMsg:
		return m.navigate(msg.view)

	case encodedMsg:
		m.result = newResultModel(msg.record, sourceForm)
		m.active = viewResult
		return m, tea.ClearScreen

	case saveRecordMsg:
		return m.handleSave(msg.record)

	case deleteRecordMsg:
		return m.handleDelete(msg.id)

	case viewRecordMsg:
		m.detail = newDetailModel(msg.record)
		m.active = viewDetail
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// password and menu carry their own title
	switch m.active {
	case viewPassword:
		return m.password.View()
	case viewMenu:
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewForm:
		content = m.form.View()
	case viewResult:
		content = m.result.View()
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	}

	header := "  " + zstyle.Title.Render("zcurp") + "  " + zstyle.Subtitle.Render(viewTitle(m.active))
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewForm:
		return "Encode"
	case viewResult:
		return "Result"
	case viewList:
		return "Saved Records"
	case viewDetail:
		return "Record Details"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "enter", Desc: "encode"},
			{Key: "esc", Desc: "back"},
		}
	case viewResult:
		return []zstyle.HelpPair{
			{Key: "s", Desc: "save"},
			{Key: "c", Desc: "copy curp"},
			{Key: "enter", Desc: "copy field"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy curp"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewForm:
		m.form, cmd = m.form.Update(msg)
	case viewResult:
		m.result, cmd = m.result.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}

	return m, cmd
}

func (m Model) openStore(password string) (tea.Model, tea.Cmd) {
	if err := os.MkdirAll(m.dataDir, 0o700); err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{
			err: fmt.Errorf("create data dir: %w", err),
		})
		return m, nil
	}

	s, err := store.Open(zfilesystem.NewOSFileSystem(m.dataDir), []byte(password))
	if err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	m.store = s
	return m.navigate(viewMenu)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		mm := newMenuModel(m.version)
		if m.store != nil {
			if rs, err := m.store.List(); err == nil {
				mm.recordCount = len(rs)
			}
		}
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewForm:
		m.form = newFormModel()
		m.active = viewForm
		return m, tea.Batch(m.form.Init(), tea.ClearScreen)

	case viewResult:
		// a random persona; form results arrive through encodedMsg
		m.result = newResultModel(m.gen.Generate(), sourceGenerator)
		m.active = viewResult
		return m, tea.ClearScreen

	case viewList:
		m, cmd := m.loadList()
		return m, tea.Batch(cmd, tea.ClearScreen)

	case viewDetail:
		m.active = viewDetail
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) loadList() (Model, tea.Cmd) {
	if m.store == nil {
		m.list = newListModel(nil)
		m.active = viewList
		return m, nil
	}

	rs, err := m.store.List()
	if err != nil {
		// show empty list with error flash
		m.list = newListModel(nil)
		m.list.flash = "load: " + err.Error()
		m.active = viewList
		return m, clearFlashAfter()
	}

	m.list = newListModel(rs)
	m.active = viewList
	return m, nil
}

func (m Model) handleSave(r identity.Record) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}

	if err := m.store.Save(r); err != nil {
		m.result = m.result.setFlash("save: " + err.Error())
		return m, clearFlashAfter()
	}

	m.result, _ = m.result.Update(recordSavedMsg{})
	return m, clearFlashAfter()
}

func (m Model) handleDelete(id string) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}

	if err := m.store.Delete(id); err != nil {
		if m.active == viewDetail {
			m.detail.flash = "delete: " + err.Error()
			return m, clearFlashAfter()
		}
		m.list.flash = "delete: " + err.Error()
		return m, clearFlashAfter()
	}

	// detail and list both land on the refreshed list
	m, cmd := m.loadList()
	m.list.flash = "deleted"
	return m, tea.Batch(cmd, clearFlashAfter())
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
