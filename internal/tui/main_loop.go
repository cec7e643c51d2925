package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpassos/autoescola/internal/service"
	"github.com/rpassos/autoescola/models"
)

type section int

const (
	sectionMenu section = iota
	sectionStudents
	sectionStudentDetail
	sectionStudentForm
	sectionUsers
	sectionUserForm
	sectionPassword
)

type studentsLoadedMsg struct {
	students []models.Student
	err      error
}

type documentsLoadedMsg struct {
	documents []models.Document
	err       error
}

type accountsLoadedMsg struct {
	accounts []models.Account
	err      error
}

// opDoneMsg carries the outcome of any state-changing service call plus the
// section whose data must be reloaded afterwards.
type opDoneMsg struct {
	result models.OperationResult
	reload section
}

type copiedMsg struct {
	label string
}

type logoutDoneMsg struct{}

// mainModel drives the authenticated part of the UI. One model owns every
// section; the current section selects which update/view branch runs.
type mainModel struct {
	ctx      context.Context
	services *service.Services
	session  models.Session

	section section
	menuIdx int

	students    []models.Student
	studentIdx  int
	searching   bool
	searchInput textinput.Model
	searchQuery string

	documents []models.Document
	docIdx    int

	accounts   []models.Account
	accountIdx int

	form formModel

	loading bool
	status  string
	errMsg  string

	confirmActive bool
	confirmText   string
	confirmCmd    tea.Cmd

	logout bool
}

func newMainModel(ctx context.Context, services *service.Services, session models.Session) mainModel {
	return mainModel{
		ctx:      ctx,
		services: services,
		session:  session,
	}
}

func (m mainModel) Init() tea.Cmd {
	return nil
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case studentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = service.MessageForError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.students = msg.students
		m.studentIdx = clampIndex(m.studentIdx, len(m.students))
		return m, nil

	case documentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = service.MessageForError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.documents = msg.documents
		m.docIdx = clampIndex(m.docIdx, len(m.documents))
		return m, nil

	case accountsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = service.MessageForError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.accounts = msg.accounts
		m.accountIdx = clampIndex(m.accountIdx, len(m.accounts))
		return m, nil

	case opDoneMsg:
		m.form.saving = false
		if !msg.result.Success {
			m.errMsg = msg.result.Message
			return m, nil
		}
		m.status = msg.result.Message
		m.errMsg = ""
		return m.afterSuccessfulOp(msg.reload)

	case copiedMsg:
		m.status = msg.label + " copied to clipboard"
		return m, nil

	case logoutDoneMsg:
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.section == sectionStudentForm || m.section == sectionUserForm || m.section == sectionPassword {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirmActive {
		return m.updateConfirm(keyMsg)
	}

	switch m.section {
	case sectionMenu:
		return m.updateMenu(keyMsg)
	case sectionStudents:
		return m.updateStudents(keyMsg)
	case sectionStudentDetail:
		return m.updateStudentDetail(keyMsg)
	case sectionUsers:
		return m.updateUsers(keyMsg)
	case sectionStudentForm, sectionUserForm, sectionPassword:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m mainModel) View() string {
	if m.confirmActive {
		return renderConfirm(m.confirmText)
	}

	switch m.section {
	case sectionMenu:
		return m.viewMenu()
	case sectionStudents:
		return m.viewStudents()
	case sectionStudentDetail:
		return m.viewStudentDetail()
	case sectionUsers:
		return m.viewUsers()
	case sectionStudentForm, sectionUserForm, sectionPassword:
		return m.viewForm()
	}

	return renderPage("AUTOESCOLA", "", "")
}

// afterSuccessfulOp leaves any form, returns to the section's list screen,
// and reloads its data.
func (m mainModel) afterSuccessfulOp(reload section) (tea.Model, tea.Cmd) {
	switch reload {
	case sectionStudents:
		m.section = sectionStudents
		m.loading = true
		return m, m.cmdLoadStudents()
	case sectionStudentDetail:
		m.section = sectionStudentDetail
		m.loading = true
		return m, m.cmdLoadDocuments(m.currentStudent().ID)
	case sectionUsers:
		m.section = sectionUsers
		m.loading = true
		return m, m.cmdLoadAccounts()
	default:
		m.section = sectionMenu
		return m, nil
	}
}

// ── Menu ─────────────────────────────────────────────────────────────────────

type menuEntry struct {
	label  string
	target func(m mainModel) (tea.Model, tea.Cmd)
}

func (m mainModel) menuEntries() []menuEntry {
	entries := []menuEntry{
		{label: "Students", target: func(m mainModel) (tea.Model, tea.Cmd) {
			m.section = sectionStudents
			m.loading = true
			return m, m.cmdLoadStudents()
		}},
	}

	if service.HasPermission(&m.session, "manage-users") {
		entries = append(entries, menuEntry{label: "User management", target: func(m mainModel) (tea.Model, tea.Cmd) {
			m.section = sectionUsers
			m.loading = true
			return m, m.cmdLoadAccounts()
		}})
	}

	entries = append(entries,
		menuEntry{label: "Change password", target: func(m mainModel) (tea.Model, tea.Cmd) {
			m.form = newPasswordForm()
			m.section = sectionPassword
			return m, nil
		}},
		menuEntry{label: "Logout", target: func(m mainModel) (tea.Model, tea.Cmd) {
			return m, m.cmdLogout()
		}},
		menuEntry{label: "Quit", target: func(m mainModel) (tea.Model, tea.Cmd) {
			return m, tea.Quit
		}},
	)

	return entries
}

func (m mainModel) updateMenu(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.menuEntries()

	switch keyMsg.String() {
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down", "j":
		if m.menuIdx < len(entries)-1 {
			m.menuIdx++
		}
	case "enter":
		m.status = ""
		m.errMsg = ""
		return entries[m.menuIdx].target(m)
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m mainModel) viewMenu() string {
	var b strings.Builder

	b.WriteString("Signed in as ")
	b.WriteString(m.session.Account.FullName)
	b.WriteString(" (")
	b.WriteString(string(m.session.Account.Role))
	b.WriteString(")\n\n")

	for i, entry := range m.menuEntries() {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(entry.label)
		b.WriteString("\n")
	}

	m.appendStatus(&b)

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ q: quit")
}

func (m mainModel) appendStatus(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString("OK: " + m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
}

func (m mainModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		_ = auth.Logout(ctx)
		return logoutDoneMsg{}
	}
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
