package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpassos/autoescola/internal/app"
	"github.com/rpassos/autoescola/internal/service"
	"github.com/rpassos/autoescola/models"
)

type formKind int

const (
	formStudent formKind = iota
	formUser
	formPassword
)

// formModel is the shared state of the three input forms (student record,
// new user, password change). The active section decides which submit path
// runs; the widget handling is identical for all of them.
type formModel struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	saving bool
	errMsg string

	// editing holds the student being updated; nil means create.
	editing *models.Student
}

func newInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 128
	in.Width = width
	return in
}

func newMaskedInput(placeholder string, width int) textinput.Model {
	in := newInput(placeholder, width)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func newStudentForm(editing *models.Student) formModel {
	f := formModel{
		kind:   formStudent,
		title:  "STUDENT FORM",
		labels: []string{"Name", "CPF", "Phone", "Birth date", "Category", "Address", "Notes"},
		inputs: []textinput.Model{
			newInput("full name", 40),
			newInput("000.000.000-00", 20),
			newInput("(00) 00000-0000", 20),
			newInput("1999-05-20", 14),
			newInput("A/B/AB/C/D/E", 6),
			newInput("address", 40),
			newInput("notes", 40),
		},
		editing: editing,
	}

	if editing != nil {
		values := []string{
			editing.FullName, editing.CPF, editing.Phone, editing.BirthDate,
			string(editing.Category), editing.Address, editing.Notes,
		}
		for i, v := range values {
			f.inputs[i].SetValue(v)
		}
	}

	f.inputs[0].Focus()
	return f
}

func newUserForm() formModel {
	f := formModel{
		kind:   formUser,
		title:  "NEW USER",
		labels: []string{"Full name", "Username", "Email", "Password", "Admin (y/n)"},
		inputs: []textinput.Model{
			newInput("full name", 40),
			newInput("username", 30),
			newInput("email", 40),
			newMaskedInput("at least 6 characters", 30),
			newInput("n", 3),
		},
	}
	f.inputs[0].Focus()
	return f
}

func newPasswordForm() formModel {
	f := formModel{
		kind:   formPassword,
		title:  "CHANGE PASSWORD",
		labels: []string{"Current password", "New password", "Confirm new password"},
		inputs: []textinput.Model{
			newMaskedInput("current password", 30),
			newMaskedInput("at least 6 characters", 30),
			newMaskedInput("repeat new password", 30),
		},
	}
	f.inputs[0].Focus()
	return f
}

func (m mainModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.form.errMsg = ""
		switch m.form.kind {
		case formStudent:
			m.section = sectionStudents
		case formUser:
			m.section = sectionUsers
		default:
			m.section = sectionMenu
		}
		return m, nil
	case "tab", "down":
		m.form.focusInput((m.form.focus + 1) % len(m.form.inputs))
		return m, nil
	case "shift+tab", "up":
		m.form.focusInput((m.form.focus + len(m.form.inputs) - 1) % len(m.form.inputs))
		return m, nil
	case "enter":
		if m.form.saving {
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m mainModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.form.kind {
	case formStudent:
		return m.submitStudentForm()
	case formUser:
		return m.submitUserForm()
	default:
		return m.submitPasswordForm()
	}
}

func (m mainModel) submitStudentForm() (tea.Model, tea.Cmd) {
	student := models.Student{
		FullName:  strings.TrimSpace(m.form.value(0)),
		CPF:       strings.TrimSpace(m.form.value(1)),
		Phone:     strings.TrimSpace(m.form.value(2)),
		BirthDate: strings.TrimSpace(m.form.value(3)),
		Category:  models.LicenseCategory(strings.ToUpper(strings.TrimSpace(m.form.value(4)))),
		Address:   strings.TrimSpace(m.form.value(5)),
		Notes:     strings.TrimSpace(m.form.value(6)),
	}

	editing := m.form.editing
	if editing != nil {
		student.ID = editing.ID
		student.Status = editing.Status
	}

	m.form.errMsg = ""
	m.form.saving = true

	ctx := m.ctx
	students := m.services.Students
	return m, func() tea.Msg {
		var err error
		message := app.MsgStudentRegistered
		if editing != nil {
			_, err = students.Update(ctx, student)
			message = app.MsgStudentUpdated
		} else {
			_, err = students.Register(ctx, student)
		}
		return opDoneMsg{result: service.Outcome(err, message), reload: sectionStudents}
	}
}

func (m mainModel) submitUserForm() (tea.Model, tea.Cmd) {
	draft := models.AccountDraft{
		FullName: strings.TrimSpace(m.form.value(0)),
		Username: strings.TrimSpace(m.form.value(1)),
		Email:    strings.TrimSpace(m.form.value(2)),
		Password: m.form.value(3),
	}
	if strings.EqualFold(strings.TrimSpace(m.form.value(4)), "y") {
		draft.Role = models.RoleAdmin
	}

	if draft.FullName == "" || draft.Username == "" || draft.Email == "" {
		m.form.errMsg = "name, username and email are required"
		return m, nil
	}
	if len(draft.Password) < 6 {
		m.form.errMsg = "password must have at least 6 characters"
		return m, nil
	}

	m.form.errMsg = ""
	m.form.saving = true

	ctx := m.ctx
	auth := m.services.Auth
	return m, func() tea.Msg {
		_, err := auth.CreateAccount(ctx, draft)
		return opDoneMsg{result: service.Outcome(err, app.MsgUserCreated), reload: sectionUsers}
	}
}

func (m mainModel) submitPasswordForm() (tea.Model, tea.Cmd) {
	current := m.form.value(0)
	next := m.form.value(1)
	confirm := m.form.value(2)

	// Strength and confirmation are enforced here; the service only checks
	// the current password.
	if len(next) < 6 {
		m.form.errMsg = "new password must have at least 6 characters"
		return m, nil
	}
	if next != confirm {
		m.form.errMsg = "password confirmation does not match"
		return m, nil
	}

	m.form.errMsg = ""
	m.form.saving = true

	ctx := m.ctx
	auth := m.services.Auth
	accountID := m.session.ID()
	return m, func() tea.Msg {
		err := auth.ChangePassword(ctx, accountID, current, next)
		return opDoneMsg{result: service.Outcome(err, app.MsgPasswordUpdated), reload: sectionMenu}
	}
}

func (m mainModel) viewForm() string {
	var b strings.Builder

	width := 0
	for _, label := range m.form.labels {
		if len(label) > width {
			width = len(label)
		}
	}

	for i, label := range m.form.labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", width-len(label)))
		b.WriteString(" │ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.form.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.form.errMsg))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.form.title, strings.TrimRight(b.String(), "\n"),
		"enter: save │ tab: next field │ esc: cancel")
}

func (f *formModel) focusInput(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

func (f *formModel) value(idx int) string {
	return f.inputs[idx].Value()
}
