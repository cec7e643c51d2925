// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Passos

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpassos/autoescola/internal/app"
	"github.com/rpassos/autoescola/internal/service"
	"github.com/rpassos/autoescola/models"
)

func (m mainModel) currentStudent() models.Student {
	if len(m.students) == 0 {
		return models.Student{}
	}
	return m.students[clampIndex(m.studentIdx, len(m.students))]
}

func (m mainModel) currentDocument() models.Document {
	if len(m.documents) == 0 {
		return models.Document{}
	}
	return m.documents[clampIndex(m.docIdx, len(m.documents))]
}

// ── Student list ─────────────────────────────────────────────────────────────

func (m mainModel) updateStudents(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateStudentSearch(keyMsg)
	}

	switch keyMsg.String() {
	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.loading = true
			return m, m.cmdLoadStudents()
		}
		m.section = sectionMenu
		m.status = ""
		m.errMsg = ""
		return m, nil
	case "/":
		m.searching = true
		m.searchInput = newInput("name, CPF or phone", 40)
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.Focus()
		return m, nil
	case "up", "k":
		if m.studentIdx > 0 {
			m.studentIdx--
		}
	case "down", "j":
		if m.studentIdx < len(m.students)-1 {
			m.studentIdx++
		}
	case "enter":
		if len(m.students) == 0 {
			return m, nil
		}
		m.section = sectionStudentDetail
		m.docIdx = 0
		m.loading = true
		return m, m.cmdLoadDocuments(m.currentStudent().ID)
	case "n":
		m.form = newStudentForm(nil)
		m.section = sectionStudentForm
		return m, nil
	case "e":
		if len(m.students) == 0 {
			return m, nil
		}
		student := m.currentStudent()
		m.form = newStudentForm(&student)
		m.section = sectionStudentForm
		return m, nil
	case "d":
		if len(m.students) == 0 {
			return m, nil
		}
		student := m.currentStudent()
		m.confirmActive = true
		m.confirmText = "Delete student \"" + student.FullName + "\" and all attached documents?"
		m.confirmCmd = m.cmdDeleteStudent(student.ID)
		return m, nil
	}

	return m, nil
}

func (m mainModel) updateStudentSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.searching = false
		return m, nil
	case "enter":
		m.searching = false
		m.searchQuery = strings.TrimSpace(m.searchInput.Value())
		m.studentIdx = 0
		m.loading = true
		return m, m.cmdLoadStudents()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(keyMsg)
	return m, cmd
}

func (m mainModel) viewStudents() string {
	if m.loading {
		return renderPage("STUDENTS", "loading...", "")
	}

	var b strings.Builder

	if m.searching {
		b.WriteString("Search │ " + m.searchInput.View() + "\n\n")
	} else if m.searchQuery != "" {
		b.WriteString("Filter │ \"" + m.searchQuery + "\" (esc clears)\n\n")
	}

	if len(m.students) == 0 {
		if m.searchQuery != "" {
			b.WriteString("No students match the filter.\n")
		} else {
			b.WriteString("No students registered yet.\n")
		}
	} else {
		b.WriteString(fmt.Sprintf("  %-30s │ %-14s │ %-3s │ %s\n", "Name", "CPF", "Cat", "Status"))
		b.WriteString(strings.Repeat("─", 66))
		b.WriteString("\n")
		for i, student := range m.students {
			cursor := " "
			if i == m.studentIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-30s │ %-14s │ %-3s │ %s\n",
				cursor,
				fitText(student.FullName, 30),
				student.CPF,
				student.Category,
				student.Status,
			))
		}
	}

	m.appendStatus(&b)

	hotKeys := "enter: detail │ n: new │ e: edit │ d: delete │ /: search │ esc: menu"
	if m.searching {
		hotKeys = "enter: apply │ esc: cancel"
	}

	return renderPage("STUDENTS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// ── Student detail ───────────────────────────────────────────────────────────

func (m mainModel) updateStudentDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.section = sectionStudents
		m.status = ""
		m.errMsg = ""
		return m, nil
	case "up", "k":
		if m.docIdx > 0 {
			m.docIdx--
		}
	case "down", "j":
		if m.docIdx < len(m.documents)-1 {
			m.docIdx++
		}
	case "c":
		return m, cmdCopy("CPF", m.currentStudent().CPF)
	case "p":
		return m, cmdCopy("Phone", m.currentStudent().Phone)
	case "d":
		if len(m.documents) == 0 {
			return m, nil
		}
		doc := m.currentDocument()
		m.confirmActive = true
		m.confirmText = "Remove document \"" + doc.Name + "\"?"
		m.confirmCmd = m.cmdRemoveDocument(doc.ID)
		return m, nil
	}

	return m, nil
}

func (m mainModel) viewStudentDetail() string {
	student := m.currentStudent()

	var b strings.Builder
	b.WriteString("Name       │ " + student.FullName + "\n")
	b.WriteString("CPF        │ " + student.CPF + "\n")
	b.WriteString("Phone      │ " + student.Phone + "\n")
	b.WriteString("Birth date │ " + student.BirthDate + "\n")
	b.WriteString("Category   │ " + string(student.Category) + "\n")
	b.WriteString("Address    │ " + orDash(student.Address) + "\n")
	b.WriteString("Notes      │ " + orDash(student.Notes) + "\n")
	b.WriteString("Registered │ " + formatDate(student.CreatedAt) + "\n")
	b.WriteString("Status     │ " + string(student.Status) + "\n")

	b.WriteString("\nDocuments\n")
	b.WriteString(strings.Repeat("─", 50))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("loading...\n")
	} else if len(m.documents) == 0 {
		b.WriteString("none\n")
	} else {
		for i, doc := range m.documents {
			cursor := " "
			if i == m.docIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-28s │ %-10s │ %s\n",
				cursor, fitText(doc.Name, 28), formatSize(doc.Size), formatDate(doc.UploadedAt)))
		}
	}

	m.appendStatus(&b)

	return renderPage("STUDENT", strings.TrimRight(b.String(), "\n"),
		"c: copy cpf │ p: copy phone │ d: remove document │ esc: back")
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// ── Commands ─────────────────────────────────────────────────────────────────

// cmdLoadStudents goes through Search so an active filter survives reloads
// after create, edit and delete. An empty query is the full registry.
func (m mainModel) cmdLoadStudents() tea.Cmd {
	ctx := m.ctx
	students := m.services.Students
	query := m.searchQuery
	return func() tea.Msg {
		matched, err := students.Search(ctx, query)
		return studentsLoadedMsg{students: matched, err: err}
	}
}

func (m mainModel) cmdLoadDocuments(studentID string) tea.Cmd {
	ctx := m.ctx
	documents := m.services.Documents
	return func() tea.Msg {
		owned, err := documents.ListByStudent(ctx, studentID)
		return documentsLoadedMsg{documents: owned, err: err}
	}
}

func (m mainModel) cmdDeleteStudent(id string) tea.Cmd {
	ctx := m.ctx
	students := m.services.Students
	return func() tea.Msg {
		err := students.Delete(ctx, id)
		return opDoneMsg{result: service.Outcome(err, app.MsgStudentDeleted), reload: sectionStudents}
	}
}

func (m mainModel) cmdRemoveDocument(id string) tea.Cmd {
	ctx := m.ctx
	documents := m.services.Documents
	return func() tea.Msg {
		err := documents.Remove(ctx, id)
		return opDoneMsg{result: service.Outcome(err, app.MsgDocumentRemoved), reload: sectionStudentDetail}
	}
}

func cmdCopy(label, value string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			return opDoneMsg{result: models.OperationResult{Success: false, Message: "clipboard unavailable"}}
		}
		return copiedMsg{label: label}
	}
}
