// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Passos

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpassos/autoescola/internal/service"
	"github.com/rpassos/autoescola/models"
)

type loginResultMsg struct {
	session models.Session
	err     error
}

// loginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (username and password) and dispatches an async login command
// on form submission. The program quits once a session is established.
type loginModel struct {
	ctx  context.Context
	auth service.AuthService

	version    string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	session    *models.Session
	quitByUser bool
}

func newLoginModel(ctx context.Context, auth service.AuthService, version string) loginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 40
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 128
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{
		ctx:     ctx,
		auth:    auth,
		version: version,
		inputs:  []textinput.Model{usernameInput, passwordInput},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = service.MessageForError(result.err)
			return m, nil
		}
		m.session = &result.session
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "tab", "down":
			m.focusInput((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.focusInput((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "AUTOESCOLA"
	if m.version != "" {
		title += "  v" + m.version
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: submit │ tab: next field │ esc: quit")
}

func (m *loginModel) focusInput(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m loginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, username, password)
		return loginResultMsg{session: session, err: err}
	}
}
