package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpassos/autoescola/internal/app"
	"github.com/rpassos/autoescola/internal/service"
	"github.com/rpassos/autoescola/models"
)

func (m mainModel) currentAccount() models.Account {
	if len(m.accounts) == 0 {
		return models.Account{}
	}
	return m.accounts[clampIndex(m.accountIdx, len(m.accounts))]
}

func (m mainModel) updateUsers(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.section = sectionMenu
		m.status = ""
		m.errMsg = ""
		return m, nil
	case "up", "k":
		if m.accountIdx > 0 {
			m.accountIdx--
		}
	case "down", "j":
		if m.accountIdx < len(m.accounts)-1 {
			m.accountIdx++
		}
	case "n":
		m.form = newUserForm()
		m.section = sectionUserForm
		return m, nil
	case "t":
		if len(m.accounts) == 0 {
			return m, nil
		}
		return m, m.cmdToggleActive(m.currentAccount().ID)
	case "d":
		if len(m.accounts) == 0 {
			return m, nil
		}
		account := m.currentAccount()
		m.confirmActive = true
		m.confirmText = "Delete user \"" + account.Username + "\"?"
		m.confirmCmd = m.cmdDeleteAccount(account.ID)
		return m, nil
	}

	return m, nil
}

func (m mainModel) viewUsers() string {
	if m.loading {
		return renderPage("USER MANAGEMENT", "loading...", "")
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %-20s │ %-14s │ %-7s │ %-8s │ %s\n",
		"Name", "Username", "Role", "Active", "Last login"))
	b.WriteString(strings.Repeat("─", 78))
	b.WriteString("\n")

	for i, account := range m.accounts {
		cursor := " "
		if i == m.accountIdx {
			cursor = ">"
		}
		active := "yes"
		if !account.Active {
			active = "no"
		}
		b.WriteString(fmt.Sprintf("%s %-20s │ %-14s │ %-7s │ %-8s │ %s\n",
			cursor,
			fitText(account.FullName, 20),
			fitText(account.Username, 14),
			account.Role,
			active,
			formatNullableDate(account.LastLoginAt),
		))
	}

	m.appendStatus(&b)

	return renderPage("USER MANAGEMENT", strings.TrimRight(b.String(), "\n"),
		"n: new │ t: toggle active │ d: delete │ esc: menu")
}

func (m mainModel) cmdLoadAccounts() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		accounts, err := auth.ListAccounts(ctx)
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

func (m mainModel) cmdToggleActive(targetID string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	session := m.session
	return func() tea.Msg {
		active, err := auth.ToggleActive(ctx, session, targetID)
		toggled := service.ToggleOutcome(active, err)
		return opDoneMsg{result: toggled.OperationResult, reload: sectionUsers}
	}
}

func (m mainModel) cmdDeleteAccount(targetID string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	session := m.session
	return func() tea.Msg {
		err := auth.DeleteAccount(ctx, session, targetID)
		return opDoneMsg{result: service.Outcome(err, app.MsgUserDeleted), reload: sectionUsers}
	}
}
