package tui

import tea "github.com/charmbracelet/bubbletea"

func (m mainModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		cmd := m.confirmCmd
		m.confirmActive = false
		m.confirmCmd = nil
		m.loading = true
		return m, cmd
	case "n", "esc":
		m.confirmActive = false
		m.confirmCmd = nil
		return m, nil
	}

	return m, nil
}

func renderConfirm(text string) string {
	return overlayBoxStyle.Render(text + "\n\ny: yes    n: no")
}
