package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"until/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.current {
	case StateCountdown:
		content = m.widgetModel.View()
	case StateReminders:
		content = docStyle.Render(m.reminderList.View())
	case StateSettings:
		content = m.viewSettings()
	case StateAddReminder, StateEditReminder, StateEditSettings:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateConfirmReset:
		content = m.viewConfirmReset()
	}

	parts := []string{
		m.viewTabs(),
		content,
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Countdown", "Reminders", "Settings"} {
		if m.current == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSettings() string {
	s := m.widgetModel.Settings

	target := s.Target.Format(constants.DisplayFormat)
	milestone := "off"
	if s.Milestone.Enabled {
		milestone = "on"
		if !s.Milestone.Target.IsZero() {
			milestone = fmt.Sprintf("on, %s", s.Milestone.Target.Format(constants.DisplayFormat))
		}
	}
	background := "none"
	if s.Background != "" {
		background = fmt.Sprintf("set (%d bytes)", len(s.Background))
	}

	row := func(label, value string) string {
		return settingsLabelStyle.Render(label) + value
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		row("Title", s.Title),
		row("Subtitle", s.Subtitle),
		row("Footer", s.Subtitle2),
		row("Emoji pool", s.Emojis),
		row("Target", target),
		row("Milestone", milestone),
		row("Milestone message", s.Milestone.Message),
		row("Background", background),
		"",
		"Press 'e' to edit, 'r' to reset text to defaults.",
	))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this reminder?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Reset titles, emojis and milestone to defaults?"),
			"",
			"The target date and background are kept.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
