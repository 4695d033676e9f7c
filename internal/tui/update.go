package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"until/internal/calendar"
	"until/internal/constants"
	"until/internal/settings"
	"until/internal/tui/components/reminderlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add/Edit Reminder State
	if m.current == StateAddReminder || m.current == StateEditReminder {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.current = StateReminders
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			due, err := parseFormDate(m.reminderForm.Date)
			if err != nil {
				// The input validated, so this should not happen; stay in
				// the form to let the user correct it anyway.
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			var saveErr error
			if m.current == StateEditReminder {
				_, saveErr = m.reminders.Update(m.editingID, m.reminderForm.Message, due)
			} else {
				_, saveErr = m.reminders.Create(m.reminderForm.Message, due)
			}

			if saveErr == nil {
				m.refreshReminders()
				m.current = StateReminders
			} else {
				m.form.State = huh.StateNormal
			}
		case huh.StateAborted:
			m.current = StateReminders
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Edit Settings State
	if m.current == StateEditSettings {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.current = StateSettings
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			target, err := parseFormDate(m.settingsForm.Target)
			if err != nil || target == nil {
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			milestoneDate, err := parseFormDate(m.settingsForm.MilestoneDate)
			if err != nil {
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			if milestoneDate == nil {
				// A non-nil zero value clears the stored milestone date.
				milestoneDate = new(time.Time)
			}

			patch := settings.Patch{
				Title:            &m.settingsForm.Title,
				Subtitle:         &m.settingsForm.Subtitle,
				Subtitle2:        &m.settingsForm.Subtitle2,
				Emojis:           &m.settingsForm.Emojis,
				Target:           target,
				MilestoneEnabled: &m.settingsForm.MilestoneEnabled,
				MilestoneTarget:  milestoneDate,
				MilestoneMsg:     &m.settingsForm.MilestoneMsg,
			}
			if err := m.settings.Save(patch); err != nil {
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			m.refreshSettings()
			m.current = StateSettings
		case huh.StateAborted:
			m.current = StateSettings
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.current == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if _, err := m.reminders.Delete(m.reminderToDeleteID); err == nil {
					m.refreshReminders()
				}
				m.current = StateReminders
				m.reminderToDeleteID = 0
			case "n", "N", "esc", "q":
				m.current = StateReminders
				m.reminderToDeleteID = 0
			}
		}
		return m, nil
	}

	// Handle Confirm Reset State
	if m.current == StateConfirmReset {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.settings.ResetText(); err == nil {
					m.refreshSettings()
				}
				m.current = StateSettings
			case "n", "N", "esc", "q":
				m.current = StateSettings
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Adjust height for tabs and help
		listHeight := msg.Height - 4

		h, v := docStyle.GetFrameSize()
		m.reminderList.SetSize(msg.Width-h, listHeight-v)
		m.widgetModel.SetSize(msg.Width, listHeight)

	case reminderlist.AddMsg:
		m.reminderForm = &ReminderFormModel{}
		m.form = newReminderForm(m.reminderForm)
		m.editingID = 0
		m.current = StateAddReminder
		return m, m.form.Init()

	case reminderlist.EditMsg:
		fm := &ReminderFormModel{Message: msg.Reminder.Message}
		if due, ok := msg.Reminder.Due(); ok {
			fm.Date = due.Format(constants.DateTimeFormat)
		}
		m.reminderForm = fm
		m.form = newReminderForm(fm)
		m.editingID = msg.Reminder.ID
		m.current = StateEditReminder
		return m, m.form.Init()

	case reminderlist.DeleteMsg:
		m.reminderToDeleteID = msg.ID
		m.current = StateConfirmDelete
		return m, nil

	case reminderlist.ExportMsg:
		due, ok := msg.Reminder.Due()
		if !ok {
			return m, nil
		}
		event := calendar.Event{Summary: msg.Reminder.Message, Start: due}
		data, err := event.Encode()
		if err != nil {
			m.status = fmt.Sprintf("Export failed: %v", err)
			return m, nil
		}
		name := fmt.Sprintf("reminder-%d.ics", msg.Reminder.ID)
		if err := os.WriteFile(name, data, 0o644); err != nil {
			m.status = fmt.Sprintf("Export failed: %v", err)
			return m, nil
		}
		m.status = fmt.Sprintf("Exported %s", name)
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.current == StateReminders && m.reminderList.Filtering() {
				break
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab, m.keys.Right):
			if m.current == StateReminders && m.reminderList.Filtering() {
				break
			}
			m.current = (m.current + 1) % numTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab, m.keys.Left):
			if m.current == StateReminders && m.reminderList.Filtering() {
				break
			}
			m.current = (m.current - 1 + numTabs) % numTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.current == StateSettings {
			switch {
			case key.Matches(msg, m.keys.Edit):
				m.settingsForm = settingsFormFrom(m.widgetModel.Settings)
				m.form = newSettingsForm(m.settingsForm)
				m.current = StateEditSettings
				return m, m.form.Init()
			case key.Matches(msg, m.keys.Reset):
				m.current = StateConfirmReset
				return m, nil
			}
		}
	}

	// Always update the widget for time ticks
	var cmd tea.Cmd
	m.widgetModel, cmd = m.widgetModel.Update(msg)
	cmds = append(cmds, cmd)

	if m.current == StateReminders {
		m.reminderList, cmd = m.reminderList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// settingsFormFrom seeds the edit form with the current record.
func settingsFormFrom(s settings.Settings) *SettingsFormModel {
	fm := &SettingsFormModel{
		Title:            s.Title,
		Subtitle:         s.Subtitle,
		Subtitle2:        s.Subtitle2,
		Emojis:           s.Emojis,
		Target:           s.Target.Format(constants.DateTimeFormat),
		MilestoneEnabled: s.Milestone.Enabled,
		MilestoneMsg:     s.Milestone.Message,
	}
	if !s.Milestone.Target.IsZero() {
		fm.MilestoneDate = s.Milestone.Target.Format(constants.DateTimeFormat)
	}
	return fm
}
