package reminderlist

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"until/internal/constants"
	"until/internal/reminder"
)

type AddMsg struct{}

type EditMsg struct {
	Reminder reminder.Reminder
}

type DeleteMsg struct {
	ID int64
}

type ExportMsg struct {
	Reminder reminder.Reminder
}

type Item struct {
	Reminder reminder.Reminder
}

func (i Item) Title() string {
	if reminder.IsOverdue(i.Reminder, time.Now()) {
		return "⏰ " + i.Reminder.Message + " (overdue)"
	}
	return i.Reminder.Message
}

func (i Item) Description() string {
	if due, ok := i.Reminder.Due(); ok {
		return due.Format(constants.DisplayFormat)
	}
	return "no date"
}

func (i Item) FilterValue() string { return i.Reminder.Message }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Export key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export .ics"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(reminders []reminder.Reminder, width, height int) Model {
	items := make([]list.Item, len(reminders))
	for i, r := range reminders {
		items[i] = Item{Reminder: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Reminders"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Export}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Export}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetReminders(reminders []reminder.Reminder) {
	items := make([]list.Item, len(reminders))
	for i, r := range reminders {
		items[i] = Item{Reminder: r}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditMsg(i) }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteMsg{ID: i.Reminder.ID} }
			}
		case key.Matches(msg, m.keys.Export):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Reminder.DueAt != nil {
					return m, func() tea.Msg { return ExportMsg(i) }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No reminders yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the list's filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
