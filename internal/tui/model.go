package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"until/internal/reminder"
	"until/internal/session"
	"until/internal/settings"
	"until/internal/storage"
	"until/internal/tui/components/reminderlist"
	"until/internal/tui/components/widget"
)

type SessionState int

const (
	StateCountdown SessionState = iota
	StateReminders
	StateSettings
	StateAddReminder
	StateEditReminder
	StateConfirmDelete
	StateEditSettings
	StateConfirmReset
)

// numTabs counts the cycleable top-level tabs; modal states sit past them.
const numTabs = 3

type ReminderFormModel struct {
	Message string
	Date    string
}

type SettingsFormModel struct {
	Title            string
	Subtitle         string
	Subtitle2        string
	Emojis           string
	Target           string
	MilestoneEnabled bool
	MilestoneDate    string
	MilestoneMsg     string
}

type Model struct {
	store     storage.Provider
	settings  *settings.Model
	reminders *reminder.Store

	current SessionState
	keys    KeyMap
	help    help.Model

	widgetModel  widget.Model
	reminderList reminderlist.Model

	form         *huh.Form
	reminderForm *ReminderFormModel
	settingsForm *SettingsFormModel
	editingID    int64 // reminder being edited, 0 when adding

	reminderToDeleteID int64
	status             string
	quitting           bool
	width              int
	height             int
}

func NewModel(store storage.Provider) (Model, error) {
	sm := settings.NewModel(store)
	loaded, err := sm.Load()
	if err != nil {
		return Model{}, err
	}

	gap, err := session.Track(store, time.Now())
	if err != nil {
		return Model{}, err
	}

	rs := reminder.NewStore(store)
	reminders, err := rs.List()
	if err != nil {
		return Model{}, err
	}

	return Model{
		store:        store,
		settings:     sm,
		reminders:    rs,
		current:      StateCountdown,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		widgetModel:  widget.New(loaded, session.FormatGap(gap)),
		reminderList: reminderlist.New(reminders, 0, 0),
	}, nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.current {
	case StateReminders:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Export)
	case StateSettings:
		keys = append(keys, m.keys.Edit, m.keys.Reset)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.current {
	case StateReminders:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Export}
	case StateSettings:
		actions = []key.Binding{m.keys.Edit, m.keys.Reset}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return m.widgetModel.Init()
}

// refreshReminders reloads the display-ordered collection into the list.
func (m *Model) refreshReminders() {
	reminders, err := m.reminders.List()
	if err != nil {
		return
	}
	m.reminderList.SetReminders(reminders)
}

// refreshSettings rehydrates the widget after a settings write.
func (m *Model) refreshSettings() {
	current, err := m.settings.Load()
	if err != nil {
		return
	}
	m.widgetModel.SetSettings(current)
}
