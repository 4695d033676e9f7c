package widget

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"until/internal/constants"
	"until/internal/countdown"
	"until/internal/settings"
)

// gapVisibleFor is how long the "while you were away" line stays on
// screen before fading out.
const gapVisibleFor = 5 * time.Second

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	unitBoxStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Align(lipgloss.Center)

	unitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	targetLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0)

	milestoneStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212"))

	gapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Italic(true)

	emojiStripStyle = lipgloss.NewStyle().
			Padding(1, 0)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the ticking countdown card. It re-renders from its settings
// snapshot once per second; the snapshot changes only through SetSettings.
type Model struct {
	Settings settings.Settings
	Time     time.Time

	gapLine  string
	gapEmoji string
	shownAt  time.Time
	width    int
	height   int
}

func New(s settings.Settings, gap string) Model {
	now := time.Now()
	return Model{
		Settings: s,
		Time:     now,
		gapLine:  gap,
		gapEmoji: settings.RandomEmoji(s.EmojiPool()),
		shownAt:  now,
	}
}

func (m *Model) SetSettings(s settings.Settings) {
	m.Settings = s
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Time = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	r := countdown.Compute(m.Settings.Target, m.Time)
	h, min, sec := r.Clock()

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		unitBox(fmt.Sprintf("%d", r.Days), "days"),
		unitBox(h, "hours"),
		unitBox(min, "minutes"),
		unitBox(sec, "seconds"),
	)

	parts := []string{
		titleStyle.Render(m.Settings.Title),
		subtitleStyle.Render(m.Settings.Subtitle),
		boxes,
		targetLineStyle.Render("Target: " + m.Settings.Target.Format(constants.DisplayFormat)),
	}

	if mr, visible := countdown.Milestone(m.Settings.Milestone.Enabled, m.Settings.Milestone.Target, m.Time); visible {
		mh, mm, ms := mr.Clock()
		card := lipgloss.JoinVertical(lipgloss.Center,
			m.Settings.Milestone.Message,
			fmt.Sprintf("%d days %s:%s:%s", mr.Days, mh, mm, ms),
		)
		parts = append(parts, milestoneStyle.Render(card))
	}

	if m.Settings.Subtitle2 != "" {
		parts = append(parts, subtitleStyle.Render(m.Settings.Subtitle2))
	}

	if line := m.gapView(); line != "" {
		parts = append(parts, gapStyle.Render(line))
	}

	parts = append(parts, emojiStripStyle.Render(strings.Join(m.Settings.EmojiPool(), " ")))

	card := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// gapView shows the away-line until its fade deadline passes.
func (m Model) gapView() string {
	if m.gapLine == "" || m.Time.Sub(m.shownAt) > gapVisibleFor {
		return ""
	}
	return fmt.Sprintf("While you were away, %s passed %s", m.gapLine, m.gapEmoji)
}

func unitBox(value, label string) string {
	return unitBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		value,
		unitLabelStyle.Render(label),
	))
}
