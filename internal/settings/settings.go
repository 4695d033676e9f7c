package settings

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"until/internal/constants"
	"until/internal/storage"
)

// Milestone is the secondary, independently toggled countdown.
type Milestone struct {
	Enabled bool
	Target  time.Time // zero when unset
	Message string
}

// Settings is the full customization record, hydrated from the store with
// compiled-in defaults filling any absent key. Absence, not emptiness,
// triggers a default: an explicitly saved empty string stays empty.
type Settings struct {
	Title      string
	Subtitle   string
	Subtitle2  string
	Emojis     string // raw whitespace-separated pool
	Background string // self-contained data URL, "" when unset
	Target     time.Time
	Milestone  Milestone
}

// Defaults returns the compiled-in settings for a given clock reading:
// a countdown to midnight, January 1st of next year, local time.
func Defaults(now time.Time) Settings {
	nextYear := now.Year() + 1
	return Settings{
		Title:     fmt.Sprintf("Countdown to %d", nextYear),
		Subtitle:  constants.DefaultSubtitle,
		Subtitle2: constants.DefaultSubtitle2,
		Emojis:    constants.DefaultEmojis,
		Target:    time.Date(nextYear, time.January, 1, 0, 0, 0, 0, now.Location()),
		Milestone: Milestone{
			Message: constants.DefaultMilestoneMsg,
		},
	}
}

// Model owns all reads and writes of the settings portion of the store.
// The key schema has exactly one reader/writer: this type.
type Model struct {
	store storage.Provider
}

func NewModel(store storage.Provider) *Model {
	return &Model{store: store}
}

// Load hydrates a Settings record. Malformed numeric values fall back to
// their defaults rather than propagating garbage into rendering.
func (m *Model) Load() (Settings, error) {
	s := Defaults(time.Now())

	var err error
	if s.Title, err = m.text(constants.KeyTitle, s.Title); err != nil {
		return Settings{}, err
	}
	if s.Subtitle, err = m.text(constants.KeySubtitle, s.Subtitle); err != nil {
		return Settings{}, err
	}
	if s.Subtitle2, err = m.text(constants.KeySubtitle2, s.Subtitle2); err != nil {
		return Settings{}, err
	}
	if s.Emojis, err = m.text(constants.KeyEmojis, s.Emojis); err != nil {
		return Settings{}, err
	}
	if s.Background, err = m.text(constants.KeyBg, ""); err != nil {
		return Settings{}, err
	}
	if s.Target, err = m.timestamp(constants.KeyDateMs, s.Target); err != nil {
		return Settings{}, err
	}

	enabled, _, err := m.store.Get(constants.KeyMilestoneEnabled)
	if err != nil {
		return Settings{}, err
	}
	s.Milestone.Enabled = enabled == "true"

	if s.Milestone.Target, err = m.timestamp(constants.KeyMilestoneDateMs, time.Time{}); err != nil {
		return Settings{}, err
	}
	if s.Milestone.Message, err = m.text(constants.KeyMilestoneMsg, s.Milestone.Message); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func (m *Model) text(key, fallback string) (string, error) {
	value, ok, err := m.store.Get(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	return value, nil
}

func (m *Model) timestamp(key string, fallback time.Time) (time.Time, error) {
	value, ok, err := m.store.Get(key)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return fallback, nil
	}

	ms, parseErr := strconv.ParseInt(value, 10, 64)
	if parseErr != nil {
		// Corrupted timestamp: fall back instead of surfacing NaN-alikes
		return fallback, nil
	}
	return time.UnixMilli(ms), nil
}

// Patch is a partial settings write. Nil fields are left untouched; a
// non-nil zero MilestoneTarget clears the stored milestone date.
type Patch struct {
	Title            *string
	Subtitle         *string
	Subtitle2        *string
	Emojis           *string
	Background       *string
	Target           *time.Time
	MilestoneEnabled *bool
	MilestoneTarget  *time.Time
	MilestoneMsg     *string
}

// Save writes every provided field through to the store. Timestamps are
// always persisted as absolute epoch milliseconds so a record saved on one
// machine reads back identically on another.
func (m *Model) Save(p Patch) error {
	texts := map[string]*string{
		constants.KeyTitle:        p.Title,
		constants.KeySubtitle:     p.Subtitle,
		constants.KeySubtitle2:    p.Subtitle2,
		constants.KeyEmojis:       p.Emojis,
		constants.KeyBg:           p.Background,
		constants.KeyMilestoneMsg: p.MilestoneMsg,
	}
	for key, value := range texts {
		if value == nil {
			continue
		}
		if err := m.store.Set(key, *value); err != nil {
			return err
		}
	}

	if p.Target != nil {
		if err := m.store.Set(constants.KeyDateMs, formatMs(*p.Target)); err != nil {
			return err
		}
	}
	if p.MilestoneEnabled != nil {
		if err := m.store.Set(constants.KeyMilestoneEnabled, strconv.FormatBool(*p.MilestoneEnabled)); err != nil {
			return err
		}
	}
	if p.MilestoneTarget != nil {
		if p.MilestoneTarget.IsZero() {
			if err := m.store.Delete(constants.KeyMilestoneDateMs); err != nil {
				return err
			}
		} else if err := m.store.Set(constants.KeyMilestoneDateMs, formatMs(*p.MilestoneTarget)); err != nil {
			return err
		}
	}

	return nil
}

// Field names a resettable settings key.
type Field string

const (
	FieldTitle            Field = constants.KeyTitle
	FieldSubtitle         Field = constants.KeySubtitle
	FieldSubtitle2        Field = constants.KeySubtitle2
	FieldEmojis           Field = constants.KeyEmojis
	FieldBackground       Field = constants.KeyBg
	FieldTarget           Field = constants.KeyDateMs
	FieldMilestoneEnabled Field = constants.KeyMilestoneEnabled
	FieldMilestoneTarget  Field = constants.KeyMilestoneDateMs
	FieldMilestoneMsg     Field = constants.KeyMilestoneMsg
)

// Reset removes the named keys so subsequent loads return their defaults.
func (m *Model) Reset(fields ...Field) error {
	for _, f := range fields {
		if err := m.store.Delete(string(f)); err != nil {
			return err
		}
	}
	return nil
}

// ResetText reverts the text customization: titles, emoji pool and
// milestone. The target date and background are deliberately left alone;
// they are reset only when named explicitly.
func (m *Model) ResetText() error {
	return m.Reset(
		FieldTitle,
		FieldSubtitle,
		FieldSubtitle2,
		FieldEmojis,
		FieldMilestoneEnabled,
		FieldMilestoneTarget,
		FieldMilestoneMsg,
	)
}

// EmojiPool splits the raw emoji setting into draw tokens. A value that
// parses to nothing yields a single default token, never an empty pool.
func (s Settings) EmojiPool() []string {
	pool := strings.Fields(s.Emojis)
	if len(pool) == 0 {
		return []string{constants.DefaultEmojiToken}
	}
	return pool
}

// RandomEmoji draws uniformly from a pool.
func RandomEmoji(pool []string) string {
	if len(pool) == 0 {
		return constants.DefaultEmojiToken
	}
	return pool[rand.IntN(len(pool))]
}

func formatMs(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
