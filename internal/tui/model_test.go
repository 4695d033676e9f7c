package tui

import (
	"path/filepath"
	"testing"
	"time"

	"until/internal/settings"
	"until/internal/storage"
)

func TestNewModelFreshStore(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "until.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	m, err := NewModel(store)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if m.current != StateCountdown {
		t.Errorf("expected initial state %v, got %v", StateCountdown, m.current)
	}

	// A fresh store renders the compiled-in defaults.
	nextYear := time.Now().Year() + 1
	want := settings.Defaults(time.Now()).Title
	if m.widgetModel.Settings.Title != want {
		t.Errorf("expected default title %q, got %q", want, m.widgetModel.Settings.Title)
	}
	if m.widgetModel.Settings.Target.Year() != nextYear {
		t.Errorf("expected target year %d, got %d", nextYear, m.widgetModel.Settings.Target.Year())
	}
}

func TestParseFormDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantNil bool
		wantErr bool
	}{
		{"empty means undated", "", true, false},
		{"full datetime", "2026-12-31 18:30", false, false},
		{"bare date", "2026-12-31", false, false},
		{"garbage", "next tuesday", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFormDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != tt.wantNil {
				t.Errorf("got %v, wantNil=%v", got, tt.wantNil)
			}
		})
	}
}

func TestParseFormDateLocalMidnight(t *testing.T) {
	got, err := parseFormDate("2026-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSettingsFormRoundTrip(t *testing.T) {
	s := settings.Settings{
		Title:     "Countdown to 2027",
		Subtitle:  "Time remaining:",
		Subtitle2: "Happy New Year!",
		Emojis:    "💗 ❄️️",
		Target:    time.Date(2027, time.January, 1, 0, 0, 0, 0, time.Local),
		Milestone: settings.Milestone{
			Enabled: true,
			Target:  time.Date(2026, time.December, 25, 12, 0, 0, 0, time.Local),
			Message: "Almost there…",
		},
	}

	fm := settingsFormFrom(s)
	if fm.Target != "2027-01-01 00:00" {
		t.Errorf("unexpected target string: %q", fm.Target)
	}
	if fm.MilestoneDate != "2026-12-25 12:00" {
		t.Errorf("unexpected milestone string: %q", fm.MilestoneDate)
	}

	target, err := parseFormDate(fm.Target)
	if err != nil {
		t.Fatalf("target did not parse back: %v", err)
	}
	if !target.Equal(s.Target) {
		t.Errorf("target round trip lost precision: %v != %v", target, s.Target)
	}
}

func TestSettingsFormFromUnsetMilestone(t *testing.T) {
	s := settings.Settings{Target: time.Now()}
	fm := settingsFormFrom(s)
	if fm.MilestoneDate != "" {
		t.Errorf("expected empty milestone date, got %q", fm.MilestoneDate)
	}
}
