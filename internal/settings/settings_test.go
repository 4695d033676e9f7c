package settings

import (
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"until/internal/constants"
	"until/internal/storage"
)

func setupTestModel(t *testing.T) (*Model, storage.Provider) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return NewModel(store), store
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func boolPtr(b bool) *bool { return &b }

func TestLoadDefaults(t *testing.T) {
	model, _ := setupTestModel(t)

	s, err := model.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	nextYear := time.Now().Year() + 1
	if s.Title != fmt.Sprintf("Countdown to %d", nextYear) {
		t.Errorf("unexpected default title: %q", s.Title)
	}
	if s.Subtitle != constants.DefaultSubtitle || s.Subtitle2 != constants.DefaultSubtitle2 {
		t.Errorf("unexpected default subtitles: %q / %q", s.Subtitle, s.Subtitle2)
	}
	if s.Emojis != constants.DefaultEmojis {
		t.Errorf("unexpected default emojis: %q", s.Emojis)
	}
	if s.Background != "" {
		t.Errorf("background should default to unset, got %q", s.Background)
	}

	wantTarget := time.Date(nextYear, time.January, 1, 0, 0, 0, 0, time.Local)
	if !s.Target.Equal(wantTarget) {
		t.Errorf("expected default target %v, got %v", wantTarget, s.Target)
	}

	if s.Milestone.Enabled || !s.Milestone.Target.IsZero() {
		t.Errorf("milestone should default to disabled and unset, got %+v", s.Milestone)
	}
	if s.Milestone.Message != constants.DefaultMilestoneMsg {
		t.Errorf("unexpected default milestone message: %q", s.Milestone.Message)
	}
}

func TestTargetRoundTrip(t *testing.T) {
	model, _ := setupTestModel(t)

	// Round-trip must be exact epoch-ms, no calendar re-interpretation drift
	target := time.Date(2031, time.March, 14, 9, 26, 53, 0, time.Local)
	if err := model.Save(Patch{Target: timePtr(target)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := model.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Target.UnixMilli() != target.UnixMilli() {
		t.Errorf("target drifted: saved %d, loaded %d", target.UnixMilli(), s.Target.UnixMilli())
	}
}

func TestEmptyStringIsNotAbsent(t *testing.T) {
	model, _ := setupTestModel(t)

	if err := model.Save(Patch{Title: strPtr("")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := model.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Title != "" {
		t.Errorf("explicitly saved empty title came back as %q", s.Title)
	}
	// Untouched fields still default
	if s.Subtitle != constants.DefaultSubtitle {
		t.Errorf("subtitle should still default, got %q", s.Subtitle)
	}
}

func TestCorruptedTimestampFallsBack(t *testing.T) {
	model, store := setupTestModel(t)

	if err := store.Set(constants.KeyDateMs, "not-a-number"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	s, err := model.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantTarget := time.Date(time.Now().Year()+1, time.January, 1, 0, 0, 0, 0, time.Local)
	if !s.Target.Equal(wantTarget) {
		t.Errorf("corrupted target should fall back to default, got %v", s.Target)
	}
}

func TestLoadIdempotent(t *testing.T) {
	model, _ := setupTestModel(t)

	if err := model.Save(Patch{
		Title:            strPtr("Trip!"),
		MilestoneEnabled: boolPtr(true),
		MilestoneTarget:  timePtr(time.Date(2030, time.July, 1, 8, 0, 0, 0, time.Local)),
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	first, err := model.Load()
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	second, err := model.Load()
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two loads with no writes differ:\n%+v\n%+v", first, second)
	}
}

func TestSaveMilestone(t *testing.T) {
	model, store := setupTestModel(t)

	target := time.Date(2030, time.December, 24, 18, 0, 0, 0, time.Local)
	if err := model.Save(Patch{
		MilestoneEnabled: boolPtr(true),
		MilestoneTarget:  timePtr(target),
		MilestoneMsg:     strPtr("Nearly!"),
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := model.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !s.Milestone.Enabled || s.Milestone.Target.UnixMilli() != target.UnixMilli() || s.Milestone.Message != "Nearly!" {
		t.Errorf("milestone did not round-trip: %+v", s.Milestone)
	}

	// A zero milestone target clears the stored date
	if err := model.Save(Patch{MilestoneTarget: timePtr(time.Time{})}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, ok, _ := store.Get(constants.KeyMilestoneDateMs); ok {
		t.Error("zero milestone target should remove the stored key")
	}
}

func TestResetText(t *testing.T) {
	model, store := setupTestModel(t)

	target := time.Date(2031, time.May, 5, 0, 0, 0, 0, time.Local)
	if err := model.Save(Patch{
		Title:      strPtr("My title"),
		Emojis:     strPtr("🌙"),
		Background: strPtr("data:image/jpeg;base64,xyz"),
		Target:     timePtr(target),
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := model.ResetText(); err != nil {
		t.Fatalf("ResetText failed: %v", err)
	}

	s, err := model.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Title == "My title" || s.Emojis == "🌙" {
		t.Error("text customization survived reset")
	}

	// Target and background are untouched by a text reset
	if s.Target.UnixMilli() != target.UnixMilli() {
		t.Errorf("target was reset: %v", s.Target)
	}
	if s.Background != "data:image/jpeg;base64,xyz" {
		t.Errorf("background was reset: %q", s.Background)
	}

	// But an explicit reset clears them too
	if err := model.Reset(FieldTarget, FieldBackground); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if _, ok, _ := store.Get(constants.KeyDateMs); ok {
		t.Error("explicit target reset left the key behind")
	}
}

func TestEmojiPool(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"💗 ✨ 🌙", []string{"💗", "✨", "🌙"}},
		{"  💗\t✨  ", []string{"💗", "✨"}},
		{"", []string{constants.DefaultEmojiToken}},
		{"   ", []string{constants.DefaultEmojiToken}},
	}

	for _, tc := range cases {
		got := Settings{Emojis: tc.raw}.EmojiPool()
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("EmojiPool(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestRandomEmojiDrawsFromPool(t *testing.T) {
	pool := []string{"💗", "✨", "🌙"}
	members := map[string]bool{}
	for _, e := range pool {
		members[e] = true
	}

	for i := 0; i < 50; i++ {
		if e := RandomEmoji(pool); !members[e] {
			t.Fatalf("drew %q, not in pool", e)
		}
	}

	if RandomEmoji(nil) != constants.DefaultEmojiToken {
		t.Error("empty pool should draw the default token")
	}
}
