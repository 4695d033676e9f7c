package session

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"until/internal/constants"
	"until/internal/storage"
)

func setupTestStore(t *testing.T) storage.Provider {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return store
}

func TestTrackFirstLaunch(t *testing.T) {
	store := setupTestStore(t)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	gap, err := Track(store, now)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if gap != 0 {
		t.Errorf("first launch should report zero gap, got %v", gap)
	}

	// The current timestamp must have been written
	value, ok, err := store.Get(constants.KeyLastOpenedMs)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != strconv.FormatInt(now.UnixMilli(), 10) {
		t.Errorf("lastOpenedMs not updated: %q (ok=%v)", value, ok)
	}
}

func TestTrackComputesGap(t *testing.T) {
	store := setupTestStore(t)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	previous := now.Add(-2 * time.Minute)
	if err := store.Set(constants.KeyLastOpenedMs, strconv.FormatInt(previous.UnixMilli(), 10)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	gap, err := Track(store, now)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if gap != 2*time.Minute {
		t.Errorf("expected 2m gap, got %v", gap)
	}

	// Overwrite happens exactly once per call: a second call sees zero gap
	gap, err = Track(store, now)
	if err != nil {
		t.Fatalf("second Track failed: %v", err)
	}
	if gap != 0 {
		t.Errorf("back-to-back track should report zero gap, got %v", gap)
	}
}

func TestTrackCorruptedValue(t *testing.T) {
	store := setupTestStore(t)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	if err := store.Set(constants.KeyLastOpenedMs, "garbage"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	gap, err := Track(store, now)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if gap != 0 {
		t.Errorf("corrupted value should report zero gap, got %v", gap)
	}
}

func TestFormatGap(t *testing.T) {
	cases := []struct {
		gap  time.Duration
		want string
	}{
		{3 * time.Second, ""}, // below threshold, suppressed
		{4999 * time.Millisecond, ""},
		{5 * time.Second, "5 seconds"},
		{59 * time.Second, "59 seconds"},
		{time.Minute, "1 minute"},
		{2 * time.Minute, "2 minutes"},
		{59 * time.Minute, "59 minutes"},
		{time.Hour, "1 hour"},
		{5 * time.Hour, "5 hours"},
		{24 * time.Hour, "1 day"},
		{72*time.Hour + 30*time.Minute, "3 days"},
	}

	for _, tc := range cases {
		if got := FormatGap(tc.gap); got != tc.want {
			t.Errorf("FormatGap(%v) = %q, want %q", tc.gap, got, tc.want)
		}
	}
}
