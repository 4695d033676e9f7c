package countdown

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestComputeSplitsUnits(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	// 1 day, 1 hour, 1 minute, 1 second ahead
	target := now.Add(90061 * time.Second)

	r := Compute(target, now)
	if r.Elapsed {
		t.Fatal("target in the future reported as elapsed")
	}
	if r.Days != 1 || r.Hours != 1 || r.Minutes != 1 || r.Seconds != 1 {
		t.Errorf("expected 1d 1h 1m 1s, got %dd %dh %dm %ds", r.Days, r.Hours, r.Minutes, r.Seconds)
	}
}

func TestComputeElapsed(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, target := range []time.Time{now, now.Add(-time.Second), now.Add(-365 * 24 * time.Hour)} {
		r := Compute(target, now)
		if !r.Elapsed {
			t.Errorf("target %v not reported elapsed", target)
		}
		if r.Days != 0 || r.Hours != 0 || r.Minutes != 0 || r.Seconds != 0 {
			t.Errorf("elapsed countdown should be all zeros, got %+v", r)
		}
	}
}

func TestComputeUnitRanges(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		ahead   time.Duration
		days    int
		hours   int
		minutes int
		seconds int
	}{
		{59 * time.Second, 0, 0, 0, 59},
		{60 * time.Second, 0, 0, 1, 0},
		{23*time.Hour + 59*time.Minute + 59*time.Second, 0, 23, 59, 59},
		{24 * time.Hour, 1, 0, 0, 0},
		{400*24*time.Hour + 5*time.Second, 400, 0, 0, 5},
	}

	for _, tc := range cases {
		r := Compute(now.Add(tc.ahead), now)
		if r.Days != tc.days || r.Hours != tc.hours || r.Minutes != tc.minutes || r.Seconds != tc.seconds {
			t.Errorf("ahead %v: expected %d/%d/%d/%d, got %d/%d/%d/%d",
				tc.ahead, tc.days, tc.hours, tc.minutes, tc.seconds,
				r.Days, r.Hours, r.Minutes, r.Seconds)
		}
	}
}

func TestComputeFloorsSubSecond(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// 1.9s away is still 1 second on the display
	r := Compute(now.Add(1900*time.Millisecond), now)
	if r.Seconds != 1 {
		t.Errorf("expected floor to 1 second, got %d", r.Seconds)
	}
}

func TestClockPadding(t *testing.T) {
	r := Remaining{Hours: 3, Minutes: 0, Seconds: 7}
	h, m, s := r.Clock()
	if h != "03" || m != "00" || s != "07" {
		t.Errorf("expected 03/00/07, got %s/%s/%s", h, m, s)
	}
}

func TestMilestoneHidden(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)

	cases := []struct {
		name    string
		enabled bool
		target  time.Time
	}{
		{"disabled", false, future},
		{"no target", true, time.Time{}},
		{"already passed", true, now.Add(-time.Millisecond)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, visible := Milestone(tc.enabled, tc.target, now); visible {
				t.Error("milestone should be hidden")
			}
		})
	}
}

func TestMilestoneVisible(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	r, visible := Milestone(true, now.Add(2*time.Hour), now)
	if !visible {
		t.Fatal("upcoming enabled milestone should be visible")
	}
	if r.Hours != 2 {
		t.Errorf("expected 2 hours remaining, got %+v", r)
	}
}

func TestTickerStartStop(t *testing.T) {
	var ticks atomic.Int64
	ticker := NewTicker(10*time.Millisecond, func(time.Time) {
		ticks.Add(1)
	})

	ticker.Start()
	time.Sleep(60 * time.Millisecond)
	ticker.Stop()

	got := ticks.Load()
	if got == 0 {
		t.Fatal("ticker never fired")
	}

	// No further ticks after Stop
	time.Sleep(30 * time.Millisecond)
	if after := ticks.Load(); after != got {
		t.Errorf("ticker fired after Stop: %d -> %d", got, after)
	}

	// Stop is idempotent, and the ticker can be restarted
	ticker.Stop()
	ticker.Start()
	time.Sleep(30 * time.Millisecond)
	ticker.Stop()
	if ticks.Load() == got {
		t.Error("restarted ticker never fired")
	}
}
