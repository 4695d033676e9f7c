package countdown

import (
	"fmt"
	"time"
)

// Remaining is the time left until a target, split into display units.
// Hours, Minutes and Seconds stay within their conventional ranges
// (0-23 / 0-59 / 0-59); Days is unbounded.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Elapsed bool
}

// Compute splits target-now into whole display units. Once the target has
// passed it reports all zeros with Elapsed set, and keeps doing so forever.
func Compute(target, now time.Time) Remaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return Remaining{Elapsed: true}
	}

	totalSec := int(diff.Milliseconds() / 1000)
	return Remaining{
		Days:    totalSec / 86400,
		Hours:   (totalSec % 86400) / 3600,
		Minutes: (totalSec % 3600) / 60,
		Seconds: totalSec % 60,
	}
}

// Milestone is the gated variant of Compute: unlike the primary countdown,
// which shows zeros after elapsing, a milestone hides itself entirely when
// disabled, unset, or already passed.
func Milestone(enabled bool, target, now time.Time) (Remaining, bool) {
	if !enabled || target.IsZero() {
		return Remaining{}, false
	}

	r := Compute(target, now)
	if r.Elapsed {
		return Remaining{}, false
	}
	return r, true
}

// Clock renders the hours/minutes/seconds portion zero-padded to width 2.
func (r Remaining) Clock() (hours, minutes, seconds string) {
	return fmt.Sprintf("%02d", r.Hours), fmt.Sprintf("%02d", r.Minutes), fmt.Sprintf("%02d", r.Seconds)
}
