package session

import (
	"fmt"
	"strconv"
	"time"

	"until/internal/constants"
	"until/internal/storage"
)

// MinReportableGap filters out rapid relaunch noise: gaps below it are
// suppressed entirely.
const MinReportableGap = 5 * time.Second

// Track reads the previous last-opened timestamp, immediately overwrites it
// with now, and returns the elapsed gap. Call it exactly once per process
// start. A first launch (or an unparseable stored value) reports a zero gap.
func Track(store storage.Provider, now time.Time) (time.Duration, error) {
	value, ok, err := store.Get(constants.KeyLastOpenedMs)
	if err != nil {
		return 0, err
	}

	var previous int64
	if ok {
		if ms, parseErr := strconv.ParseInt(value, 10, 64); parseErr == nil {
			previous = ms
		}
	}

	if err := store.Set(constants.KeyLastOpenedMs, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		return 0, err
	}

	if previous <= 0 {
		return 0, nil
	}
	return time.Duration(now.UnixMilli()-previous) * time.Millisecond, nil
}

// FormatGap renders an away-duration as its coarsest cleared whole unit:
// seconds under a minute, then minutes, hours, days. Durations under
// MinReportableGap yield the empty string.
func FormatGap(gap time.Duration) string {
	if gap < MinReportableGap {
		return ""
	}

	sec := int64(gap.Seconds())
	value, unit := sec, "second"
	if min := sec / 60; min >= 1 {
		value, unit = min, "minute"
		if hr := min / 60; hr >= 1 {
			value, unit = hr, "hour"
			if d := hr / 24; d >= 1 {
				value, unit = d, "day"
			}
		}
	}

	if value == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", value, unit)
}
