package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration is applied to exported events, which carry no explicit end.
const DefaultDuration = time.Hour

var (
	ErrEmptySummary = errors.New("event summary cannot be empty")
	ErrNoStart      = errors.New("event start time is required")
)

// Event is a single calendar entry derived from a dated reminder.
type Event struct {
	Summary string
	Start   time.Time
}

const stampFormat = "20060102T150405Z"

// Encode renders the event as an iCalendar (RFC 5545) document with a
// one-hour duration. Lines are CRLF-terminated.
func (e Event) Encode() ([]byte, error) {
	if strings.TrimSpace(e.Summary) == "" {
		return nil, ErrEmptySummary
	}
	if e.Start.IsZero() {
		return nil, ErrNoStart
	}

	start := e.Start.UTC()
	end := start.Add(DefaultDuration)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//until//countdown//EN",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s", uuid.New().String()),
		fmt.Sprintf("DTSTAMP:%s", time.Now().UTC().Format(stampFormat)),
		fmt.Sprintf("DTSTART:%s", start.Format(stampFormat)),
		fmt.Sprintf("DTEND:%s", end.Format(stampFormat)),
		fmt.Sprintf("SUMMARY:%s", escapeText(e.Summary)),
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}
	return []byte(strings.Join(lines, "\r\n")), nil
}

// escapeText applies the RFC 5545 TEXT escapes for commas, semicolons,
// backslashes and newlines.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
