package calendar

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEncode(t *testing.T) {
	start := time.Date(2026, 12, 24, 18, 0, 0, 0, time.UTC)
	data, err := Event{Summary: "Wrap presents", Start: start}.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	ics := string(data)
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"DTSTART:20261224T180000Z",
		"DTEND:20261224T190000Z", // default one-hour duration
		"SUMMARY:Wrap presents",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("missing %q in:\n%s", want, ics)
		}
	}

	if !strings.Contains(ics, "\r\n") {
		t.Error("expected CRLF line endings")
	}
	if !strings.Contains(ics, "UID:") {
		t.Error("expected a UID line")
	}
}

func TestEncodeConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	start := time.Date(2026, 12, 24, 21, 0, 0, 0, loc)

	data, err := Event{Summary: "Party", Start: start}.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(string(data), "DTSTART:20261224T180000Z") {
		t.Errorf("start not converted to UTC:\n%s", data)
	}
}

func TestEncodeValidation(t *testing.T) {
	if _, err := (Event{Summary: "  ", Start: time.Now()}).Encode(); !errors.Is(err, ErrEmptySummary) {
		t.Errorf("blank summary error = %v, want ErrEmptySummary", err)
	}
	if _, err := (Event{Summary: "ok"}).Encode(); !errors.Is(err, ErrNoStart) {
		t.Errorf("zero start error = %v, want ErrNoStart", err)
	}
}

func TestEncodeEscapesText(t *testing.T) {
	data, err := Event{
		Summary: "Lunch; soup, bread\nand more",
		Start:   time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
	}.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(string(data), `SUMMARY:Lunch\; soup\, bread\nand more`) {
		t.Errorf("summary not escaped:\n%s", data)
	}
}
