package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"until/internal/constants"
)

// parseFormDate accepts a local datetime or bare date, or the empty string
// for "no date".
func parseFormDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{constants.DateTimeFormat, "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date, use YYYY-MM-DD HH:MM or YYYY-MM-DD")
}

func validateFormDate(s string) error {
	_, err := parseFormDate(s)
	return err
}

func newReminderForm(fm *ReminderFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Message").
				Value(&fm.Message).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("message cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Due (YYYY-MM-DD HH:MM)").
				Description("Leave empty for an undated note").
				Value(&fm.Date).
				Validate(validateFormDate),
		),
	).WithTheme(huh.ThemeDracula())
}

func newSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title),
			huh.NewInput().
				Title("Subtitle").
				Value(&fm.Subtitle),
			huh.NewInput().
				Title("Footer line").
				Value(&fm.Subtitle2),
			huh.NewInput().
				Title("Emoji pool").
				Description("Whitespace-separated").
				Value(&fm.Emojis),
			huh.NewInput().
				Title("Target (YYYY-MM-DD HH:MM)").
				Value(&fm.Target).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("target date is required")
					}
					return validateFormDate(s)
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Milestone enabled").
				Value(&fm.MilestoneEnabled),
			huh.NewInput().
				Title("Milestone date (YYYY-MM-DD HH:MM)").
				Description("Leave empty to clear").
				Value(&fm.MilestoneDate).
				Validate(validateFormDate),
			huh.NewInput().
				Title("Milestone message").
				Value(&fm.MilestoneMsg),
		),
	).WithTheme(huh.ThemeDracula())
}
