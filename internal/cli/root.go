package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"until/internal/backup"
	"until/internal/constants"
	"until/internal/logger"
	"until/internal/reminder"
	"until/internal/settings"
	"until/internal/storage"
)

type Context struct {
	Store storage.Provider
}

func (c *Context) Settings() *settings.Model {
	return settings.NewModel(c.Store)
}

func (c *Context) Reminders() *reminder.Store {
	return reminder.NewStore(c.Store)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseDateTime accepts "YYYY-MM-DD HH:MM" or "YYYY-MM-DD" in local time,
// or a raw epoch-milliseconds value. Whatever the input form, the result is
// persisted as absolute epoch milliseconds.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.ParseInLocation(constants.DateTimeFormat, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q, use \"YYYY-MM-DD HH:MM\", \"YYYY-MM-DD\", or epoch milliseconds", s)
}
