package cli

import (
	"fmt"
	"os"
	"time"

	"until/internal/calendar"
	"until/internal/constants"
	"until/internal/reminder"
)

type ReminderAddCmd struct {
	Message string `arg:"" help:"Reminder text."`
	Date    string `short:"d" help:"Optional due moment (\"YYYY-MM-DD HH:MM\")."`
}

func (c *ReminderAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var due *time.Time
	if c.Date != "" {
		t, err := ParseDateTime(c.Date)
		if err != nil {
			return err
		}
		due = &t
	}

	r, err := ctx.Reminders().Create(c.Message, due)
	if err != nil {
		return err
	}

	fmt.Printf("Added reminder %d: %s\n", r.ID, r.Message)
	return nil
}

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	reminders, err := ctx.Reminders().List()
	if err != nil {
		return err
	}
	if len(reminders) == 0 {
		fmt.Println("No reminders.")
		return nil
	}

	now := time.Now()
	fmt.Println("Reminders:")
	for _, r := range reminders {
		line := fmt.Sprintf("  [%d] %s", r.ID, r.Message)
		if due, ok := r.Due(); ok {
			line += " — " + due.Format(constants.DisplayFormat)
			if reminder.IsOverdue(r, now) {
				line += " (overdue)"
			}
		}
		fmt.Println(line)
	}
	return nil
}

type ReminderEditCmd struct {
	ID        int64  `arg:"" help:"Reminder identity."`
	Message   string `short:"m" help:"New reminder text."`
	Date      string `short:"d" help:"New due moment (\"YYYY-MM-DD HH:MM\")."`
	ClearDate bool   `help:"Remove the due date."`
}

func (c *ReminderEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	store := ctx.Reminders()

	existing, err := find(store, c.ID)
	if err != nil {
		return err
	}

	message := existing.Message
	if c.Message != "" {
		message = c.Message
	}

	var due *time.Time
	switch {
	case c.ClearDate:
		due = nil
	case c.Date != "":
		t, err := ParseDateTime(c.Date)
		if err != nil {
			return err
		}
		due = &t
	default:
		if t, ok := existing.Due(); ok {
			due = &t
		}
	}

	updated, err := store.Update(c.ID, message, due)
	if err != nil {
		return err
	}

	fmt.Printf("Updated reminder %d: %s\n", updated.ID, updated.Message)
	return nil
}

type ReminderDeleteCmd struct {
	ID int64 `arg:"" help:"Reminder identity."`
}

func (c *ReminderDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	removed, err := ctx.Reminders().Delete(c.ID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("reminder %d: %w", c.ID, reminder.ErrNotFound)
	}

	fmt.Printf("Deleted reminder %d.\n", c.ID)
	return nil
}

type ReminderExportCmd struct {
	ID     int64  `arg:"" help:"Reminder identity."`
	Output string `short:"o" help:"Output file." default:"reminder.ics"`
}

func (c *ReminderExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	r, err := find(ctx.Reminders(), c.ID)
	if err != nil {
		return err
	}

	due, ok := r.Due()
	if !ok {
		return fmt.Errorf("reminder %d has no due date, nothing to put on a calendar", c.ID)
	}

	data, err := calendar.Event{Summary: r.Message, Start: due}.Encode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write calendar file: %w", err)
	}

	fmt.Printf("Exported reminder %d to %s\n", c.ID, c.Output)
	return nil
}

func find(store *reminder.Store, id int64) (reminder.Reminder, error) {
	all, err := store.All()
	if err != nil {
		return reminder.Reminder{}, err
	}
	for _, r := range all {
		if r.ID == id {
			return r, nil
		}
	}
	return reminder.Reminder{}, fmt.Errorf("reminder %d: %w", id, reminder.ErrNotFound)
}
