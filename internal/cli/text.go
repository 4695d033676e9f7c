package cli

import (
	"fmt"

	"until/internal/settings"
)

type TextSetCmd struct {
	Title     *string `help:"Main title line."`
	Subtitle  *string `help:"Line above the countdown."`
	Subtitle2 *string `help:"Line below the countdown."`
	Emojis    *string `help:"Whitespace-separated emoji pool."`
}

func (c *TextSetCmd) Run(ctx *Context) error {
	if c.Title == nil && c.Subtitle == nil && c.Subtitle2 == nil && c.Emojis == nil {
		return fmt.Errorf("nothing to set, pass at least one of --title, --subtitle, --subtitle2, --emojis")
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Only the provided fields are written; an explicit empty string is a
	// valid value and sticks.
	patch := settings.Patch{
		Title:     c.Title,
		Subtitle:  c.Subtitle,
		Subtitle2: c.Subtitle2,
		Emojis:    c.Emojis,
	}
	if err := ctx.Settings().Save(patch); err != nil {
		return err
	}

	fmt.Println("Saved.")
	return nil
}

type TextResetCmd struct{}

func (c *TextResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Settings().ResetText(); err != nil {
		return err
	}

	fmt.Println("Text customization reset to defaults. Target date and background were kept.")
	return nil
}
