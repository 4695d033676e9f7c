package cli

import (
	"fmt"
	"time"

	"until/internal/constants"
	"until/internal/settings"
)

type MilestoneSetCmd struct {
	Date    string `arg:"" help:"Milestone moment (\"YYYY-MM-DD HH:MM\", \"YYYY-MM-DD\", or epoch ms)."`
	Message string `short:"m" help:"Message shown with the milestone countdown."`
}

func (c *MilestoneSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	target, err := ParseDateTime(c.Date)
	if err != nil {
		return err
	}

	enabled := true
	patch := settings.Patch{
		MilestoneEnabled: &enabled,
		MilestoneTarget:  &target,
	}
	if c.Message != "" {
		patch.MilestoneMsg = &c.Message
	}

	if err := ctx.Settings().Save(patch); err != nil {
		return err
	}

	fmt.Printf("Milestone set for %s\n", target.Format(constants.DisplayFormat))
	return nil
}

type MilestoneOffCmd struct{}

func (c *MilestoneOffCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	enabled := false
	clear := time.Time{}
	if err := ctx.Settings().Save(settings.Patch{
		MilestoneEnabled: &enabled,
		MilestoneTarget:  &clear,
	}); err != nil {
		return err
	}

	fmt.Println("Milestone disabled.")
	return nil
}
