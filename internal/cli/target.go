package cli

import (
	"fmt"

	"until/internal/constants"
	"until/internal/settings"
)

type TargetSetCmd struct {
	Date string `arg:"" help:"Target moment (\"YYYY-MM-DD HH:MM\", \"YYYY-MM-DD\", or epoch ms)."`
}

func (c *TargetSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	target, err := ParseDateTime(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Settings().Save(settings.Patch{Target: &target}); err != nil {
		return err
	}

	fmt.Printf("Counting down to: %s\n", target.Format(constants.DisplayFormat))
	return nil
}

type TargetShowCmd struct{}

func (c *TargetShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	s, err := ctx.Settings().Load()
	if err != nil {
		return err
	}

	fmt.Printf("Target: %s (%d)\n", s.Target.Format(constants.DisplayFormat), s.Target.UnixMilli())
	return nil
}
