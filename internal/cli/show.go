package cli

import (
	"fmt"
	"time"

	"until/internal/constants"
	"until/internal/countdown"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	s, err := ctx.Settings().Load()
	if err != nil {
		return err
	}

	now := time.Now()
	r := countdown.Compute(s.Target, now)
	h, m, sec := r.Clock()

	fmt.Println(s.Title)
	fmt.Println(s.Subtitle)
	if r.Elapsed {
		fmt.Println("  0 days 00:00:00 — time's up!")
	} else {
		fmt.Printf("  %d days %s:%s:%s\n", r.Days, h, m, sec)
	}
	fmt.Printf("Target: %s\n", s.Target.Format(constants.DisplayFormat))

	if mr, visible := countdown.Milestone(s.Milestone.Enabled, s.Milestone.Target, now); visible {
		mh, mm, ms := mr.Clock()
		fmt.Printf("\n%s\n", s.Milestone.Message)
		fmt.Printf("  %d days %s:%s:%s\n", mr.Days, mh, mm, ms)
	}

	if s.Subtitle2 != "" {
		fmt.Printf("\n%s\n", s.Subtitle2)
	}

	return nil
}
