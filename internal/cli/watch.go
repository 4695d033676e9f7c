package cli

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"until/internal/countdown"
	"until/internal/session"
)

type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	s, err := ctx.Settings().Load()
	if err != nil {
		return err
	}

	gap, err := session.Track(ctx.Store, time.Now())
	if err != nil {
		return err
	}
	if away := session.FormatGap(gap); away != "" {
		fmt.Printf("While you were away, %s passed\n\n", away)
	}

	fmt.Println(s.Title)

	render := func(now time.Time) {
		r := countdown.Compute(s.Target, now)
		h, m, sec := r.Clock()
		fmt.Printf("\r  %d days %s:%s:%s ", r.Days, h, m, sec)
	}
	render(time.Now())

	ticker := countdown.NewTicker(time.Second, render)
	ticker.Start()
	defer ticker.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt

	fmt.Println()
	return nil
}
