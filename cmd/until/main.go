package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"until/internal/cli"
	"until/internal/logger"
	"until/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/until/until.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize until storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive widget." default:"1"`
	Show  cli.ShowCmd  `cmd:"" help:"Print the countdown once."`
	Watch cli.WatchCmd `cmd:"" help:"Render the countdown every second until interrupted."`

	Target struct {
		Set  cli.TargetSetCmd  `cmd:"" help:"Set the countdown target."`
		Show cli.TargetShowCmd `cmd:"" help:"Show the countdown target."`
	} `cmd:"" help:"Manage the countdown target."`

	Text struct {
		Set   cli.TextSetCmd   `cmd:"" help:"Set title, subtitles, or the emoji pool."`
		Reset cli.TextResetCmd `cmd:"" help:"Reset text customization to defaults."`
	} `cmd:"" help:"Manage display text."`

	Milestone struct {
		Set cli.MilestoneSetCmd `cmd:"" help:"Set and enable the milestone countdown."`
		Off cli.MilestoneOffCmd `cmd:"" help:"Disable the milestone countdown."`
	} `cmd:"" help:"Manage the milestone countdown."`

	Reminder struct {
		Add    cli.ReminderAddCmd    `cmd:"" help:"Add a reminder."`
		List   cli.ReminderListCmd   `cmd:"" help:"List reminders."`
		Edit   cli.ReminderEditCmd   `cmd:"" help:"Edit a reminder."`
		Delete cli.ReminderDeleteCmd `cmd:"" help:"Delete a reminder."`
		Export cli.ReminderExportCmd `cmd:"" help:"Export a dated reminder to an .ics file."`
	} `cmd:"" help:"Manage reminders."`

	Bg struct {
		Set   cli.BgSetCmd   `cmd:"" help:"Set the background image."`
		Clear cli.BgClearCmd `cmd:"" help:"Clear the background image."`
	} `cmd:"" help:"Manage the background image."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("until"),
		kong.Description("Personal countdown and reminder companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage backend based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
