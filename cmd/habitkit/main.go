package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/errors"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/records"
	"github.com/julianstephens/habitkit/internal/session"
	"github.com/julianstephens/habitkit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path. A .json suffix selects the JSON file store; anything else uses SQLite." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize habitkit storage."`
	Register cli.RegisterCmd `cmd:"" help:"Create an account on this device (replaces any existing one)."`
	Login    cli.LoginCmd    `cmd:"" help:"Log in with email and password."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Log out and wipe all local data."`
	Profile  cli.ProfileCmd  `cmd:"" help:"Show the current account and totals."`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits and completions."`
	Progress cli.ProgressCmd `cmd:"" help:"Show today's completion and the 7-day trend."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show a month of completions."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	rec := records.NewService(store)
	sess := session.NewManager(rec)

	appCtx := &cli.Context{
		Store:   store,
		Records: rec,
		Session: sess,
	}

	// Load the store and rehydrate the session before running the command
	// (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		sess.Restore()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
