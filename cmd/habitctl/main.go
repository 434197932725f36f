package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"habitctl/internal/api"
	"habitctl/internal/cli"
	"habitctl/internal/notify"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string        `help:"Habit service base URL." env:"HABITCTL_SERVER" default:"http://localhost:3333"`
	Data    string        `help:"Reminder database path." env:"HABITCTL_DATA" type:"path" default:"~/.config/habitctl/reminders.db"`
	LogFile string        `help:"Log file path." env:"HABITCTL_LOG" type:"path" default:"~/.config/habitctl/habitctl.log"`
	Timeout time.Duration `help:"Request timeout." default:"10s"`

	Tui    cli.TuiCmd    `cmd:"" help:"Open the interactive day view." default:"1"`
	Day    cli.DayCmd    `cmd:"" help:"Print the habits for a day."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a habit's completion."`
	Habit  struct {
		Add cli.HabitAddCmd `cmd:"" help:"Create a new habit."`
	} `cmd:"" help:"Manage habits."`
	Remind cli.RemindCmd `cmd:"" help:"Manage local check-in reminders."`
	Debug  cli.DebugCmd  `cmd:"" help:"Debugging helpers."`
}

// newLogger writes to a file: stdout belongs to the TUI. Logging is
// best-effort; a failure degrades to a no-op logger.
func newLogger(path string) *zap.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return zap.NewNop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(f),
		zap.InfoLevel,
	)
	return zap.New(core)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitctl"),
		kong.Description("Terminal client for your daily habits"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	logger := newLogger(CLI.LogFile)
	defer logger.Sync()

	// The reminder scheduler lives from startup to shutdown and is
	// injected into the commands that consume it.
	scheduler := notify.NewSQLiteScheduler(CLI.Data)
	if err := scheduler.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer scheduler.Close()

	appCtx := &cli.Context{
		Client:    api.New(CLI.Server, CLI.Timeout, logger),
		Scheduler: scheduler,
		Logger:    logger,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
