package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type HabitAddCmd struct {
	Title string `arg:"" help:"Habit title."`
	Days  string `help:"Weekdays the habit recurs on (names or 0-6, comma separated)." default:"sun,mon,tue,wed,thu,fri,sat"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	weekdays, err := parseWeekdays(c.Days)
	if err != nil {
		return err
	}

	if err := ctx.Client.CreateHabit(context.Background(), c.Title, weekdays); err != nil {
		ctx.Logger.Warn("habit create failed", zap.Error(err))
		return fmt.Errorf("could not create habit: %w", err)
	}

	fmt.Printf("Added habit: %s\n", c.Title)
	return nil
}
