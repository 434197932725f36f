package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"habitctl/internal/dates"
	"habitctl/internal/day"
)

type ToggleCmd struct {
	HabitID string `arg:"" help:"Habit id to toggle."`
	Date    string `help:"Date context (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	date, err := dates.Parse(c.Date, time.Now())
	if err != nil {
		return err
	}

	// The past-day policy lives here, at the call boundary; the
	// reconciler itself performs no date check.
	if dates.IsPast(date, time.Now()) {
		return fmt.Errorf("cannot edit habits of a past date")
	}

	store := day.NewStore(ctx.Client)
	if err := store.Load(context.Background(), date); err != nil {
		ctx.Logger.Warn("day load failed", zap.Error(err))
		return fmt.Errorf("could not load habits for %s", date.Format(dates.ISODate))
	}

	rec := day.NewReconciler(store, ctx.Client)
	if err := rec.Toggle(c.HabitID)(context.Background()); err != nil {
		ctx.Logger.Warn("habit toggle failed", zap.String("habit_id", c.HabitID), zap.Error(err))
		return fmt.Errorf("could not update the habit status; run 'habitctl day' to resync")
	}

	status := "not completed"
	if store.IsCompleted(c.HabitID) {
		status = "completed"
	}
	fmt.Printf("Habit %s is now %s — %d%% of the day complete\n",
		c.HabitID, status, store.ProgressPercent())
	return nil
}
