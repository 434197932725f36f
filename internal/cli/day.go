package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"habitctl/internal/dates"
	"habitctl/internal/day"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := dates.Parse(c.Date, time.Now())
	if err != nil {
		return err
	}

	store := day.NewStore(ctx.Client)
	if err := store.Load(context.Background(), date); err != nil {
		ctx.Logger.Warn("day load failed", zap.Error(err))
		return fmt.Errorf("could not load habits for %s", date.Format(dates.ISODate))
	}

	info := store.Snapshot()
	fmt.Printf("%s %s — %d%% complete\n\n",
		dates.WeekdayLabel(date), dates.DayMonthLabel(date), store.ProgressPercent())

	if len(info.PossibleHabits) == 0 {
		fmt.Println("  No habits tracked for this day.")
		return nil
	}

	for _, h := range info.PossibleHabits {
		mark := "○"
		if store.IsCompleted(h.ID) {
			mark = "✓"
		}
		fmt.Printf("  %s %s  (%s)\n", mark, h.Title, h.ID)
	}

	if dates.IsPast(date, time.Now()) {
		fmt.Println("\nThis day is in the past and read-only.")
	}
	return nil
}
