package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your commitment?").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit title cannot be empty")
					}
					return nil
				}),
			huh.NewMultiSelect[time.Weekday]().
				Title("What's the recurrence?").
				Options(
					huh.NewOption("Sunday", time.Sunday),
					huh.NewOption("Monday", time.Monday),
					huh.NewOption("Tuesday", time.Tuesday),
					huh.NewOption("Wednesday", time.Wednesday),
					huh.NewOption("Thursday", time.Thursday),
					huh.NewOption("Friday", time.Friday),
					huh.NewOption("Saturday", time.Saturday),
				).
				Value(&fm.Days).
				Validate(func(days []time.Weekday) error {
					if len(days) == 0 {
						return fmt.Errorf("pick at least one weekday")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
