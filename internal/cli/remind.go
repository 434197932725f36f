package cli

import (
	"fmt"
	"time"

	"habitctl/internal/notify"
)

type RemindCmd struct {
	Schedule RemindScheduleCmd `cmd:"" help:"Schedule the habit check-in reminder."`
	List     RemindListCmd     `cmd:"" help:"List scheduled reminders."`
	Cancel   RemindCancelCmd   `cmd:"" help:"Cancel a reminder by id."`
}

type RemindScheduleCmd struct{}

func (c *RemindScheduleCmd) Run(ctx *Context) error {
	r, err := notify.ScheduleCheckIn(ctx.Scheduler, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Scheduled reminder %s for %s\n", r.ID, r.At.Format(time.Kitchen))
	return nil
}

type RemindListCmd struct{}

func (c *RemindListCmd) Run(ctx *Context) error {
	reminders, err := ctx.Scheduler.List()
	if err != nil {
		return err
	}

	if len(reminders) == 0 {
		fmt.Println("No reminders scheduled.")
		return nil
	}
	for _, r := range reminders {
		fmt.Printf("%s  %s  %s\n", r.ID, r.At.Format("2006-01-02 15:04"), r.Title)
	}
	return nil
}

type RemindCancelCmd struct {
	ID string `arg:"" help:"Reminder id to cancel."`
}

func (c *RemindCancelCmd) Run(ctx *Context) error {
	if err := ctx.Scheduler.Cancel(c.ID); err != nil {
		return err
	}
	fmt.Printf("Cancelled reminder %s\n", c.ID)
	return nil
}
