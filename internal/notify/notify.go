// Package notify manages local check-in reminders. The scheduler is an
// explicit collaborator constructed at startup and injected where
// needed; reminder state is fire-and-forget and never feeds back into
// the day-view model.
package notify

import "time"

// Fixed check-in copy, scheduled one minute out.
const (
	CheckInTitle = "Habits 🤩"
	CheckInBody  = "Have you practiced your habits today?"
	CheckInDelay = time.Minute
)

// Reminder is one scheduled local notification.
type Reminder struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	At        time.Time `json:"at"`
	CreatedAt time.Time `json:"created_at"`
}

// Scheduler manages the local reminder ledger.
type Scheduler interface {
	Schedule(r Reminder) (Reminder, error)
	List() ([]Reminder, error)
	Cancel(id string) error
	Close() error
}

// ScheduleCheckIn schedules the fixed habit check-in reminder relative
// to now.
func ScheduleCheckIn(s Scheduler, now time.Time) (Reminder, error) {
	return s.Schedule(Reminder{
		Title: CheckInTitle,
		Body:  CheckInBody,
		At:    now.Add(CheckInDelay),
	})
}
