package models

import (
	"fmt"
	"time"
)

// Habit is one trackable habit as reported by the server. Habits are
// immutable from the client's perspective within a day view.
type Habit struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// DayInfo is the server's snapshot of a single calendar date: the habits
// possible on that date, in server order, plus the ids already completed.
type DayInfo struct {
	CompletedHabits []string `json:"completedHabits"`
	PossibleHabits  []Habit  `json:"possibleHabits"`
}

// Validate checks the snapshot shape at the API boundary: habit ids must
// be present and unique, titles non-empty. That completedHabits only
// references ids in possibleHabits is the server's invariant and is
// deliberately not enforced here.
func (d DayInfo) Validate() error {
	seen := make(map[string]struct{}, len(d.PossibleHabits))
	for _, h := range d.PossibleHabits {
		if h.ID == "" {
			return fmt.Errorf("habit %q has no id", h.Title)
		}
		if h.Title == "" {
			return fmt.Errorf("habit %s has an empty title", h.ID)
		}
		if _, ok := seen[h.ID]; ok {
			return fmt.Errorf("duplicate habit id %s", h.ID)
		}
		seen[h.ID] = struct{}{}
	}
	return nil
}
