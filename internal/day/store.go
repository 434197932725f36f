// Package day holds the day-view state: one fetched snapshot per date
// and the reconciliation of optimistic toggle edits against it.
package day

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"habitctl/internal/models"
)

// Fetcher retrieves a day snapshot from the habit service.
type Fetcher interface {
	GetDay(ctx context.Context, date time.Time) (models.DayInfo, error)
}

// Store owns the DayInfo for a single day view and answers derived
// queries. Rendering is single-threaded, but tea.Cmd bodies run on
// their own goroutines, so all access goes through the mutex.
type Store struct {
	fetcher Fetcher

	mu        sync.Mutex
	possible  []models.Habit
	completed map[string]struct{}
}

func NewStore(fetcher Fetcher) *Store {
	return &Store{
		fetcher:   fetcher,
		completed: make(map[string]struct{}),
	}
}

// Load fetches the snapshot for date and replaces the current DayInfo
// wholesale. Overlapping loads are not coalesced: whichever response
// resolves last wins, even if it arrived out of order. On failure the
// store keeps whatever it had.
func (s *Store) Load(ctx context.Context, date time.Time) error {
	info, err := s.fetcher.GetDay(ctx, date)
	if err != nil {
		return err
	}

	completed := make(map[string]struct{}, len(info.CompletedHabits))
	for _, id := range info.CompletedHabits {
		completed[id] = struct{}{}
	}

	s.mu.Lock()
	s.possible = info.PossibleHabits
	s.completed = completed
	s.mu.Unlock()
	return nil
}

// IsCompleted reports whether habitID is in the completed set. Ids not
// in possibleHabits, or queried before any load, are simply not
// completed; there is no error case.
func (s *Store) IsCompleted(habitID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.completed[habitID]
	return ok
}

// flip toggles habitID's membership in the completed set as a single
// atomic read-modify-write and returns the pre-flip state.
func (s *Store) flip(habitID string) (wasCompleted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.completed[habitID]; ok {
		delete(s.completed, habitID)
		return true
	}
	s.completed[habitID] = struct{}{}
	return false
}

// ProgressPercent returns round(100 * completed / possible), half-up,
// clamped to [0, 100]. An empty day is 0.
func (s *Store) ProgressPercent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.possible) == 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(len(s.completed)) / float64(len(s.possible))))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Snapshot returns a copy of the current DayInfo for rendering, with
// completed ids in sorted order.
func (s *Store) Snapshot() models.DayInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := models.DayInfo{
		PossibleHabits:  make([]models.Habit, len(s.possible)),
		CompletedHabits: make([]string, 0, len(s.completed)),
	}
	copy(info.PossibleHabits, s.possible)
	for id := range s.completed {
		info.CompletedHabits = append(info.CompletedHabits, id)
	}
	sort.Strings(info.CompletedHabits)
	return info
}
