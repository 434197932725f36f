package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"habitctl/internal/dates"
	"habitctl/internal/day"
	"habitctl/internal/notify"
	"habitctl/internal/tui/components/checklist"
)

// Service is the slice of the habit API the day view needs.
type Service interface {
	day.Fetcher
	day.Toggler
	CreateHabit(ctx context.Context, title string, weekDays []time.Weekday) error
}

type SessionState int

const (
	StateLoading SessionState = iota
	StateReady
	StateError
	StateAddHabit
)

type HabitFormModel struct {
	Title string
	Days  []time.Weekday
}

// Model is the day view: one date, its snapshot, derived progress, and
// the past-day lock.
type Model struct {
	svc       Service
	store     *day.Store
	rec       *day.Reconciler
	scheduler notify.Scheduler
	log       *zap.Logger

	date  time.Time
	state SessionState

	keys      KeyMap
	help      help.Model
	spinner   spinner.Model
	progress  progress.Model
	checklist checklist.Model
	form      *huh.Form
	habitForm *HabitFormModel

	notice   string
	quitting bool
	width    int
	height   int
}

func NewModel(svc Service, scheduler notify.Scheduler, log *zap.Logger, date time.Time) Model {
	if log == nil {
		log = zap.NewNop()
	}
	store := day.NewStore(svc)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		svc:       svc,
		store:     store,
		rec:       day.NewReconciler(store, svc),
		scheduler: scheduler,
		log:       log,
		date:      date,
		state:     StateLoading,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		progress:  progress.New(progress.WithDefaultGradient()),
		checklist: checklist.New(0, 0),
	}
}

// pastDay is recomputed on every call; "now" advances while the view is
// open.
func (m Model) pastDay() bool {
	return dates.IsPast(m.date, time.Now())
}

func (m *Model) syncChecklist() {
	m.checklist.SetDay(m.store.Snapshot(), m.pastDay())
}
