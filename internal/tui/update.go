package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"habitctl/internal/notify"
	"habitctl/internal/tui/components/checklist"
)

type dayLoadedMsg struct{}

type dayLoadFailedMsg struct {
	err error
}

type toggleDoneMsg struct {
	id string
}

type toggleFailedMsg struct {
	id  string
	err error
}

type habitCreatedMsg struct{}

type habitCreateFailedMsg struct {
	err error
}

type reminderScheduledMsg struct {
	reminder notify.Reminder
	err      error
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// loadCmd fetches the snapshot off the event loop. There is no
// cancellation: a response resolving after later edits replaces them,
// last write wins.
func (m Model) loadCmd() tea.Cmd {
	store, date := m.store, m.date
	return func() tea.Msg {
		if err := store.Load(context.Background(), date); err != nil {
			return dayLoadFailedMsg{err: err}
		}
		return dayLoadedMsg{}
	}
}

// setProgress animates the bar toward the store's current percentage.
// Pointer receiver: SetPercent records the target on the model that
// Update returns.
func (m *Model) setProgress() tea.Cmd {
	return m.progress.SetPercent(float64(m.store.ProgressPercent()) / 100)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-8, 60)
		m.checklist.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd

	case dayLoadedMsg:
		m.state = StateReady
		m.notice = ""
		m.syncChecklist()
		return m, m.setProgress()

	case dayLoadFailedMsg:
		// Terminal for this view instance; no auto-retry.
		m.log.Warn("day load failed", zap.Error(msg.err))
		m.state = StateError
		m.notice = "Could not load your habits for this day."
		return m, nil

	case checklist.ToggleMsg:
		if m.state != StateReady || m.pastDay() {
			return m, nil
		}
		// Optimistic flip, applied synchronously; the commit runs as a
		// command and failure never reverts it.
		commit := m.rec.Toggle(msg.ID)
		m.syncChecklist()
		id := msg.ID
		return m, tea.Batch(
			m.setProgress(),
			func() tea.Msg {
				if err := commit(context.Background()); err != nil {
					return toggleFailedMsg{id: id, err: err}
				}
				return toggleDoneMsg{id: id}
			},
		)

	case toggleDoneMsg:
		return m, nil

	case toggleFailedMsg:
		m.log.Warn("habit toggle failed", zap.String("habit_id", msg.id), zap.Error(msg.err))
		m.notice = "Could not update the habit status."
		return m, nil

	case checklist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitCreatedMsg:
		m.state = StateLoading
		m.notice = ""
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())

	case habitCreateFailedMsg:
		m.log.Warn("habit create failed", zap.Error(msg.err))
		m.state = StateReady
		m.notice = "Could not create the habit."
		return m, nil

	case reminderScheduledMsg:
		if msg.err != nil {
			m.log.Warn("reminder schedule failed", zap.Error(msg.err))
			m.notice = "Could not schedule a reminder."
		} else {
			m.notice = fmt.Sprintf("Reminder scheduled for %s.", msg.reminder.At.Format("15:04"))
		}
		return m, nil

	case tea.KeyMsg:
		if m.state == StateAddHabit {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			if m.state == StateReady {
				m.state = StateLoading
				m.notice = ""
				return m, tea.Batch(m.spinner.Tick, m.loadCmd())
			}
			return m, nil
		case key.Matches(msg, m.keys.Remind):
			if m.scheduler == nil {
				return m, nil
			}
			scheduler := m.scheduler
			return m, func() tea.Msg {
				r, err := notify.ScheduleCheckIn(scheduler, time.Now())
				return reminderScheduledMsg{reminder: r, err: err}
			}
		}
	}

	if m.state == StateAddHabit && m.form != nil {
		f, cmd := m.form.Update(msg)
		if form, ok := f.(*huh.Form); ok {
			m.form = form
		}

		switch m.form.State {
		case huh.StateCompleted:
			title, days := m.habitForm.Title, m.habitForm.Days
			m.form = nil
			m.habitForm = nil
			m.state = StateLoading
			svc := m.svc
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
				if err := svc.CreateHabit(context.Background(), title, days); err != nil {
					return habitCreateFailedMsg{err: err}
				}
				return habitCreatedMsg{}
			})
		case huh.StateAborted:
			m.form = nil
			m.habitForm = nil
			m.state = StateReady
			return m, nil
		}
		return m, cmd
	}

	if m.state == StateReady {
		var cmd tea.Cmd
		m.checklist, cmd = m.checklist.Update(msg)
		return m, cmd
	}
	return m, nil
}
