// Package checklist renders the day's habits as a toggleable list.
package checklist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"habitctl/internal/models"
)

// ToggleMsg asks the day view to flip one habit's completion.
type ToggleMsg struct {
	ID string
}

// AddHabitMsg asks the day view to open the new-habit form.
type AddHabitMsg struct{}

type Item struct {
	Habit     models.Habit
	Completed bool
	Locked    bool
}

func (i Item) Title() string {
	if i.Completed {
		return "✓ " + i.Habit.Title
	}
	return "○ " + i.Habit.Title
}

func (i Item) Description() string {
	if i.Locked {
		return "read-only"
	}
	if i.Completed {
		return "completed"
	}
	return "not completed"
}

func (i Item) FilterValue() string { return i.Habit.Title }

type KeyMap struct {
	Toggle key.Binding
	Add    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add habit"),
		),
	}
}

type Model struct {
	list   list.Model
	keys   KeyMap
	locked bool
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is rendered globally by the day view

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add}
	}

	return Model{list: l, keys: keys}
}

// SetDay replaces the checklist with the given snapshot. locked marks a
// past day: items still render, but toggle intents are not emitted.
func (m *Model) SetDay(info models.DayInfo, locked bool) {
	m.locked = locked

	completed := make(map[string]struct{}, len(info.CompletedHabits))
	for _, id := range info.CompletedHabits {
		completed[id] = struct{}{}
	}

	items := make([]list.Item, len(info.PossibleHabits))
	for i, h := range info.PossibleHabits {
		_, done := completed[h.ID]
		items[i] = Item{Habit: h, Completed: done, Locked: locked}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if m.locked {
				// Past days are read-only.
				return m, nil
			}
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Add):
			if !m.locked {
				return m, func() tea.Msg { return AddHabitMsg{} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits tracked for this day.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
