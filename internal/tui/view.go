package tui

import (
	"github.com/charmbracelet/lipgloss"

	"habitctl/internal/dates"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateLoading:
		content = m.spinner.View() + " Loading habits..."
	case StateError:
		content = noticeStyle.Render(m.notice)
	case StateAddHabit:
		if m.form != nil {
			content = m.form.View()
		}
	case StateReady:
		content = m.viewDay()
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		"",
		content,
		"",
		m.help.View(m.keys),
	))
}

func (m Model) viewHeader() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		weekdayStyle.Render(dates.WeekdayLabel(m.date)),
		dateStyle.Render(dates.DayMonthLabel(m.date)),
	)
}

func (m Model) viewDay() string {
	sections := []string{
		m.progress.View(),
		"",
	}

	checklist := m.checklist.View()
	if m.pastDay() {
		checklist = pastStyle.Render(checklist)
	}
	sections = append(sections, checklist)

	if m.pastDay() {
		sections = append(sections, "", infoStyle.Render("You cannot edit habits of a past date."))
	}
	if m.notice != "" {
		sections = append(sections, "", noticeStyle.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
