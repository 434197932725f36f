package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habitctl/internal/dates"
	"habitctl/internal/tui"
)

type TuiCmd struct {
	Date string `help:"Date to open (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TuiCmd) Run(ctx *Context) error {
	date, err := dates.Parse(c.Date, time.Now())
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx.Client, ctx.Scheduler, ctx.Logger, date)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
