package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"habitctl/internal/dates"
)

type DebugCmd struct {
	DumpDay *DebugDumpDayCmd `cmd:"" help:"Dump a day snapshot as JSON."`
}

type DebugDumpDayCmd struct {
	Date string `arg:"" optional:"" help:"Date to dump (YYYY-MM-DD or 'today')." default:"today"`
}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	date, err := dates.Parse(cmd.Date, time.Now())
	if err != nil {
		return err
	}

	info, err := ctx.Client.GetDay(context.Background(), date)
	if err != nil {
		return fmt.Errorf("failed to fetch day: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal day: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
