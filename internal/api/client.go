// Package api is the HTTP client for the remote habit service. The
// service is the single durable store; responses are validated at this
// boundary instead of being trusted as untyped payloads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"habitctl/internal/dates"
	"habitctl/internal/models"
)

// Client talks to the habit service.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// GetDay fetches the snapshot for one calendar date. Any failure,
// including an invalid body, is a *NetworkError.
func (c *Client) GetDay(ctx context.Context, date time.Time) (models.DayInfo, error) {
	u := fmt.Sprintf("%s/day?date=%s", c.baseURL, url.QueryEscape(date.Format(dates.ISODate)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.DayInfo{}, &NetworkError{Op: "get day", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("day fetch failed", zap.Error(err))
		return models.DayInfo{}, &NetworkError{Op: "get day", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("day fetch returned non-2xx", zap.Int("status", resp.StatusCode))
		return models.DayInfo{}, &NetworkError{Op: "get day", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var info models.DayInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return models.DayInfo{}, &NetworkError{Op: "get day", Err: fmt.Errorf("decode body: %w", err)}
	}
	if err := info.Validate(); err != nil {
		return models.DayInfo{}, &NetworkError{Op: "get day", Err: fmt.Errorf("invalid body: %w", err)}
	}
	return info, nil
}

// ToggleHabit flips habitID's completion server-side. The response body
// carries no state the client reads back; any failure is a *ToggleError.
func (c *Client) ToggleHabit(ctx context.Context, habitID string) error {
	u := fmt.Sprintf("%s/habits/%s/toggle", c.baseURL, url.PathEscape(habitID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, nil)
	if err != nil {
		return &ToggleError{HabitID: habitID, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("habit toggle failed", zap.String("habit_id", habitID), zap.Error(err))
		return &ToggleError{HabitID: habitID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("habit toggle returned non-2xx", zap.String("habit_id", habitID), zap.Int("status", resp.StatusCode))
		return &ToggleError{HabitID: habitID, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	return nil
}

// CreateHabit registers a new habit recurring on the given weekdays
// (0 = Sunday, matching the service's weekDays encoding).
func (c *Client) CreateHabit(ctx context.Context, title string, weekDays []time.Weekday) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("habit title cannot be empty")
	}
	if len(weekDays) == 0 {
		return fmt.Errorf("habit needs at least one weekday")
	}

	days := make([]int, len(weekDays))
	for i, wd := range weekDays {
		days[i] = int(wd)
	}
	body, err := json.Marshal(struct {
		Title    string `json:"title"`
		WeekDays []int  `json:"weekDays"`
	}{Title: title, WeekDays: days})
	if err != nil {
		return fmt.Errorf("encode habit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/habits", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create habit: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("habit create failed", zap.Error(err))
		return fmt.Errorf("create habit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("habit create returned non-2xx", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("create habit: unexpected status %d", resp.StatusCode)
	}
	return nil
}
