package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var testDate = time.Date(2023, 1, 8, 0, 0, 0, 0, time.UTC)

func TestGetDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/day" {
			t.Errorf("expected /day, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2023-01-08" {
			t.Errorf("expected date=2023-01-08, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"completedHabits": ["a"],
			"possibleHabits": [
				{"id": "a", "title": "Drink water", "created_at": "2023-01-01T03:00:00Z"},
				{"id": "b", "title": "Read", "created_at": "2023-01-02T03:00:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	info, err := client.GetDay(context.Background(), testDate)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}

	if len(info.PossibleHabits) != 2 {
		t.Fatalf("expected 2 possible habits, got %d", len(info.PossibleHabits))
	}
	if info.PossibleHabits[0].Title != "Drink water" {
		t.Errorf("expected first habit 'Drink water', got %q", info.PossibleHabits[0].Title)
	}
	if len(info.CompletedHabits) != 1 || info.CompletedHabits[0] != "a" {
		t.Errorf("unexpected completed habits: %v", info.CompletedHabits)
	}
}

func TestGetDayNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	_, err := client.GetDay(context.Background(), testDate)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
}

func TestGetDayMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"completedHabits": `))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	_, err := client.GetDay(context.Background(), testDate)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError for malformed body, got %v", err)
	}
}

func TestGetDayInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"possibleHabits": [{"id": "", "title": "Read"}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	_, err := client.GetDay(context.Background(), testDate)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError for invalid body, got %v", err)
	}
}

func TestToggleHabit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/habits/abc/toggle" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	if err := client.ToggleHabit(context.Background(), "abc"); err != nil {
		t.Fatalf("ToggleHabit failed: %v", err)
	}
}

func TestToggleHabitNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	err := client.ToggleHabit(context.Background(), "abc")

	var togErr *ToggleError
	if !errors.As(err, &togErr) {
		t.Fatalf("expected *ToggleError, got %v", err)
	}
	if togErr.HabitID != "abc" {
		t.Errorf("expected habit id abc, got %q", togErr.HabitID)
	}
}

func TestCreateHabit(t *testing.T) {
	var payload struct {
		Title    string `json:"title"`
		WeekDays []int  `json:"weekDays"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/habits" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	err := client.CreateHabit(context.Background(), "Read", []time.Weekday{time.Monday, time.Wednesday})
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}

	if payload.Title != "Read" {
		t.Errorf("expected title Read, got %q", payload.Title)
	}
	if len(payload.WeekDays) != 2 || payload.WeekDays[0] != 1 || payload.WeekDays[1] != 3 {
		t.Errorf("unexpected weekDays: %v", payload.WeekDays)
	}
}

func TestCreateHabitRejectsEmptyTitle(t *testing.T) {
	client := New("http://localhost:0", time.Second, nil)
	if err := client.CreateHabit(context.Background(), "  ", []time.Weekday{time.Monday}); err == nil {
		t.Error("expected error for empty title, got nil")
	}
}
