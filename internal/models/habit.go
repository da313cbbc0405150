package models

import "time"

// Frequency is the cadence a habit is tracked on.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Valid reports whether f is a known cadence.
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// FilterType selects which habits a listing shows.
type FilterType string

const (
	FilterAll       FilterType = "all"
	FilterToday     FilterType = "today"
	FilterCompleted FilterType = "completed"
)

// Habit represents a recurring practice to track. All users' habits are
// stored together in one collection; ownership is carried on UserID.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Frequency Frequency `json:"frequency"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
}

// HabitCompletion records that a habit was done on a calendar day. At most
// one completion exists per (HabitID, Date) pair.
type HabitCompletion struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	CompletedAt time.Time `json:"completed_at"`
	Date        string    `json:"date"` // YYYY-MM-DD format
}
