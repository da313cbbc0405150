package tracker

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/records"
	"github.com/julianstephens/habitkit/internal/utils"
)

// Tracker owns the current user's habit set and the completion log.
//
// The store keeps one flat habit collection for all users; the tracker
// filters it by owner on load and reconstructs it on write. Completions
// are one global collection keyed by habit id and are never filtered by
// user directly: a user only reaches completions through habits they own.
//
// Mutations update in-memory state before persisting. On persist failure
// the error propagates but the in-memory state is not rolled back, which
// matches the store's read-then-write model (there are no transactions).
type Tracker struct {
	records     *records.Service
	user        models.User
	habits      []models.Habit
	completions []models.HabitCompletion
}

// New loads the stored collections and returns a tracker scoped to the
// given user. Habits belonging to other users are left in storage and
// only touched during the merge on write.
func New(rec *records.Service, user models.User) *Tracker {
	t := &Tracker{
		records: rec,
		user:    user,
	}

	for _, h := range rec.GetHabits() {
		if h.UserID == user.ID {
			t.habits = append(t.habits, h)
		}
	}
	t.completions = rec.GetCompletions()

	return t
}

// AddHabit creates a habit owned by the current user and persists the
// merged collection: every stored habit belonging to another user,
// followed by this session's habit set. The merge re-reads storage so
// other users' habits survive the write even if the session's view of
// them is stale.
func (t *Tracker) AddHabit(name string, frequency models.Frequency, emoji string) (models.Habit, error) {
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Frequency: frequency,
		Emoji:     emoji,
		CreatedAt: time.Now(),
		UserID:    t.user.ID,
	}

	t.habits = append(t.habits, habit)

	var merged []models.Habit
	for _, h := range t.records.GetHabits() {
		if h.UserID != t.user.ID {
			merged = append(merged, h)
		}
	}
	merged = append(merged, t.habits...)

	if err := t.records.SaveHabits(merged); err != nil {
		return models.Habit{}, err
	}

	logger.Debug("Added habit", "name", name, "frequency", frequency)
	return habit, nil
}

// Habits returns the current user's habits in insertion order.
func (t *Tracker) Habits() []models.Habit {
	return t.habits
}

// HabitByName returns the first habit with the given name, if any.
func (t *Tracker) HabitByName(name string) (models.Habit, bool) {
	for _, h := range t.habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// FilteredHabits returns the habit set narrowed by the given filter:
// habits completed today, habits with at least one completion ever, or
// everything.
func (t *Tracker) FilteredHabits(filter models.FilterType) []models.Habit {
	switch filter {
	case models.FilterToday:
		var out []models.Habit
		for _, h := range t.habits {
			if t.IsCompletedToday(h.ID) {
				out = append(out, h)
			}
		}
		return out
	case models.FilterCompleted:
		var out []models.Habit
		for _, h := range t.habits {
			if len(t.CompletionsFor(h.ID)) > 0 {
				out = append(out, h)
			}
		}
		return out
	default:
		return t.habits
	}
}

// MarkComplete records a completion for the habit on the given day. At
// most one completion exists per (habit, day): marking an already
// completed day is a no-op.
func (t *Tracker) MarkComplete(habitID, date string) error {
	if t.IsCompletedOn(habitID, date) {
		return nil
	}

	completion := models.HabitCompletion{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		CompletedAt: time.Now(),
		Date:        date,
	}

	t.completions = append(t.completions, completion)

	if err := t.records.SaveCompletions(t.completions); err != nil {
		return err
	}

	logger.Debug("Marked habit complete", "habit", habitID, "date", date)
	return nil
}

// UnmarkComplete removes the completion for the habit on the given day,
// if one exists. Unmarking a day with no completion is a no-op.
func (t *Tracker) UnmarkComplete(habitID, date string) error {
	kept := make([]models.HabitCompletion, 0, len(t.completions))
	for _, c := range t.completions {
		if c.HabitID == habitID && c.Date == date {
			continue
		}
		kept = append(kept, c)
	}

	t.completions = kept

	if err := t.records.SaveCompletions(t.completions); err != nil {
		return err
	}

	logger.Debug("Unmarked habit", "habit", habitID, "date", date)
	return nil
}

// IsCompletedOn reports whether the habit has a completion on the given
// calendar day.
func (t *Tracker) IsCompletedOn(habitID, date string) bool {
	for _, c := range t.completions {
		if c.HabitID == habitID && c.Date == date {
			return true
		}
	}
	return false
}

// IsCompletedToday reports whether the habit has a completion today.
func (t *Tracker) IsCompletedToday(habitID string) bool {
	return t.IsCompletedOn(habitID, utils.Today())
}

// CompletionsFor returns all completions for the habit, in storage order.
func (t *Tracker) CompletionsFor(habitID string) []models.HabitCompletion {
	var out []models.HabitCompletion
	for _, c := range t.completions {
		if c.HabitID == habitID {
			out = append(out, c)
		}
	}
	return out
}

// Completions returns the full completion log, spanning all habits.
func (t *Tracker) Completions() []models.HabitCompletion {
	return t.completions
}
