package records

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
)

// Service reads and writes the three persisted records (user, habits,
// completions) as JSON documents through a storage.Provider.
//
// Failed reads are absorbed: they log and return a safe default (nil user,
// empty collection) so callers always have usable state. Failed writes
// propagate to the caller.
type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

func (s *Service) SaveUser(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	if err := s.store.Set(constants.KeyUser, string(data)); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// GetUser returns the single stored user record, or nil when none exists
// or the read fails.
func (s *Service) GetUser() *models.User {
	data, ok, err := s.store.Get(constants.KeyUser)
	if err != nil {
		logger.Error("Failed to read user record", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		logger.Error("Failed to parse user record", "error", err)
		return nil
	}
	return &user
}

func (s *Service) RemoveUser() error {
	if err := s.store.Remove(constants.KeyUser); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}
	return nil
}

func (s *Service) SaveHabits(habits []models.Habit) error {
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}
	if err := s.store.Set(constants.KeyHabits, string(data)); err != nil {
		return fmt.Errorf("failed to save habits: %w", err)
	}
	return nil
}

// GetHabits returns the full stored habit collection, across all users,
// in insertion order. Read failures yield an empty collection.
func (s *Service) GetHabits() []models.Habit {
	data, ok, err := s.store.Get(constants.KeyHabits)
	if err != nil {
		logger.Error("Failed to read habit collection", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var habits []models.Habit
	if err := json.Unmarshal([]byte(data), &habits); err != nil {
		logger.Error("Failed to parse habit collection", "error", err)
		return nil
	}
	return habits
}

func (s *Service) SaveCompletions(completions []models.HabitCompletion) error {
	data, err := json.Marshal(completions)
	if err != nil {
		return fmt.Errorf("failed to serialize completions: %w", err)
	}
	if err := s.store.Set(constants.KeyCompletions, string(data)); err != nil {
		return fmt.Errorf("failed to save completions: %w", err)
	}
	return nil
}

// GetCompletions returns the full stored completion collection, spanning
// all users' habits. Read failures yield an empty collection.
func (s *Service) GetCompletions() []models.HabitCompletion {
	data, ok, err := s.store.Get(constants.KeyCompletions)
	if err != nil {
		logger.Error("Failed to read completion collection", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var completions []models.HabitCompletion
	if err := json.Unmarshal([]byte(data), &completions); err != nil {
		logger.Error("Failed to parse completion collection", "error", err)
		return nil
	}
	return completions
}

// ClearAll removes all three records. Used by logout, which is a full
// data wipe rather than just a sign-out.
func (s *Service) ClearAll() error {
	err := s.store.RemoveAll(constants.KeyUser, constants.KeyHabits, constants.KeyCompletions)
	if err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}
