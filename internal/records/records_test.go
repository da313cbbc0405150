package records

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/models"
)

// memStore is an in-memory storage.Provider with switchable failure modes.
type memStore struct {
	records map[string]string
	failGet bool
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]string)}
}

func (m *memStore) Init() error  { return nil }
func (m *memStore) Load() error  { return nil }
func (m *memStore) Close() error { return nil }

func (m *memStore) Get(key string) (string, bool, error) {
	if m.failGet {
		return "", false, fmt.Errorf("simulated read failure")
	}
	value, ok := m.records[key]
	return value, ok, nil
}

func (m *memStore) Set(key, value string) error {
	if m.failSet {
		return fmt.Errorf("simulated write failure")
	}
	m.records[key] = value
	return nil
}

func (m *memStore) Remove(key string) error {
	delete(m.records, key)
	return nil
}

func (m *memStore) RemoveAll(keys ...string) error {
	for _, key := range keys {
		if err := m.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStore) GetConfigPath() string { return "mem" }

func testUser() models.User {
	return models.User{
		ID:        uuid.New().String(),
		Name:      "Ada",
		Email:     "ada@example.com",
		Password:  "hunter22",
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

func TestUserRoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	if got := svc.GetUser(); got != nil {
		t.Errorf("expected nil user on empty store, got %+v", got)
	}

	user := testUser()
	if err := svc.SaveUser(user); err != nil {
		t.Fatalf("failed to save user: %v", err)
	}

	got := svc.GetUser()
	if got == nil {
		t.Fatal("expected stored user, got nil")
	}
	if got.ID != user.ID || got.Email != user.Email || got.Password != user.Password {
		t.Errorf("round-tripped user mismatch: got %+v, want %+v", got, user)
	}

	if err := svc.RemoveUser(); err != nil {
		t.Fatalf("failed to remove user: %v", err)
	}
	if got := svc.GetUser(); got != nil {
		t.Errorf("expected nil user after removal, got %+v", got)
	}
}

func TestHabitsRoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	if habits := svc.GetHabits(); len(habits) != 0 {
		t.Errorf("expected empty habits on empty store, got %d", len(habits))
	}

	habits := []models.Habit{
		{ID: "1", Name: "Read", Frequency: models.FrequencyDaily, UserID: "u1"},
		{ID: "2", Name: "Run", Frequency: models.FrequencyWeekly, UserID: "u2"},
	}
	if err := svc.SaveHabits(habits); err != nil {
		t.Fatalf("failed to save habits: %v", err)
	}

	got := svc.GetHabits()
	if len(got) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(got))
	}
	// Insertion order is preserved
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("expected insertion order preserved, got %v", got)
	}
}

func TestCompletionsRoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	completions := []models.HabitCompletion{
		{ID: "c1", HabitID: "1", Date: "2024-01-15"},
	}
	if err := svc.SaveCompletions(completions); err != nil {
		t.Fatalf("failed to save completions: %v", err)
	}

	got := svc.GetCompletions()
	if len(got) != 1 || got[0].Date != "2024-01-15" {
		t.Errorf("round-tripped completions mismatch: %v", got)
	}
}

func TestReadFailuresAreAbsorbed(t *testing.T) {
	store := newMemStore()
	store.failGet = true
	svc := NewService(store)

	if got := svc.GetUser(); got != nil {
		t.Errorf("expected nil user on read failure, got %+v", got)
	}
	if got := svc.GetHabits(); got != nil {
		t.Errorf("expected nil habits on read failure, got %v", got)
	}
	if got := svc.GetCompletions(); got != nil {
		t.Errorf("expected nil completions on read failure, got %v", got)
	}
}

func TestCorruptRecordsAreAbsorbed(t *testing.T) {
	store := newMemStore()
	store.records["habit_tracker_user"] = "{not json"
	store.records["habit_tracker_habits"] = "[broken"
	svc := NewService(store)

	if got := svc.GetUser(); got != nil {
		t.Errorf("expected nil user for corrupt record, got %+v", got)
	}
	if got := svc.GetHabits(); got != nil {
		t.Errorf("expected nil habits for corrupt record, got %v", got)
	}
}

func TestWriteFailuresPropagate(t *testing.T) {
	store := newMemStore()
	store.failSet = true
	svc := NewService(store)

	if err := svc.SaveUser(testUser()); err == nil {
		t.Error("expected save user to fail")
	}
	if err := svc.SaveHabits(nil); err == nil {
		t.Error("expected save habits to fail")
	}
	if err := svc.SaveCompletions(nil); err == nil {
		t.Error("expected save completions to fail")
	}
}

func TestClearAllRemovesEveryRecord(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	if err := svc.SaveUser(testUser()); err != nil {
		t.Fatalf("failed to save user: %v", err)
	}
	if err := svc.SaveHabits([]models.Habit{{ID: "1"}}); err != nil {
		t.Fatalf("failed to save habits: %v", err)
	}
	if err := svc.SaveCompletions([]models.HabitCompletion{{ID: "c1"}}); err != nil {
		t.Fatalf("failed to save completions: %v", err)
	}

	if err := svc.ClearAll(); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}

	if len(store.records) != 0 {
		t.Errorf("expected empty store after clear, got %v", store.records)
	}
}
