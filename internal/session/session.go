package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/records"
)

// Manager owns the authenticated user identity for the process lifetime.
//
// The store holds exactly one user record: Register overwrites whatever was
// there, and Login only ever matches that one record. This is a
// single-account-per-device model, not a user directory. Passwords are
// stored and compared in plain text; that is the storage contract this
// client implements, not a recommendation.
type Manager struct {
	records *records.Service
	user    *models.User
}

func NewManager(rec *records.Service) *Manager {
	return &Manager{records: rec}
}

// Restore rehydrates the session from the persisted user record. Called
// once at startup; a missing or unreadable record leaves the session
// signed out.
func (m *Manager) Restore() {
	m.user = m.records.GetUser()
	if m.user != nil {
		logger.Debug("Restored session", "user", m.user.Email)
	}
}

// Register creates a new user with a fresh id, persists it as the sole
// user record, and signs the session in. Any previously registered
// account is overwritten; there is no duplicate-email check because there
// is nothing to check against.
func (m *Manager) Register(name, email, password string) (models.User, error) {
	user := models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}

	if err := m.records.SaveUser(user); err != nil {
		return models.User{}, err
	}

	m.user = &user
	logger.Info("Registered user", "email", email)
	return user, nil
}

// Login matches the given credentials against the stored user record.
// A mismatch is an ordinary outcome, not an error: it returns false.
// Store read failures are absorbed upstream and also surface as false.
func (m *Manager) Login(email, password string) bool {
	saved := m.records.GetUser()
	if saved == nil {
		return false
	}

	if saved.Email != email || saved.Password != password {
		return false
	}

	m.user = saved
	logger.Info("Logged in", "email", email)
	return true
}

// Logout clears the session and wipes all persisted state: the user
// record, the habit collection, and the completion collection. It is a
// full data reset, not merely a sign-out.
func (m *Manager) Logout() error {
	if err := m.records.ClearAll(); err != nil {
		return err
	}

	m.user = nil
	logger.Info("Logged out, all data cleared")
	return nil
}

// CurrentUser returns the active user, or nil when signed out.
func (m *Manager) CurrentUser() *models.User {
	return m.user
}
