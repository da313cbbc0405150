package cli

import (
	"fmt"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/records"
	"github.com/julianstephens/habitkit/internal/session"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/tracker"
)

// Context bundles the collaborators every command runs against.
type Context struct {
	Store   storage.Provider
	Records *records.Service
	Session *session.Manager
}

// RequireUser returns the active user or an error directing the user to
// log in first.
func (c *Context) RequireUser() (models.User, error) {
	user := c.Session.CurrentUser()
	if user == nil {
		return models.User{}, fmt.Errorf("not logged in, run 'habitkit login' or 'habitkit register' first")
	}
	return *user, nil
}

// NewTracker builds a tracker scoped to the active user.
func (c *Context) NewTracker() (*tracker.Tracker, models.User, error) {
	user, err := c.RequireUser()
	if err != nil {
		return nil, models.User{}, err
	}
	return tracker.New(c.Records, user), user, nil
}
