package models

import "time"

// User is the single registered account on this device. Exactly one user
// record is persisted at a time; registering again replaces it.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
