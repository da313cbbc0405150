package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/utils"
)

// Input validation for the register/login/habit forms. Failures here are
// expected outcomes surfaced to the user, not faults.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MaxHabitNameLen bounds habit names the same way the creation form does.
const MaxHabitNameLen = 50

// ValidEmail reports whether the string looks like an email address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateRegistration checks the register form inputs.
func ValidateRegistration(name, email, password, confirm string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("please fill in all fields")
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	if len(password) < constants.MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", constants.MinPasswordLen)
	}
	if !ValidEmail(strings.TrimSpace(email)) {
		return fmt.Errorf("please enter a valid email address")
	}
	return nil
}

// ValidateLogin checks the login form inputs.
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("please fill in all fields")
	}
	return nil
}

// ValidateHabit checks the habit creation inputs.
func ValidateHabit(name string, frequency models.Frequency) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("please enter a habit name")
	}
	if len([]rune(name)) > MaxHabitNameLen {
		return fmt.Errorf("habit name must be at most %d characters", MaxHabitNameLen)
	}
	if !frequency.Valid() {
		return fmt.Errorf("invalid frequency %q (expected daily or weekly)", frequency)
	}
	return nil
}

// ValidateDate checks an optional date flag, accepting the empty string.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return nil
	}
	if !utils.ValidDate(dateStr) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return nil
}
