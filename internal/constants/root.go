package constants

const (
	AppName           = "habitkit"
	DefaultConfigPath = "~/.config/habitkit/habitkit.db"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the format for calendar month selection (YYYY-MM)
	MonthFormat = "2006-01"

	// Storage keys for the three persisted records
	KeyUser        = "habit_tracker_user"
	KeyHabits      = "habit_tracker_habits"
	KeyCompletions = "habit_tracker_completions"

	// Validation limits
	MinPasswordLen = 6

	// WeeklyProgressDays is the length of the trailing daily progress series
	WeeklyProgressDays = 7
)
