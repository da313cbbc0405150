package progress

import (
	"math"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/utils"
)

// Aggregation over the habit set and completion log. Everything here is a
// pure function of the state passed in; nothing reads or writes storage.

// ProgressOn returns the percentage of habits completed on the given
// calendar day, rounded to the nearest integer. An empty habit set yields
// 0 rather than dividing by zero.
func ProgressOn(habits []models.Habit, completions []models.HabitCompletion, date string) int {
	if len(habits) == 0 {
		return 0
	}

	completed := 0
	for _, c := range completions {
		if c.Date == date {
			completed++
		}
	}

	return int(math.Round(float64(completed) / float64(len(habits)) * 100))
}

// TodayProgress returns the completion percentage for today.
func TodayProgress(habits []models.Habit, completions []models.HabitCompletion) int {
	return ProgressOn(habits, completions, utils.Today())
}

// WeeklyProgressFrom returns the daily completion percentages for the
// seven days ending on end, in chronological order: the oldest day first
// and end itself last.
func WeeklyProgressFrom(habits []models.Habit, completions []models.HabitCompletion, end time.Time) []int {
	week := make([]int, 0, constants.WeeklyProgressDays)
	for i := constants.WeeklyProgressDays - 1; i >= 0; i-- {
		date := utils.DateOf(end.AddDate(0, 0, -i))
		week = append(week, ProgressOn(habits, completions, date))
	}
	return week
}

// WeeklyProgress returns the trailing seven-day percentage series ending
// today.
func WeeklyProgress(habits []models.Habit, completions []models.HabitCompletion) []int {
	return WeeklyProgressFrom(habits, completions, time.Now())
}

// MonthlyData groups the completions falling inside the given calendar
// month by their date string. Completions with unparseable dates are
// skipped.
func MonthlyData(completions []models.HabitCompletion, year int, month time.Month) map[string][]models.HabitCompletion {
	data := make(map[string][]models.HabitCompletion)

	for _, c := range completions {
		day, err := time.Parse(constants.DateFormat, c.Date)
		if err != nil {
			continue
		}
		if day.Year() == year && day.Month() == month {
			data[c.Date] = append(data[c.Date], c)
		}
	}

	return data
}
