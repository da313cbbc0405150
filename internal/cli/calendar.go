package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/progress"
	"github.com/julianstephens/habitkit/internal/utils"
)

type CalendarCmd struct {
	Month string `help:"Month to show in YYYY-MM format (default: current month)."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	t, _, err := ctx.NewTracker()
	if err != nil {
		return err
	}

	year, month := time.Now().Year(), time.Now().Month()
	if c.Month != "" {
		year, month, err = utils.ParseMonth(c.Month)
		if err != nil {
			return err
		}
	}

	data := progress.MonthlyData(t.Completions(), year, month)

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s %d", month, year)))
	fmt.Println(subtleStyle.Render("Su Mo Tu We Th Fr Sa"))

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Leading blanks up to the first weekday
	for i := 0; i < int(first.Weekday()); i++ {
		fmt.Print("   ")
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		cell := fmt.Sprintf("%2d", day)
		if len(data[utils.DateOf(date)]) > 0 {
			cell = doneStyle.Render(cell)
		}
		fmt.Print(cell, " ")
		if date.Weekday() == time.Saturday {
			fmt.Println()
		}
	}
	fmt.Println()

	if len(data) == 0 {
		fmt.Println("\nNo completions this month.")
		return nil
	}

	// Per-day detail, in date order
	byID := make(map[string]models.Habit)
	for _, h := range t.Habits() {
		byID[h.ID] = h
	}

	dates := make([]string, 0, len(data))
	for date := range data {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	fmt.Println()
	for _, date := range dates {
		day, err := utils.ParseDate(date)
		if err != nil {
			continue
		}
		fmt.Println(titleStyle.Render(day.Format("Jan 2")))
		for _, completion := range data[date] {
			habit, ok := byID[completion.HabitID]
			if !ok {
				continue
			}
			fmt.Printf("  %s %s\n", habit.Emoji, habit.Name)
		}
	}

	return nil
}
