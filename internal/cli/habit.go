package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/utils"
	"github.com/julianstephens/habitkit/internal/validation"
)

// habitEmojis matches the choices offered by the habit creation form.
var habitEmojis = []string{
	"💪", "📚", "💧", "🏃", "🧘", "🥗", "😴", "🎯",
	"✍️", "🎵", "🎨", "🌱", "🧹", "💰", "📱", "🚫",
}

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List your habits."`
	Mark   HabitMarkCmd   `cmd:"" help:"Mark a habit complete for a day."`
	Unmark HabitUnmarkCmd `cmd:"" help:"Remove a habit's completion for a day."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's habit status."`
	Log    HabitLogCmd    `cmd:"" help:"Show habit history (ASCII grid)."`
}

type HabitAddCmd struct {
	Name      string `arg:"" optional:"" help:"Habit name."`
	Frequency string `help:"Cadence: daily or weekly." default:"daily"`
	Emoji     string `help:"Emoji for the habit." default:"🎯"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	t, _, err := ctx.NewTracker()
	if err != nil {
		return err
	}

	if c.Name == "" {
		var emojiOpts []huh.Option[string]
		for _, e := range habitEmojis {
			emojiOpts = append(emojiOpts, huh.NewOption(e, e))
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Habit name").
					Value(&c.Name),
				huh.NewSelect[string]().
					Title("Frequency").
					Options(
						huh.NewOption("Daily", string(models.FrequencyDaily)),
						huh.NewOption("Weekly", string(models.FrequencyWeekly)),
					).
					Value(&c.Frequency),
				huh.NewSelect[string]().
					Title("Emoji").
					Options(emojiOpts...).
					Value(&c.Emoji),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	frequency := models.Frequency(c.Frequency)
	if err := validation.ValidateHabit(c.Name, frequency); err != nil {
		return err
	}

	// Habits are addressed by name on the command line, so names must be
	// unique within the user's set.
	if _, ok := t.HabitByName(c.Name); ok {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit, err := t.AddHabit(c.Name, frequency, c.Emoji)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (%s)\n", habit.Emoji, habit.Name, habit.Frequency)
	return nil
}

type HabitListCmd struct {
	Filter string `help:"Filter: all, today, or completed." default:"all" enum:"all,today,completed"`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	t, _, err := ctx.NewTracker()
	if err != nil {
		return err
	}

	habits := t.FilteredHabits(models.FilterType(c.Filter))
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := pendingStyle.Render("[ ]")
		if t.IsCompletedToday(habit.ID) {
			status = doneStyle.Render("[x]")
		}
		fmt.Printf("%s %s %s %s\n", status, habit.Emoji, habit.Name,
			subtleStyle.Render(string(habit.Frequency)))
	}

	return nil
}

type HabitMarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitMarkCmd) Run(ctx *Context) error {
	t, _, err := ctx.NewTracker()
	if err != nil {
		return err
	}

	habit, ok := t.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}

	if t.IsCompletedOn(habit.ID, day) {
		fmt.Printf("Habit %q is already complete for %s.\n", c.Name, day)
		return nil
	}

	if err := t.MarkComplete(habit.ID, day); err != nil {
		return err
	}

	fmt.Printf("Marked habit %q complete for %s.\n", c.Name, day)
	return nil
}

type HabitUnmarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitUnmarkCmd) Run(ctx *Context) error {
	t, _, err := ctx.NewTracker()
	if err != nil {
		return err
	}

	habit, ok := t.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := resolveDay(c.Date)
	if err != nil {
		return err
	}

	if err := t.UnmarkComplete(habit.ID, day); err != nil {
		return err
	}

	fmt.Printf("Unmarked habit %q for %s.\n", c.Name, day)
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *Context) error {
	t, _, err := ctx.NewTracker()
	if err != nil {
		return err
	}

	habits := t.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := utils.Today()
	fmt.Printf("Habits for %s:\n\n", today)

	done := 0
	for _, habit := range habits {
		status := "[ ]"
		if t.IsCompletedToday(habit.ID) {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s %s\n", status, habit.Emoji, habit.Name)
	}

	fmt.Printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	t, _, err := ctx.NewTracker()
	if err != nil {
		return err
	}

	habits := t.Habits()
	if c.Habit != "" {
		habit, ok := t.HabitByName(c.Habit)
		if !ok {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habits = []models.Habit{habit}
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", startDay.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen+6*c.Days))
	fmt.Println()

	for _, habit := range habits {
		name := habit.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		for i := 0; i < c.Days; i++ {
			day := utils.DateOf(startDay.AddDate(0, 0, i))
			if t.IsCompletedOn(habit.ID, day) {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

// resolveDay turns an optional date flag into a concrete day string,
// defaulting to today.
func resolveDay(dateStr string) (string, error) {
	if dateStr == "" {
		return utils.Today(), nil
	}
	if err := validation.ValidateDate(dateStr); err != nil {
		return "", err
	}
	return dateStr, nil
}
