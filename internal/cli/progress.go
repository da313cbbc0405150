package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/progress"
)

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *Context) error {
	t, _, err := ctx.NewTracker()
	if err != nil {
		return err
	}

	habits := t.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habitkit habit add'.")
		return nil
	}

	completions := t.Completions()

	today := progress.TodayProgress(habits, completions)
	fmt.Println(titleStyle.Render("Today"))
	fmt.Printf("%s %s\n\n", renderBar(today, 30), percentStyle.Render(fmt.Sprintf("%d%%", today)))

	week := progress.WeeklyProgress(habits, completions)
	fmt.Println(titleStyle.Render("Last 7 days"))
	now := time.Now()
	for i, pct := range week {
		day := now.AddDate(0, 0, i-len(week)+1)
		label := day.Format("Mon")
		if i == len(week)-1 {
			label = "Today"
		}
		fmt.Printf("%-6s %s %3d%%\n", label, renderBar(pct, 20), pct)
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Habits"))
	for _, habit := range habits {
		count := len(t.CompletionsFor(habit.ID))
		fmt.Printf("%s %-24s %s\n", habit.Emoji, habit.Name,
			subtleStyle.Render(fmt.Sprintf("%d completions", count)))
	}

	return nil
}
