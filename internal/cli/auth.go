package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/validation"
)

type RegisterCmd struct {
	Name     string `help:"Your display name."`
	Email    string `help:"Email address."`
	Password string `help:"Password (entered interactively if omitted)."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	confirm := c.Password

	// Fall back to an interactive form for anything not given as a flag
	if c.Name == "" || c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&c.Name),
				huh.NewInput().
					Title("Email").
					Value(&c.Email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password),
				huh.NewInput().
					Title("Confirm password").
					EchoMode(huh.EchoModePassword).
					Value(&confirm),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.ValidateRegistration(c.Name, c.Email, c.Password, confirm); err != nil {
		return err
	}

	user, err := ctx.Session.Register(c.Name, c.Email, c.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s! Your account is ready.\n", user.Name)
	return nil
}

type LoginCmd struct {
	Email    string `help:"Email address."`
	Password string `help:"Password (entered interactively if omitted)."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&c.Email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.ValidateLogin(c.Email, c.Password); err != nil {
		return err
	}

	if !ctx.Session.Login(c.Email, c.Password) {
		return fmt.Errorf("invalid email or password")
	}

	fmt.Printf("Logged in as %s.\n", c.Email)
	return nil
}

type LogoutCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *LogoutCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Log out?").
					Description("This deletes the account, all habits, and all completion history on this device.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Session.Logout(); err != nil {
		return err
	}

	fmt.Printf("Goodbye, %s. All local data has been cleared.\n", user.Name)
	return nil
}

type ProfileCmd struct{}

func (c *ProfileCmd) Run(ctx *Context) error {
	t, user, err := ctx.NewTracker()
	if err != nil {
		return err
	}

	habits := t.Habits()
	totalCompletions := 0
	for _, h := range habits {
		totalCompletions += len(t.CompletionsFor(h.ID))
	}

	fmt.Println(titleStyle.Render(user.Name))
	fmt.Println(subtleStyle.Render(user.Email))
	fmt.Printf("Member since %s\n\n", user.CreatedAt.Format("January 2, 2006"))
	fmt.Printf("Habits:      %d\n", len(habits))
	fmt.Printf("Completions: %d\n", totalCompletions)
	return nil
}
