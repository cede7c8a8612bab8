// command/users.go
package command

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/jupiterai/jupiterctl/model"
)

func usersCommand() Command {
	return Command{
		Name:    "users",
		Summary: "administer billed user accounts",
		Usage:   "users list [--skip N] [--limit N] | users show --id N | users update --id N [flags]",
		Run:     runUsers,
	}
}

func runUsers(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", usersCommand().Usage)
	}
	switch args[0] {
	case "list":
		return runUsersList(ctx, app, args[1:])
	case "show":
		return runUsersShow(ctx, app, args[1:])
	case "update":
		return runUsersUpdate(ctx, app, args[1:])
	default:
		return fmt.Errorf("unknown users subcommand %q", args[0])
	}
}

func runUsersList(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("users list", flag.ContinueOnError)
	skip := fs.Int("skip", 0, "records to skip")
	limit := fs.Int("limit", 100, "maximum records to return")
	if err := fs.Parse(args); err != nil {
		return err
	}

	users, err := app.Services.User.ListUsers(ctx, *skip, *limit)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Email,
			u.OrganizationName,
			u.SubscriptionTier,
			fmtBool(u.IsActive),
		})
	}
	renderTable(app.Out, []string{"id", "email", "organization", "tier", "active"}, rows)
	return nil
}

func runUsersShow(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("users show", flag.ContinueOnError)
	id := fs.Int64("id", 0, "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	user, err := app.Services.User.GetUser(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "id:             %d\n", user.ID)
	fmt.Fprintf(app.Out, "email:          %s\n", user.Email)
	fmt.Fprintf(app.Out, "name:           %s\n", user.FullName)
	fmt.Fprintf(app.Out, "organization:   %s\n", user.OrganizationName)
	fmt.Fprintf(app.Out, "tier:           %s\n", user.SubscriptionTier)
	fmt.Fprintf(app.Out, "active:         %s\n", fmtBool(user.IsActive))
	fmt.Fprintf(app.Out, "email verified: %s\n", fmtBool(user.EmailVerified))
	fmt.Fprintf(app.Out, "monthly limits: %s requests, %s tokens, %s cost\n",
		fmtInt64Ptr(user.MonthlyRequestLimit),
		fmtInt64Ptr(user.MonthlyTokenLimit),
		fmtFloatPtr(user.MonthlyCostLimit))
	return nil
}

func runUsersUpdate(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("users update", flag.ContinueOnError)
	id := fs.Int64("id", 0, "user id")
	fullName := fs.String("name", "", "full name")
	org := fs.String("org", "", "organization name")
	active := fs.String("active", "", "set active state (true|false)")
	requestLimit := fs.Int64("request-limit", -1, "monthly request limit")
	tokenLimit := fs.Int64("token-limit", -1, "monthly token limit")
	costLimit := fs.Float64("cost-limit", -1, "monthly cost limit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	var update model.UserUpdate
	if *fullName != "" {
		update.FullName = fullName
	}
	if *org != "" {
		update.OrganizationName = org
	}
	if *active != "" {
		v, err := strconv.ParseBool(*active)
		if err != nil {
			return fmt.Errorf("--active must be true or false")
		}
		update.IsActive = &v
	}
	if *requestLimit >= 0 {
		update.MonthlyRequestLimit = requestLimit
	}
	if *tokenLimit >= 0 {
		update.MonthlyTokenLimit = tokenLimit
	}
	if *costLimit >= 0 {
		update.MonthlyCostLimit = costLimit
	}

	user, err := app.Services.User.UpdateUser(ctx, *id, update)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "updated user %d (%s)\n", user.ID, user.Email)
	return nil
}
