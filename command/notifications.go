// command/notifications.go
package command

import (
	"context"
	"flag"
	"fmt"
	"strconv"
)

func notificationsCommand() Command {
	return Command{
		Name:    "notifications",
		Summary: "discount notifications",
		Usage:   "notifications list [--all] | notifications read --id N | notifications read-all",
		Run:     runNotifications,
	}
}

func runNotifications(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", notificationsCommand().Usage)
	}
	switch args[0] {
	case "list":
		return runNotificationsList(ctx, app, args[1:])
	case "read":
		return runNotificationsRead(ctx, app, args[1:])
	case "read-all":
		if err := app.Services.Discount.MarkAllRead(ctx); err != nil {
			return err
		}
		fmt.Fprintln(app.Out, "all notifications marked read")
		return nil
	default:
		return fmt.Errorf("unknown notifications subcommand %q", args[0])
	}
}

func runNotificationsList(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("notifications list", flag.ContinueOnError)
	all := fs.Bool("all", false, "include already-read notifications")
	if err := fs.Parse(args); err != nil {
		return err
	}

	notifications, err := app.Services.Discount.Notifications(ctx, !*all)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(notifications))
	for _, n := range notifications {
		rows = append(rows, []string{
			strconv.FormatInt(n.ID, 10),
			n.CreatedAt.Format("2006-01-02"),
			n.NotificationType,
			n.Title,
			fmtBool(n.IsRead),
		})
	}
	renderTable(app.Out, []string{"id", "date", "type", "title", "read"}, rows)
	return nil
}

func runNotificationsRead(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("notifications read", flag.ContinueOnError)
	id := fs.Int64("id", 0, "notification id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	if err := app.Services.Discount.MarkRead(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "notification %d marked read\n", *id)
	return nil
}
