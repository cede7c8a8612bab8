// command/discounts.go
package command

import (
	"context"
	"flag"
	"fmt"
	"strconv"
)

func discountsCommand() Command {
	return Command{
		Name:    "discounts",
		Summary: "discount tiers and enrollment",
		Usage:   "discounts list | discounts mine | discounts enroll --id N",
		Run:     runDiscounts,
	}
}

func runDiscounts(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", discountsCommand().Usage)
	}
	switch args[0] {
	case "list":
		return runDiscountsList(ctx, app)
	case "mine":
		return runDiscountsMine(ctx, app)
	case "enroll":
		return runDiscountsEnroll(ctx, app, args[1:])
	default:
		return fmt.Errorf("unknown discounts subcommand %q", args[0])
	}
}

func runDiscountsList(ctx context.Context, app *App) error {
	offers, err := app.Services.Discount.Available(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(offers))
	for _, o := range offers {
		progress := fmt.Sprintf("%.0f%%", o.Progress.Percent)
		if !o.Progress.Reached {
			progress = fmt.Sprintf("%.0f%% (%d to go)", o.Progress.Percent, o.Progress.Remaining)
		}
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			o.Name,
			fmt.Sprintf("%.0f%%", o.DiscountPercentage),
			strconv.FormatInt(o.MinRequests, 10),
			progress,
			fmtBool(o.CanEnroll),
		})
	}
	renderTable(app.Out, []string{"id", "name", "discount", "min requests", "progress", "eligible"}, rows)
	return nil
}

func runDiscountsMine(ctx context.Context, app *App) error {
	enrolled, err := app.Services.Discount.Mine(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(enrolled))
	for _, e := range enrolled {
		validUntil := "-"
		if e.ValidUntil != nil {
			validUntil = e.ValidUntil.Format("2006-01-02")
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.DiscountName,
			fmt.Sprintf("%.0f%%", e.DiscountPercentage),
			e.EnrolledAt.Format("2006-01-02"),
			validUntil,
			fmtBool(e.IsActive),
		})
	}
	renderTable(app.Out, []string{"id", "name", "discount", "enrolled", "valid until", "active"}, rows)
	return nil
}

func runDiscountsEnroll(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("discounts enroll", flag.ContinueOnError)
	id := fs.Int64("id", 0, "discount id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	discount, err := app.Services.Discount.Enroll(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "enrolled in %q (%.0f%% off)\n", discount.Name, discount.DiscountPercentage)
	return nil
}
