// command/bills.go
package command

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	helper_util "github.com/jupiterai/jupiterctl/util/helper"
)

func billsCommand() Command {
	return Command{
		Name:    "bills",
		Summary: "monthly bills and payment",
		Usage:   "bills list [--unpaid] | bills pay --id N",
		Run:     runBills,
	}
}

func runBills(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", billsCommand().Usage)
	}
	switch args[0] {
	case "list":
		return runBillsList(ctx, app, args[1:])
	case "pay":
		return runBillsPay(ctx, app, args[1:])
	default:
		return fmt.Errorf("unknown bills subcommand %q", args[0])
	}
}

func runBillsList(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("bills list", flag.ContinueOnError)
	unpaidOnly := fs.Bool("unpaid", false, "only bills awaiting payment")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list := app.Services.Billing.Bills
	if *unpaidOnly {
		list = app.Services.Billing.UnpaidBills
	}
	bills, err := list(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			fmt.Sprintf("%04d-%02d", b.Year, b.Month),
			strconv.FormatInt(b.TotalRequests, 10),
			fmtMoney(b.UsageCost),
			fmtMoney(b.TotalDiscount),
			fmtMoney(b.TotalCost),
			helper_util.FormatDate(b.PaymentDueDate),
			b.Status,
		})
	}
	renderTable(app.Out, []string{"id", "period", "requests", "usage", "discount", "total", "due", "status"}, rows)
	return nil
}

func runBillsPay(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("bills pay", flag.ContinueOnError)
	id := fs.Int64("id", 0, "bill id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	session, err := app.Services.Billing.Pay(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.Out, "open this URL to complete payment:")
	fmt.Fprintln(app.Out, session.CheckoutURL)
	return nil
}
