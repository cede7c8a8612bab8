// command/admin.go
package command

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

func adminCommand() Command {
	return Command{
		Name:    "admin",
		Summary: "cross-customer usage, billing and plan reports",
		Usage:   "admin summary [--start D --end D] | admin billing [--unpaid] | admin tiers",
		Run:     runAdmin,
	}
}

func runAdmin(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", adminCommand().Usage)
	}
	switch args[0] {
	case "summary":
		return runAdminSummary(ctx, app, args[1:])
	case "billing":
		return runAdminBilling(ctx, app, args[1:])
	case "tiers":
		return runAdminTiers(ctx, app)
	default:
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}

func runAdminSummary(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("admin summary", flag.ContinueOnError)
	start := fs.String("start", "", "window start (YYYY-MM-DD, default first of month)")
	end := fs.String("end", "", "window end (YYYY-MM-DD, default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	summary, err := app.Services.Admin.UsageSummary(ctx, *start, *end)
	if err != nil {
		return err
	}

	g := summary.GlobalSummary
	fmt.Fprintf(app.Out, "total requests:   %d\n", g.TotalRequests)
	fmt.Fprintf(app.Out, "total tokens:     %d\n", g.TotalTokens)
	fmt.Fprintf(app.Out, "total cost:       %s\n", fmtMoney(g.TotalCost))
	fmt.Fprintf(app.Out, "avg response:     %.2f ms\n", g.AvgResponseTime)
	fmt.Fprintf(app.Out, "success rate:     %.1f%%\n", g.SuccessRate*100)

	if len(summary.OrganizationStats) > 0 {
		fmt.Fprintln(app.Out)
		rows := make([][]string, 0, len(summary.OrganizationStats))
		for _, org := range summary.OrganizationStats {
			rows = append(rows, []string{
				org.OrganizationName,
				strconv.FormatInt(org.TotalRequests, 10),
				strconv.FormatInt(org.TotalTokens, 10),
				fmt.Sprintf("%.1f%%", org.SuccessRate*100),
				fmtMoney(org.TotalCost),
			})
		}
		renderTable(app.Out, []string{"organization", "requests", "tokens", "success", "cost"}, rows)
	}

	if len(summary.GlobalModelWiseSummary) > 0 {
		fmt.Fprintln(app.Out)
		rows := make([][]string, 0, len(summary.GlobalModelWiseSummary))
		for _, m := range summary.GlobalModelWiseSummary {
			rows = append(rows, []string{
				m.ModelName,
				strconv.FormatInt(m.TotalRequests, 10),
				strconv.FormatInt(m.TotalTokens, 10),
				fmtMoney(m.TotalCost),
			})
		}
		renderTable(app.Out, []string{"model", "requests", "tokens", "cost"}, rows)
	}
	return nil
}

func runAdminBilling(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("admin billing", flag.ContinueOnError)
	unpaidOnly := fs.Bool("unpaid", false, "only bills awaiting payment")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bills, err := app.Services.Admin.BillingOverview(ctx, *unpaidOnly)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			b.Organization,
			fmt.Sprintf("%04d-%02d", b.Year, b.Month),
			fmtMoney(b.TotalCost),
			b.Status,
			orDash(b.PaymentDueDate),
			orDash(b.PaidDate),
		})
	}
	renderTable(app.Out, []string{"id", "organization", "period", "total", "status", "due", "paid"}, rows)
	return nil
}

func runAdminTiers(ctx context.Context, app *App) error {
	tiers, err := app.Services.Admin.SubscriptionTiers(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(tiers))
	for _, t := range tiers {
		details, _ := jsoniter.MarshalToString(t.PlanDetails)
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			t.Name,
			fmtMoney(t.MonthlyCost),
			details,
		})
	}
	renderTable(app.Out, []string{"id", "name", "monthly", "details"}, rows)
	return nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
