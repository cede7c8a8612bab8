// command/dashboard.go
package command

import (
	"context"
	"flag"
	"fmt"
	"strconv"
)

func dashboardCommand() Command {
	return Command{
		Name:    "dashboard",
		Summary: "show today's usage, limits and unread notifications",
		Usage:   "dashboard",
		Run:     runDashboard,
	}
}

func runDashboard(ctx context.Context, app *App, _ []string) error {
	overview, err := app.Services.Usage.Overview(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "requests today:   %d\n", overview.Dashboard.TotalRequests)
	fmt.Fprintf(app.Out, "cost today:       %s\n", fmtMoney(overview.Dashboard.TotalCost))
	fmt.Fprintf(app.Out, "success rate:     %.1f%%\n", overview.Dashboard.SuccessRate*100)
	fmt.Fprintf(app.Out, "month to date:    %s (projected %s)\n",
		fmtMoney(overview.MonthToDateCost), fmtMoney(overview.ProjectedMonthCost))
	if overview.Limits.SubscriptionTier != "" {
		fmt.Fprintf(app.Out, "tier:             %s\n", overview.Limits.SubscriptionTier)
	}
	fmt.Fprintf(app.Out, "monthly limits:   %s requests, %s tokens, %s cost\n",
		fmtInt64Ptr(overview.Limits.MonthlyRequestLimit),
		fmtInt64Ptr(overview.Limits.MonthlyTokenLimit),
		fmtFloatPtr(overview.Limits.MonthlyCostLimit))
	if overview.UnreadNotifications > 0 {
		fmt.Fprintf(app.Out, "notifications:    %d unread\n", overview.UnreadNotifications)
	}

	if len(overview.Dashboard.ModelWiseSummary) > 0 {
		fmt.Fprintln(app.Out)
		rows := make([][]string, 0, len(overview.Dashboard.ModelWiseSummary))
		for _, m := range overview.Dashboard.ModelWiseSummary {
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

func usageCommand() Command {
	return Command{
		Name:    "usage",
		Summary: "usage history and monthly summaries",
		Usage:   "usage history [--days N] | usage monthly",
		Run:     runUsage,
	}
}

func runUsage(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", usageCommand().Usage)
	}
	switch args[0] {
	case "history":
		fs := flag.NewFlagSet("usage history", flag.ContinueOnError)
		days := fs.Int("days", 30, "number of days to include")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		points, err := app.Services.Usage.History(ctx, *days)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(points))
		for _, p := range points {
			rows = append(rows, []string{
				p.UsageDate,
				strconv.FormatInt(p.TotalRequests, 10),
				fmtMoney(p.TotalCost),
			})
		}
		renderTable(app.Out, []string{"date", "requests", "cost"}, rows)
		return nil
	case "monthly":
		summaries, err := app.Services.Usage.Monthly(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{
				s.Month,
				strconv.FormatInt(s.TotalRequests, 10),
				strconv.FormatInt(s.TotalTokens, 10),
				fmt.Sprintf("%.1f%%", s.SuccessRate*100),
				fmtMoney(s.TotalCost),
			})
		}
		renderTable(app.Out, []string{"month", "requests", "tokens", "success", "cost"}, rows)
		return nil
	default:
		return fmt.Errorf("unknown usage subcommand %q", args[0])
	}
}
