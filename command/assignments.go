// command/assignments.go
package command

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	jerrors "github.com/jupiterai/jupiterctl/errors"
	"github.com/jupiterai/jupiterctl/model"
)

func assignmentsCommand() Command {
	return Command{
		Name:    "assignments",
		Summary: "manage user-model assignments",
		Usage: "assignments list [flags] | show --id N | grants --user N [--out file] | " +
			"apply --user N --grants file [--dry-run] | bulk --users 1,2 --models 3,4 [flags] | " +
			"revoke --user N --model N | stats",
		Run: runAssignments,
	}
}

func runAssignments(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", assignmentsCommand().Usage)
	}
	switch args[0] {
	case "list":
		return runAssignmentsList(ctx, app, args[1:])
	case "show":
		return runAssignmentsShow(ctx, app, args[1:])
	case "grants":
		return runAssignmentsGrants(ctx, app, args[1:])
	case "apply":
		return runAssignmentsApply(ctx, app, args[1:])
	case "bulk":
		return runAssignmentsBulk(ctx, app, args[1:])
	case "revoke":
		return runAssignmentsRevoke(ctx, app, args[1:])
	case "stats":
		return runAssignmentsStats(ctx, app)
	default:
		return fmt.Errorf("unknown assignments subcommand %q", args[0])
	}
}

func runAssignmentsList(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("assignments list", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "filter by user id")
	modelID := fs.Int64("model", 0, "filter by model id")
	activeOnly := fs.Bool("active", false, "only active assignments")
	access := fs.String("access", "", "filter by access level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var filter model.AssignmentFilter
	if *userID > 0 {
		filter.UserID = userID
	}
	if *modelID > 0 {
		filter.ModelID = modelID
	}
	if *activeOnly {
		active := true
		filter.IsActive = &active
	}
	filter.AccessLevel = *access

	assignments, err := app.Services.Assignment.List(ctx, filter)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			fmt.Sprintf("%d %s", a.UserID, a.UserEmail),
			fmt.Sprintf("%d %s", a.ModelID, a.ModelName),
			a.AccessLevel,
			fmtBool(a.IsActive),
			strconv.FormatInt(a.TotalRequestsMade, 10),
			fmtMoney(a.TotalCostIncurred),
		})
	}
	renderTable(app.Out, []string{"id", "user", "model", "access", "active", "requests", "cost"}, rows)
	return nil
}

func runAssignmentsShow(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("assignments show", flag.ContinueOnError)
	id := fs.Int64("id", 0, "assignment id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	a, err := app.Services.Assignment.Get(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "id:          %d\n", a.ID)
	fmt.Fprintf(app.Out, "user:        %d %s\n", a.UserID, a.UserEmail)
	fmt.Fprintf(app.Out, "model:       %d %s (%s)\n", a.ModelID, a.ModelName, a.ModelProvider)
	fmt.Fprintf(app.Out, "access:      %s\n", a.AccessLevel)
	fmt.Fprintf(app.Out, "active:      %s\n", fmtBool(a.IsActive))
	fmt.Fprintf(app.Out, "daily:       %s requests, %s tokens, %s cost\n",
		fmtInt64Ptr(a.DailyRequestLimit), fmtInt64Ptr(a.DailyTokenLimit), fmtFloatPtr(a.DailyCostLimit))
	fmt.Fprintf(app.Out, "monthly:     %s requests, %s tokens, %s cost\n",
		fmtInt64Ptr(a.MonthlyRequestLimit), fmtInt64Ptr(a.MonthlyTokenLimit), fmtFloatPtr(a.MonthlyCostLimit))
	fmt.Fprintf(app.Out, "discount:    %.1f%%\n", a.DiscountPercentage)
	fmt.Fprintf(app.Out, "usage:       %d requests, %d tokens, %s\n",
		a.TotalRequestsMade, a.TotalTokensUsed, fmtMoney(a.TotalCostIncurred))
	if a.ExpiresAt != nil {
		fmt.Fprintf(app.Out, "expires:     %s\n", a.ExpiresAt.Format("2006-01-02"))
	}
	if a.AssignmentReason != "" {
		fmt.Fprintf(app.Out, "reason:      %s\n", a.AssignmentReason)
	}
	return nil
}

// runAssignmentsGrants exports a user's current grants as an editable file.
// The round trip is: grants --user N --out f.toml, edit f.toml, apply.
func runAssignmentsGrants(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("assignments grants", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "user id")
	out := fs.String("out", "", "write to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == 0 {
		return fmt.Errorf("--user is required")
	}

	_, desired, err := app.Services.Assignment.UserGrants(ctx, *userID)
	if err != nil {
		return err
	}

	if *out != "" {
		if err := writeGrantFileTo(*out, desired); err != nil {
			return err
		}
		fmt.Fprintf(app.Out, "wrote %d grants to %s\n", len(desired), *out)
		return nil
	}
	return writeGrantFile(app.Out, desired)
}

func runAssignmentsApply(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("assignments apply", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "user id")
	grantsPath := fs.String("grants", "", "grant file to apply")
	dryRun := fs.Bool("dry-run", false, "print the plan without writing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == 0 || *grantsPath == "" {
		return fmt.Errorf("--user and --grants are required")
	}

	desired, err := loadGrantFile(*grantsPath)
	if err != nil {
		return err
	}

	if *dryRun {
		ops, err := app.Services.Assignment.PlanGrants(ctx, *userID, desired)
		if err != nil {
			return err
		}
		if len(ops) == 0 {
			fmt.Fprintln(app.Out, "nothing to do")
			return nil
		}
		for _, op := range ops {
			fmt.Fprintf(app.Out, "would %s\n", op)
		}
		return nil
	}

	summary, err := app.Services.Assignment.ApplyGrants(ctx, *userID, desired)
	if err != nil && !errors.Is(err, jerrors.ErrPartialApply) {
		return err
	}
	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Fprintf(app.Out, "FAILED %s: %v\n", r.Op, r.Err)
		}
	}
	fmt.Fprintf(app.Out, "%d created, %d updated, %d deactivated, %d failed\n",
		summary.Created, summary.Updated, summary.Deactivated, summary.Failed)
	return err
}

func runAssignmentsBulk(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("assignments bulk", flag.ContinueOnError)
	users := fs.String("users", "", "comma-separated user ids")
	models := fs.String("models", "", "comma-separated model ids")
	access := fs.String("access", model.AccessReadWrite, "access level for every pair")
	dailyRequests := fs.Int64("daily-requests", -1, "daily request limit")
	monthlyRequests := fs.Int64("monthly-requests", -1, "monthly request limit")
	expiresInDays := fs.Int("expires-in", 0, "days until the grants expire")
	reason := fs.String("reason", "", "assignment reason")
	if err := fs.Parse(args); err != nil {
		return err
	}

	userIDs, err := splitIDs(*users)
	if err != nil {
		return fmt.Errorf("--users: %w", err)
	}
	modelIDs, err := splitIDs(*models)
	if err != nil {
		return fmt.Errorf("--models: %w", err)
	}

	tmpl := model.AssignmentCreate{AccessLevel: *access, AssignmentReason: *reason}
	if *dailyRequests >= 0 {
		tmpl.DailyRequestLimit = dailyRequests
	}
	if *monthlyRequests >= 0 {
		tmpl.MonthlyRequestLimit = monthlyRequests
	}
	if *expiresInDays > 0 {
		tmpl.ExpiresInDays = expiresInDays
	}

	summary, err := app.Services.Assignment.BulkAssign(ctx, userIDs, modelIDs, tmpl)
	if err != nil && !errors.Is(err, jerrors.ErrPartialApply) {
		return err
	}
	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Fprintf(app.Out, "FAILED %s: %v\n", r.Op, r.Err)
		}
	}
	fmt.Fprintf(app.Out, "%d created, %d failed\n", summary.Created, summary.Failed)
	return err
}

func runAssignmentsRevoke(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("assignments revoke", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "user id")
	modelID := fs.Int64("model", 0, "model id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == 0 || *modelID == 0 {
		return fmt.Errorf("--user and --model are required")
	}

	if err := app.Services.Assignment.Revoke(ctx, *userID, *modelID); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "revoked model %d for user %d\n", *modelID, *userID)
	return nil
}

func runAssignmentsStats(ctx context.Context, app *App) error {
	stats, err := app.Services.Assignment.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "total:        %d\n", stats.TotalAssignments)
	fmt.Fprintf(app.Out, "active:       %d\n", stats.ActiveAssignments)
	fmt.Fprintf(app.Out, "expired:      %d\n", stats.ExpiredAssignments)
	fmt.Fprintf(app.Out, "users:        %d\n", stats.UsersWithAssignments)
	fmt.Fprintf(app.Out, "models:       %d\n", stats.ModelsAssigned)
	fmt.Fprintf(app.Out, "usage cost:   %s\n", fmtMoney(stats.TotalUsageCost))
	return nil
}

func splitIDs(csv string) ([]int64, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, fmt.Errorf("no ids given")
	}
	parts := strings.Split(csv, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an id", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
