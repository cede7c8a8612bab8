// command/models.go
package command

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/jupiterai/jupiterctl/model"
)

func modelsCommand() Command {
	return Command{
		Name:    "models",
		Summary: "browse the AI model catalog",
		Usage:   "models list [--all] | models show --id N",
		Run:     runModels,
	}
}

func runModels(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", modelsCommand().Usage)
	}
	switch args[0] {
	case "list":
		return runModelsList(ctx, app, args[1:])
	case "show":
		return runModelsShow(ctx, app, args[1:])
	default:
		return fmt.Errorf("unknown models subcommand %q", args[0])
	}
}

func runModelsList(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("models list", flag.ContinueOnError)
	all := fs.Bool("all", false, "include models that cannot serve requests")
	if err := fs.Parse(args); err != nil {
		return err
	}

	models, err := app.Services.Model.ListModels(ctx, !*all)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Name,
			m.Provider,
			m.Status,
			costColumn(m),
		})
	}
	renderTable(app.Out, []string{"id", "name", "provider", "status", "cost"}, rows)
	return nil
}

func costColumn(m model.AIModel) string {
	if m.CostCalculationType == model.CostByRequest {
		return fmt.Sprintf("%.4f/req", m.RequestCost)
	}
	return fmt.Sprintf("%.4f/%.4f per 1k", m.InputCostPer1KTokens, m.OutputCostPer1KTokens)
}

func runModelsShow(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("models show", flag.ContinueOnError)
	id := fs.Int64("id", 0, "model id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	m, err := app.Services.Model.GetModel(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "id:           %d\n", m.ID)
	fmt.Fprintf(app.Out, "name:         %s\n", m.Name)
	fmt.Fprintf(app.Out, "provider:     %s\n", m.Provider)
	fmt.Fprintf(app.Out, "identifier:   %s\n", m.ModelIdentifier)
	fmt.Fprintf(app.Out, "status:       %s\n", m.Status)
	fmt.Fprintf(app.Out, "billing:      %s\n", m.CostCalculationType)
	fmt.Fprintf(app.Out, "cost:         %s\n", costColumn(*m))
	fmt.Fprintf(app.Out, "max tokens:   %s\n", fmtInt64Ptr(m.MaxTokens))
	fmt.Fprintf(app.Out, "context:      %s\n", fmtInt64Ptr(m.ContextWindow))
	if m.Description != "" {
		fmt.Fprintf(app.Out, "description:  %s\n", m.Description)
	}
	return nil
}
