// command/command.go

// Package command wires the CLI surface: one Command per domain, registered
// into a Registry that dispatches "jupiterctl <command> <subcommand> [flags]".
package command

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/jupiterai/jupiterctl/client"
	"github.com/jupiterai/jupiterctl/config"
	"github.com/jupiterai/jupiterctl/service"
	"github.com/jupiterai/jupiterctl/util"
)

// App carries the wired dependencies every command runs against.
type App struct {
	Services *service.Services
	Auth     client.Auth
	Notifier *util.Notifier
	Cfg      *config.Configuration
	Out      io.Writer
}

// Command is one top-level CLI command.
type Command struct {
	Name    string
	Summary string
	Usage   string
	Run     func(ctx context.Context, app *App, args []string) error
}

// Registry maps command names to commands.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name] = cmd
}

// Dispatch resolves and runs one command invocation.
func (r *Registry) Dispatch(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		r.PrintUsage(app.Out)
		return fmt.Errorf("no command given")
	}
	cmd, ok := r.commands[args[0]]
	if !ok {
		r.PrintUsage(app.Out)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd.Run(ctx, app, args[1:])
}

// PrintUsage lists every registered command alphabetically.
func (r *Registry) PrintUsage(out io.Writer) {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "usage: jupiterctl <command> [args]")
	fmt.Fprintln(out)
	for _, name := range names {
		cmd := r.commands[name]
		fmt.Fprintf(out, "  %-14s %s\n", name, cmd.Summary)
	}
}

// SetupRegistry registers the full command surface.
func SetupRegistry() *Registry {
	registry := NewRegistry()

	registry.Register(loginCommand())
	registry.Register(logoutCommand())
	registry.Register(dashboardCommand())
	registry.Register(usageCommand())
	registry.Register(usersCommand())
	registry.Register(modelsCommand())
	registry.Register(assignmentsCommand())
	registry.Register(billsCommand())
	registry.Register(discountsCommand())
	registry.Register(notificationsCommand())
	registry.Register(adminCommand())

	return registry
}
