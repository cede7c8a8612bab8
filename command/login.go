// command/login.go
package command

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jupiterai/jupiterctl/session"
)

// tokenTTL mirrors the backend's access token lifetime. The session expires
// locally at the same time so a stale token is never sent.
const tokenTTL = 30 * time.Minute

func loginCommand() Command {
	return Command{
		Name:    "login",
		Summary: "authenticate and persist a session",
		Usage:   "login --username <email> [--password <password>]",
		Run:     runLogin,
	}
}

func runLogin(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("--username is required")
	}
	if *password == "" {
		fmt.Fprintf(app.Out, "password for %s: ", *username)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		*password = strings.TrimSpace(line)
	}

	token, err := app.Auth.Login(ctx, *username, *password)
	if err != nil {
		return err
	}

	now := time.Now()
	sess := &session.Session{
		Token:     token.AccessToken,
		TokenType: token.TokenType,
		Username:  *username,
		SavedAt:   now,
		ExpiresAt: now.Add(tokenTTL),
	}
	if err := sess.Save(app.Cfg.Session.File); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Fprintf(app.Out, "logged in as %s\n", *username)
	return nil
}

func logoutCommand() Command {
	return Command{
		Name:    "logout",
		Summary: "discard the persisted session",
		Usage:   "logout",
		Run: func(_ context.Context, app *App, _ []string) error {
			if err := session.Clear(app.Cfg.Session.File); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "logged out")
			return nil
		},
	}
}
