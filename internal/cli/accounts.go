package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ishauck/canvas-cli/internal/canvas"
	"github.com/ishauck/canvas-cli/internal/cryptox"
)

func (a *App) listAccounts() error {
	list := a.registry.List()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No accounts registered.")
		return nil
	}

	_, current, selected := a.registry.Current()
	for i, acc := range list {
		marker := " "
		if selected && i == current {
			marker = "*"
		}
		name := acc.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(a.out, "%s %d. %s  %s\n", marker, i+1, name, acc.Domain)
	}
	return nil
}

func (a *App) addAccount(ctx context.Context) error {
	domain, err := GetSimpleText(a.reader, "Canvas domain (e.g. school.instructure.com)", a.out)
	if err != nil {
		return err
	}
	if domain == "" {
		return errors.New("domain must not be empty")
	}

	token, err := GetToken(a.out)
	if err != nil {
		return err
	}
	defer cryptox.WipeBytes(token)

	acc, err := a.services.Accounts.AddAccount(ctx, domain, string(token))
	if err != nil {
		if errors.Is(err, canvas.ErrUnauthorized) {
			return errors.New("the token was rejected; check it and try again")
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", acc.Name)

	// First account becomes the active one right away.
	if a.registry.Len() == 1 {
		if err := a.registry.SetCurrent(ctx, 0); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) removeAccount(ctx context.Context, args []string) error {
	idx, err := a.accountIndexArg(args, "remove")
	if err != nil {
		return err
	}

	acc := a.registry.List()[idx]
	if err := a.services.Accounts.RemoveAccount(ctx, acc.ID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Removed %s (%s)\n", acc.Name, acc.Domain)
	return nil
}

func (a *App) switchAccount(ctx context.Context, args []string) error {
	idx, err := a.accountIndexArg(args, "switch")
	if err != nil {
		return err
	}

	if err := a.registry.SetCurrent(ctx, idx); err != nil {
		return err
	}

	acc := a.registry.List()[idx]
	// A switch behaves like a fresh open: everything refetches lazily.
	a.services.Resources.Refresh(acc.ID)
	a.services.Feed.Refresh(acc.ID)

	fmt.Fprintf(a.out, "Switched to %s (%s)\n", acc.Name, acc.Domain)
	return nil
}

// chooseAccount runs the interactive account chooser until a valid pick.
func (a *App) chooseAccount(ctx context.Context) error {
	if err := a.listAccounts(); err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader, "Choose an account", a.out)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 1 || idx > a.registry.Len() {
		return fmt.Errorf("invalid account number: %s", answer)
	}
	return a.registry.SetCurrent(ctx, idx-1)
}

func (a *App) whoami(ctx context.Context) error {
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	profile, err := a.services.Resources.Profile(ctx, sess)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>\n", profile.Name, profile.Email)
	fmt.Fprintf(a.out, "Domain: %s\n", sess.Account.Domain)
	if profile.LoginID != "" {
		fmt.Fprintf(a.out, "Login: %s\n", profile.LoginID)
	}
	return nil
}

// accountIndexArg parses a 1-based account number from args.
func (a *App) accountIndexArg(args []string, usage string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s <account number>", usage)
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > a.registry.Len() {
		return 0, fmt.Errorf("invalid account number: %s", args[0])
	}
	return idx - 1, nil
}
