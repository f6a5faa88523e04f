package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ishauck/canvas-cli/internal/session"
)

func (a *App) getStatus() string {
	acc, _, ok := a.registry.Current()
	if !ok {
		return ""
	}
	name := acc.Name
	if name == "" {
		name = acc.Domain
	}
	return fmt.Sprintf("(%s@%s)", name, acc.Domain)
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Canvas CLI (type 'help' for commands)")

	// Route by registry state before entering the loop.
	switch _, route := a.selector.Resolve(); route {
	case session.RouteLogin:
		fmt.Fprintln(a.out, "No accounts yet.")
		if err := a.addAccount(ctx); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
		}
	case session.RouteChooser:
		if err := a.chooseAccount(ctx); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "canvas %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if err := a.dispatch(ctx, cmd, args); err != nil {
			if err == errQuit {
				fmt.Fprintln(a.out, "Bye!")
				return
			}
			fmt.Fprintln(a.out, "Error:", err)
		}
	}
}

// errQuit signals a clean REPL exit.
var errQuit = fmt.Errorf("quit")

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.help()
		return nil
	case "accounts":
		return a.listAccounts()
	case "add":
		return a.addAccount(ctx)
	case "remove":
		return a.removeAccount(ctx, args)
	case "switch":
		return a.switchAccount(ctx, args)
	case "whoami":
		return a.whoami(ctx)
	case "courses":
		return a.courses(ctx)
	case "cards":
		return a.cards(ctx)
	case "colors":
		return a.colors(ctx)
	case "feed":
		if len(args) > 0 && args[0] == "more" {
			return a.feedMore(ctx)
		}
		return a.feed(ctx)
	case "refresh":
		return a.refresh(ctx)
	case "theme":
		return a.theme(ctx)
	case "exit", "quit":
		return errQuit
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Available commands:")
	fmt.Fprintln(a.out, "  accounts           list registered accounts")
	fmt.Fprintln(a.out, "  add                add an account (domain + access token)")
	fmt.Fprintln(a.out, "  remove <n>         remove account number n")
	fmt.Fprintln(a.out, "  switch <n>         switch to account number n")
	fmt.Fprintln(a.out, "  whoami             show the active account's profile")
	fmt.Fprintln(a.out, "  courses            list active courses")
	fmt.Fprintln(a.out, "  cards              list dashboard cards")
	fmt.Fprintln(a.out, "  colors             list custom course colors")
	fmt.Fprintln(a.out, "  feed [more]        show the activity feed / load the next page")
	fmt.Fprintln(a.out, "  refresh            refetch everything for the active account")
	fmt.Fprintln(a.out, "  theme              show the domain's branding variables")
	fmt.Fprintln(a.out, "  exit               quit")
}
