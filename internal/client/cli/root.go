package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if s := a.sessions.Current(); s != nil {
		return fmt.Sprintf("(%s)", s.User.FullName)
	}
	return ""
}

// Root runs the command loop. Handlers print their own errors; the loop
// stays resilient and focused on I/O.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to EventHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "eventhub %s> ", a.getStatus())
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

		switch cmd {
		case "help":
			a.help()

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "verify":
			_ = a.RegisterByPhone(ctx)
		case "reset":
			_ = a.ResetPassword(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			a.whoami()

		case "l", "list":
			a.list()
		case "search":
			a.search(strings.Join(args, " "))
		case "city":
			a.city(strings.Join(args, " "))
		case "category":
			a.category(strings.Join(args, " "))
		case "show":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: show <id>")
				continue
			}
			a.show(args[0])
		case "refresh":
			if err := a.refreshCatalog(ctx); err != nil {
				fmt.Fprintln(a.out, "Refresh failed:", err)
			} else {
				fmt.Fprintln(a.out, "Catalog updated")
			}

		case "save":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: save <id>")
				continue
			}
			a.save(ctx, args[0])
		case "unsave":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: unsave <id>")
				continue
			}
			a.unsave(ctx, args[0])
		case "saved":
			a.listSaved(ctx)

		case "create":
			_ = a.CreateEvent(ctx)
		case "join":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: join <id>")
				continue
			}
			_ = a.JoinEvent(ctx, args[0])
		case "registrations":
			a.registrations(ctx)
		case "status":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: status <registration id>")
				continue
			}
			a.paymentStatus(ctx, args[0])
		case "myevents":
			a.myEvents(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Catalog:  (l)ist, search <text>, city <city|all>, category <cat|all>, show <id>, refresh")
	fmt.Fprintln(a.out, "Saved:    save <id>, unsave <id>, saved")
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Events:   create, join <id>, registrations, status <reg id>, myevents")
		fmt.Fprintln(a.out, "Account:  whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Account:  login, register, verify (register by SMS), reset, exit")
	}
}
