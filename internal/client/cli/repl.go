package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Donate(ctx context.Context) error
	Featured(ctx context.Context) error
	Mine(ctx context.Context) error
	NearbyDonations(ctx context.Context) error
	RequestPickup(ctx context.Context, args []string) error
	ListNGOs(ctx context.Context) error
	SearchNGOs(ctx context.Context, args []string) error
	ClosestNGOs(ctx context.Context) error
	Follow(ctx context.Context, args []string) error
	Unfollow(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	MyStats(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Unsubscribe(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers notify
// the user themselves. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("feedlink %s> ", statusFn()))
		if !scanner.Scan() {
			return
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
			if a.isLoggedIn() {
				printlnFn("Available commands: donate, featured, mine, nearby, ngos, closest, search, follow, unfollow, pickup, stats, mystats, whoami, subscribe, unsubscribe, theme, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, featured, ngos, search, stats, subscribe, theme, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "donate":
			_ = a.Donate(ctx)

		case "featured":
			_ = a.Featured(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "nearby":
			_ = a.NearbyDonations(ctx)

		case "pickup":
			_ = a.RequestPickup(ctx, args)

		case "ngos":
			_ = a.ListNGOs(ctx)

		case "closest":
			_ = a.ClosestNGOs(ctx)

		case "search":
			_ = a.SearchNGOs(ctx, args)

		case "follow":
			_ = a.Follow(ctx, args)

		case "unfollow":
			_ = a.Unfollow(ctx, args)

		case "stats":
			_ = a.Stats(ctx)

		case "mystats":
			_ = a.MyStats(ctx)

		case "subscribe":
			_ = a.Subscribe(ctx)

		case "unsubscribe":
			_ = a.Unsubscribe(ctx)

		case "theme":
			_ = a.Theme(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
