package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	List(ctx context.Context, filter string) error
	Info(ctx context.Context, token string) error
	Get(ctx context.Context, token string) error
	Remove(ctx context.Context, id string) error
}

// runREPL starts a simple read-eval-print loop for the DataShare CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             - show available commands
//	  - register         - create an account
//	  - login            - authenticate
//	  - info <token>     - inspect a share link
//	  - get <token>      - download a share link
//	  - exit | quit      - leave the program
//
//	Logged in, additionally:
//	  - upload <path>    - share a file
//	  - list [all|active|expired]
//	  - rm <id>          - delete a file
//	  - logout           - log out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("datashare %s> ", statusFn()))
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

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: upload <path>, (l)ist [all|active|expired], info <token>, get <token>, rm <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, info <token>, get <token>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "upload":
			_ = a.Upload(ctx, arg)

		case "l", "list":
			_ = a.List(ctx, arg)

		case "info":
			_ = a.Info(ctx, arg)

		case "get":
			_ = a.Get(ctx, arg)

		case "rm":
			_ = a.Remove(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
