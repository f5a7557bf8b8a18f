package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface shared by one-shot mode and the REPL.
// The real App satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Posts(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

var errUsage = errors.New("usage")

// execute dispatches one command line. Unknown commands and missing ids
// are reported to w and returned as errUsage.
func execute(ctx context.Context, a execIface, parts []string, w io.Writer) error {
	cmd, args := parts[0], parts[1:]

	withID := func(run func(context.Context, string) error) error {
		if len(args) == 0 {
			fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
			return errUsage
		}
		return run(ctx, args[0])
	}

	switch cmd {
	case "help":
		printHelp(a, w)
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "posts", "list", "l":
		return a.Posts(ctx)
	case "show":
		return withID(a.Show)
	case "create":
		return a.Create(ctx)
	case "edit":
		return withID(a.Edit)
	case "delete":
		return withID(a.Delete)
	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
		return errUsage
	}
}

func printHelp(a execIface, w io.Writer) {
	if a.isLoggedIn() {
		fmt.Fprintln(w, "Available commands: posts, show <id>, create, edit <id>, delete <id>, logout, exit")
	} else {
		fmt.Fprintln(w, "Available commands: posts, show <id>, register, login, exit")
	}
}

// runREPL reads commands line by line until EOF, "exit" or "quit".
// Command errors are not fatal; handlers print their own notices.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	fmt.Fprintln(w, "Welcome to blogctl (type 'help' for commands)")
	for {
		fmt.Fprintf(w, "blog%s> ", statusFn())
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)

		if len(parts) > 0 {
			if parts[0] == "exit" || parts[0] == "quit" {
				fmt.Fprintln(w, "Bye!")
				return
			}
			_ = execute(ctx, a, parts, w)
		}

		if err != nil || ctx.Err() != nil {
			return
		}
	}
}
