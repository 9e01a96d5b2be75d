package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb.
type command struct {
	usage string
	help  string
	// auth commands are listed in help only when signed in
	auth bool
	run  func(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to cmds with the remaining tokens. Unknown commands are
// reported back to the user. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, cmds map[string]command, loggedIn func() bool, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("rp %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(cmds, loggedIn()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := cmds[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			printlnFn(describeError(err))
		}
	}
}

func helpText(cmds map[string]command, loggedIn bool) string {
	names := make([]string, 0, len(cmds))
	for n, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, n := range names {
		c := cmds[n]
		fmt.Fprintf(&b, "  %-28s %s\n", c.usage, c.help)
	}
	b.WriteString("  help                         show this help\n")
	b.WriteString("  exit | quit                  leave the program")
	return b.String()
}
