package main

import (
	"fmt"
	"os"

	"github.com/JackWReid/skim/internal/editor"
	"github.com/JackWReid/skim/internal/terminal"
)

func main() {
	args := os.Args[1:]

	if len(args) == 1 && (args[0] == "-v" || args[0] == "--version") {
		fmt.Printf("%s %s\n", editor.Name, editor.Version)
		return
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [file]\n", editor.Name)
		os.Exit(2)
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	if err := run(path); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", editor.Name, err)
		os.Exit(terminal.ExitCode(err))
	}
}

// run owns the terminal for the lifetime of the viewer so that raw mode is
// undone on every way out, before main decides the exit status.
func run(path string) error {
	app := editor.NewApp(path)

	t, err := terminal.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer t.Restore()

	return app.Run(t)
}
