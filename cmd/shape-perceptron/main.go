package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var stdout io.Writer = os.Stdout

var logLevel = new(slog.LevelVar)

// configureLogging installs a text slog handler on stderr. The level comes
// from SHAPES_LOG_LEVEL and defaults to INFO.
func configureLogging() {
	logLevel.Set(slog.LevelInfo)
	switch os.Getenv("SHAPES_LOG_LEVEL") {
	case "DEBUG":
		logLevel.Set(slog.LevelDebug)
	case "WARN":
		logLevel.Set(slog.LevelWarn)
	case "ERROR":
		logLevel.Set(slog.LevelError)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}

func newRootCommand() *commander.Command {
	return &commander.Command{
		UsageLine: "shape-perceptron <command> [options]",
		Short:     "trains a perceptron to tell rectangles from circles",
		Subcommands: []*commander.Command{
			trainCmd(),
			testImageCmd(),
		},
		Flag: *flag.NewFlagSet("shape-perceptron", flag.ExitOnError),
	}
}

func knownCommand(root *commander.Command, name string) bool {
	if name == "help" {
		return true
	}
	for _, sub := range root.Subcommands {
		if sub.Name() == name {
			return true
		}
	}
	return false
}

// execute dispatches args. Unknown commands print a diagnostic and are not
// treated as failures.
func execute(args []string) error {
	root := newRootCommand()
	if len(args) == 0 {
		fmt.Fprintln(stdout, "Unknown command: ")
		return nil
	}
	if !knownCommand(root, args[0]) {
		fmt.Fprintf(stdout, "Unknown command: %s\n", args[0])
		return nil
	}
	return root.Dispatch(args)
}

func main() {
	configureLogging()
	if err := execute(os.Args[1:]); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
