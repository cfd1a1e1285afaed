package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hikarudev/promptforge/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose(os.Args[1:])}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// isVerbose is resolved before cobra parses anything because the logger is
// wired into the container the root command is built around.
func isVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "--verbose" {
			return true
		}
	}
	return strings.EqualFold(os.Getenv("PROMPTFORGE_DEBUG"), "1") || strings.EqualFold(os.Getenv("PROMPTFORGE_DEBUG"), "true")
}
