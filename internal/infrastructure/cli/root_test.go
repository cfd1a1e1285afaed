package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestRoot(t *testing.T) (string, *bytes.Buffer, func(args ...string) error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PROMPTFORGE_DEBUG", "")

	root, err := NewRootCmd(context.Background(), Options{
		ConfigPath: filepath.Join(home, "config.yaml"),
	})
	if err != nil {
		t.Fatalf("NewRootCmd: %v", err)
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	run := func(args ...string) error {
		out.Reset()
		if args == nil {
			// A nil slice makes cobra fall back to os.Args.
			args = []string{}
		}
		root.SetArgs(args)
		return root.ExecuteContext(context.Background())
	}
	return home, &out, run
}

func TestRootBarePromptRunsGenerate(t *testing.T) {
	home, out, run := newTestRoot(t)
	outputDir := filepath.Join(home, "projects")

	// Prompt words must not be mistaken for subcommand names.
	if err := run("make", "a", "counter", "app", "--dry-run", "-o", outputDir); err != nil {
		t.Fatalf("bare prompt run failed: %v\n%s", err, out.String())
	}

	text := out.String()
	if !strings.Contains(text, "App: CounterApp") {
		t.Fatalf("generate flow not reached:\n%s", text)
	}
	if !strings.Contains(text, "Project assembled (build skipped).") {
		t.Fatalf("dry run did not finish:\n%s", text)
	}

	view := filepath.Join(outputDir, "CounterApp", "CounterApp", "ContentView.swift")
	if _, err := os.Stat(view); err != nil {
		t.Fatalf("assembled artifact missing: %v", err)
	}
}

func TestRootStillRoutesSubcommands(t *testing.T) {
	_, out, run := newTestRoot(t)

	if err := run("version"); err != nil {
		t.Fatalf("version subcommand failed: %v", err)
	}
	if !strings.Contains(out.String(), "promptforge version") {
		t.Fatalf("version command not routed:\n%s", out.String())
	}

	if err := run("cache", "list"); err != nil {
		t.Fatalf("cache list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No cached requirements.") {
		t.Fatalf("cache command not routed:\n%s", out.String())
	}
}

func TestRootNoArgsShowsHelp(t *testing.T) {
	_, out, run := newTestRoot(t)

	if err := run(); err != nil {
		t.Fatalf("bare invocation failed: %v", err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("help not shown:\n%s", out.String())
	}
}
