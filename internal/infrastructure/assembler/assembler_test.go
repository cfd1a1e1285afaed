package assembler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hikarudev/promptforge/internal/domain"
)

func sampleProject() domain.Project {
	return domain.Project{
		Name: "CounterApp",
		Files: []domain.Artifact{
			{Path: "CounterAppApp.swift", Content: "import SwiftUI\n", Kind: domain.ArtifactSwift},
			{Path: "ContentView.swift", Content: "struct ContentView {}\n", Kind: domain.ArtifactSwift},
			{Path: "Info.plist", Content: "<plist/>\n", Kind: domain.ArtifactPlist},
		},
	}
}

func TestAssembleWritesProjectLayout(t *testing.T) {
	out := t.TempDir()
	writer := NewWriter(false, nil)

	projectPath, err := writer.Assemble(sampleProject(), out)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if projectPath != filepath.Join(out, "CounterApp") {
		t.Fatalf("project path = %q", projectPath)
	}

	for _, rel := range []string{
		"CounterApp/CounterAppApp.swift",
		"CounterApp/ContentView.swift",
		"CounterApp/Info.plist",
		"CounterApp.xcodeproj/project.pbxproj",
	} {
		if _, err := os.Stat(filepath.Join(projectPath, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	content, err := os.ReadFile(filepath.Join(projectPath, "CounterApp", "ContentView.swift"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "struct ContentView {}\n" {
		t.Fatalf("artifact content = %q", content)
	}
}

func TestAssembleCleanRemovesStaleFiles(t *testing.T) {
	out := t.TempDir()
	stale := filepath.Join(out, "CounterApp", "CounterApp", "Stale.swift")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewWriter(true, nil).Assemble(sampleProject(), out); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatal("stale file survived a clean assemble")
	}
}

func TestAssembleWithoutCleanKeepsExisting(t *testing.T) {
	out := t.TempDir()
	extra := filepath.Join(out, "CounterApp", "CounterApp", "Extra.swift")
	if err := os.MkdirAll(filepath.Dir(extra), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(extra, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewWriter(false, nil).Assemble(sampleProject(), out); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if _, err := os.Stat(extra); err != nil {
		t.Fatalf("existing file removed without clean: %v", err)
	}
}

func TestAssembleRejectsUnnamedProject(t *testing.T) {
	if _, err := NewWriter(false, nil).Assemble(domain.Project{}, t.TempDir()); err == nil {
		t.Fatal("expected an error for an unnamed project")
	}
}
