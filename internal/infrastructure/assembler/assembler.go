// Package assembler writes generated projects to disk and fabricates the
// Xcode project manifest stub.
package assembler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/ports"
)

// Writer lays a project out as <output>/<Name>/<Name>/<artifact> with the
// .xcodeproj stub beside the source directory.
type Writer struct {
	Clean  bool
	Logger ports.Logger
}

// NewWriter builds an assembler. When clean is set, an existing project
// directory of the same name is removed before writing.
func NewWriter(clean bool, log ports.Logger) *Writer {
	return &Writer{Clean: clean, Logger: log}
}

// Assemble implements ports.Assembler.
func (w *Writer) Assemble(project domain.Project, outputDir string) (string, error) {
	if project.Name == "" {
		return "", fmt.Errorf("project name is empty")
	}

	projectPath := filepath.Join(outputDir, project.Name)
	if w.Clean {
		if err := os.RemoveAll(projectPath); err != nil {
			return "", fmt.Errorf("clean project dir: %w", err)
		}
	}

	srcPath := filepath.Join(projectPath, project.Name)
	if err := os.MkdirAll(srcPath, domain.DirectoryPermissions); err != nil {
		return "", fmt.Errorf("create project dir: %w", err)
	}

	for _, file := range project.Files {
		dest := filepath.Join(srcPath, file.Path)
		if err := os.MkdirAll(filepath.Dir(dest), domain.DirectoryPermissions); err != nil {
			return "", fmt.Errorf("create artifact dir %s: %w", file.Path, err)
		}
		if err := os.WriteFile(dest, []byte(file.Content), domain.FilePermissions); err != nil {
			return "", fmt.Errorf("write artifact %s: %w", file.Path, err)
		}
		if w.Logger != nil {
			w.Logger.Debug("artifact written", map[string]interface{}{
				"path": file.Path,
				"kind": string(file.Kind),
			})
		}
	}

	if err := w.writePbxproj(project, projectPath); err != nil {
		return "", err
	}
	return projectPath, nil
}

// writePbxproj fabricates a minimal project.pbxproj. A production project
// definition comes from xcodebuild tooling; this stub only has to exist so
// the build step can locate the project.
func (w *Writer) writePbxproj(project domain.Project, projectPath string) error {
	xcodeprojPath := filepath.Join(projectPath, project.Name+".xcodeproj")
	if err := os.MkdirAll(xcodeprojPath, domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("create xcodeproj dir: %w", err)
	}

	content := `// !$*UTF8*$!
{
    archiveVersion = 1;
    classes = {
    };
    objectVersion = 55;
    objects = {
    };
    rootObject = /* Project object */;
}
`
	dest := filepath.Join(xcodeprojPath, "project.pbxproj")
	if err := os.WriteFile(dest, []byte(content), domain.FilePermissions); err != nil {
		return fmt.Errorf("write pbxproj: %w", err)
	}
	return nil
}

var _ ports.Assembler = (*Writer)(nil)
