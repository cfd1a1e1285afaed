// Package xcodebuild invokes the external xcodebuild tool against an
// assembled project.
package xcodebuild

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/ports"
)

// DefaultBuildTimeout bounds one xcodebuild invocation.
const DefaultBuildTimeout = 5 * time.Minute

// Runner shells out to xcodebuild.
type Runner struct {
	Configuration string
	Timeout       time.Duration
	Logger        ports.Logger
}

// NewRunner builds a runner, configuration defaults to Debug.
func NewRunner(configuration string, log ports.Logger) *Runner {
	if configuration == "" {
		configuration = "Debug"
	}
	return &Runner{
		Configuration: configuration,
		Timeout:       DefaultBuildTimeout,
		Logger:        log,
	}
}

// Build implements ports.Builder. It returns the path to the built .app
// bundle under the project's derived-data directory.
func (r *Runner) Build(ctx context.Context, projectPath string) (string, error) {
	projectName := filepath.Base(projectPath)
	xcodeproj := filepath.Join(projectPath, projectName+".xcodeproj")
	if _, err := os.Stat(xcodeproj); err != nil {
		return "", fmt.Errorf("xcode project not found: %s", xcodeproj)
	}

	buildDir := filepath.Join(projectPath, "build")
	if err := os.MkdirAll(buildDir, domain.DirectoryPermissions); err != nil {
		return "", fmt.Errorf("create build dir: %w", err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultBuildTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "xcodebuild",
		"-project", xcodeproj,
		"-scheme", projectName,
		"-configuration", r.Configuration,
		"-derivedDataPath", buildDir,
		"build",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if r.Logger != nil {
		r.Logger.Info("running xcodebuild", map[string]interface{}{
			"project": xcodeproj,
			"scheme":  projectName,
		})
	}

	start := time.Now()
	err := cmd.Run()
	if r.Logger != nil {
		r.Logger.Debug("xcodebuild finished", map[string]interface{}{
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("build timed out after %s", timeout)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", errors.New("xcodebuild not found; install the Xcode Command Line Tools")
		}
		if r.Logger != nil {
			r.Logger.Error("xcodebuild failed", err, map[string]interface{}{
				"stderr": stderr.String(),
			})
		}
		return "", fmt.Errorf("xcodebuild: %w", err)
	}

	appPath := filepath.Join(buildDir, "Build", "Products", r.Configuration, projectName+".app")
	return appPath, nil
}

var _ ports.Builder = (*Runner)(nil)
