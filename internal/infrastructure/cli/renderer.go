package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hikarudev/promptforge/internal/domain"
)

// RenderResponse prints the run outcome in a friendly, ASCII-only format.
func RenderResponse(out io.Writer, resp domain.BuildResponse, runErr error) {
	if resp.Requirements.AppName == "" {
		return
	}

	fmt.Fprintf(out, "App: %s (%s)\n", resp.Requirements.AppName, resp.Requirements.UIFramework)
	fmt.Fprintf(out, "Features: %s\n", strings.Join(featureNames(resp.Requirements), ", "))
	if resp.FromCache {
		fmt.Fprintln(out, "Note: requirements served from cache")
	}

	if len(resp.Project.Files) > 0 {
		fmt.Fprintln(out, "\nGenerated files:")
		for _, file := range resp.Project.Files {
			fmt.Fprintf(out, "  %s (%s)\n", file.Path, file.Kind)
		}
	}

	if resp.ProjectPath != "" {
		fmt.Fprintf(out, "\nProject: %s\n", resp.ProjectPath)
	}
	if resp.Built {
		fmt.Fprintf(out, "App bundle: %s\n", resp.AppPath)
	}

	if len(resp.Timings) > 0 {
		fmt.Fprintln(out, "\nStage timings:")
		for _, timing := range resp.Timings {
			fmt.Fprintf(out, "  %-9s %d ms\n", timing.Stage+":", timing.DurationMS)
		}
	}

	if runErr == nil {
		if resp.Built {
			fmt.Fprintln(out, "\nSuccess! Your iOS app is ready.")
		} else {
			fmt.Fprintln(out, "\nProject assembled (build skipped).")
		}
	}
}

func featureNames(req domain.Requirements) []string {
	names := make([]string, 0, len(req.Features))
	for _, feature := range req.Features {
		names = append(names, feature.Name)
	}
	return names
}
