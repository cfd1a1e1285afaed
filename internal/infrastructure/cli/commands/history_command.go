package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hikarudev/promptforge/internal/app"
	"github.com/hikarudev/promptforge/internal/domain"
)

// NewHistoryCommand creates the history command with all subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear generation history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryExportCommand(container),
		newHistoryClearCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(cmd.OutOrStdout(), container, limit, search)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", domain.DefaultHistoryLimit, "Maximum records to display")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by prompt or app name substring")
	return cmd
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export generation history as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.History == nil {
				return fmt.Errorf("history store unavailable")
			}
			records, err := container.History.Records(0, "")
			if err != nil {
				return fmt.Errorf("failed to retrieve history: %w", err)
			}
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("encode history: %w", err)
			}
			data = append(data, '\n')
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, domain.FilePermissions); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(records), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default: stdout)")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all generation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.History == nil {
				return fmt.Errorf("history store unavailable")
			}
			if err := container.History.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			return nil
		},
	}
}

func listHistory(out io.Writer, container *app.Container, limit int, search string) error {
	if container.History == nil {
		return fmt.Errorf("history store unavailable")
	}
	records, err := container.History.Records(limit, search)
	if err != nil {
		return fmt.Errorf("failed to retrieve history: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No generation runs recorded.")
		return nil
	}
	for _, rec := range records {
		flags := ""
		if rec.FromCache {
			flags += " [cached]"
		}
		if rec.Built {
			flags += " [built]"
		}
		fmt.Fprintf(out, "%s  %-14s %-8s %4d files  %5d ms%s\n      %s\n",
			rec.Timestamp.Format(time.RFC3339),
			rec.AppName,
			rec.Framework,
			rec.FileCount,
			rec.DurationMS,
			flags,
			rec.Prompt,
		)
	}
	return nil
}
