package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hikarudev/promptforge/internal/app"
	"github.com/hikarudev/promptforge/internal/ports"
)

const msgNoCachedRequirements = "No cached requirements."

// NewCacheCommand creates the cache command with all subcommands.
func NewCacheCommand(container *app.Container) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the parsed-requirements cache",
	}

	cacheCmd.AddCommand(
		newCacheListCommand(container),
		newCacheClearCommand(container),
		newCacheSizeCommand(container),
		newCacheKeyCommand(container),
	)

	return cacheCmd
}

func newCacheListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List persisted cache keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCacheKeys(cmd.OutOrStdout(), container)
		},
	}
}

func newCacheClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Cache == nil {
				return fmt.Errorf("cache store unavailable")
			}
			if err := container.Cache.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			return nil
		},
	}
}

func newCacheSizeCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Show cache size",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCacheSize(cmd.OutOrStdout(), container)
		},
	}
}

func newCacheKeyCommand(container *app.Container) *cobra.Command {
	var framework, language string

	cmd := &cobra.Command{
		Use:   "key [prompt]",
		Short: "Show the cache key a prompt maps to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deriver, ok := container.Cache.(ports.KeyDeriver)
			if !ok {
				return fmt.Errorf("cache store does not expose keys")
			}
			opts := ports.ParseOptions{
				Framework: container.Config.EffectiveFramework(),
				Language:  container.Config.EffectiveLanguage(),
			}
			if framework != "" {
				opts.Framework = framework
			}
			if language != "" {
				opts.Language = language
			}
			fmt.Fprintln(cmd.OutOrStdout(), deriver.KeyFor(strings.Join(args, " "), opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&framework, "ui-framework", "", "Framework component of the key (default from config)")
	cmd.Flags().StringVar(&language, "language", "", "Language component of the key (default from config)")
	return cmd
}

func listCacheKeys(out io.Writer, container *app.Container) error {
	if container.Cache == nil {
		return fmt.Errorf("cache store unavailable")
	}
	keys, err := container.Cache.Keys()
	if err != nil {
		return fmt.Errorf("failed to list cache keys: %w", err)
	}
	if len(keys) == 0 {
		fmt.Fprintln(out, msgNoCachedRequirements)
		return nil
	}
	for _, key := range keys {
		fmt.Fprintln(out, key)
	}
	return nil
}

func showCacheSize(out io.Writer, container *app.Container) error {
	if container.Cache == nil {
		return fmt.Errorf("cache store unavailable")
	}
	dir := container.Cache.Dir()
	totalSize, err := calculateDirectorySize(dir)
	if err != nil {
		return fmt.Errorf("failed to calculate cache size: %w", err)
	}
	fmt.Fprintf(out, "Cache directory: %s\nSize: %s\n", dir, humanize.Bytes(uint64(totalSize)))
	return nil
}

// calculateDirectorySize calculates the total size of a directory.
func calculateDirectorySize(dirPath string) (int64, error) {
	var totalSize int64

	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip files that can't be accessed
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		totalSize += info.Size()
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return 0, err
	}
	return totalSize, nil
}
