package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hikarudev/promptforge/internal/app"
	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// generateOptions are the flag-bound inputs of one generate run. The root
// command and the generate subcommand each carry their own instance so a bare
// prompt and an explicit `generate` invocation accept the same flags.
type generateOptions struct {
	outputDir string
	framework string
	language  string
	model     string
	dryRun    bool
	noCache   bool
	timeout   time.Duration
}

// NewRootCmd wires the cobra root command. Bare arguments run the generate
// flow directly; ArbitraryArgs keeps cobra from rejecting the prompt words as
// unknown subcommands.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	rootOpts := &generateOptions{}
	root := &cobra.Command{
		Use:   "promptforge [prompt]",
		Short: "promptforge - build iOS apps from natural language",
		Long:  "promptforge turns a natural-language description of a mobile app into a generated, assembled, and optionally built Xcode project.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runGenerate(cmd, container, rootOpts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindGenerateFlags(root, rootOpts)

	root.AddCommand(newGenerateCommand(container))
	root.AddCommand(commands.NewCacheCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewChecksumCommand())
	root.AddCommand(commands.NewSignCommand())
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

func newGenerateCommand(container *app.Container) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [natural language]",
		Short: "Generate an Xcode project from a prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, container, opts, args)
		},
	}
	bindGenerateFlags(cmd, opts)
	return cmd
}

func bindGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory to save the generated project (default from config)")
	cmd.Flags().StringVar(&opts.framework, "ui-framework", "", "UI framework: swiftui or uikit (default from config)")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "Target language: swift or objective-c (default from config)")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Override model name (default from config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Generate and assemble without invoking xcodebuild")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Bypass the parsed-requirements cache")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Minute, "Overall run timeout")
}

func runGenerate(cmd *cobra.Command, container *app.Container, opts *generateOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	cfg := container.Config
	if opts.framework != "" {
		cfg.Build.Framework = opts.framework
	}
	if opts.language != "" {
		cfg.Build.Language = opts.language
	}
	if opts.model != "" {
		cfg.Model.Name = opts.model
	}

	svc, err := container.NewPipeline(cfg, opts.noCache)
	if err != nil {
		return err
	}

	resp, err := svc.Run(domain.BuildRequest{
		Context:   ctx,
		Prompt:    strings.Join(args, " "),
		OutputDir: opts.outputDir,
		DryRun:    opts.dryRun,
	})
	RenderResponse(cmd.OutOrStdout(), resp, err)
	return err
}
