package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hikarudev/promptforge/internal/app"
	appconfig "github.com/hikarudev/promptforge/internal/application/config"
)

// NewConfigCommand creates the config command with show/path/check subcommands.
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect promptforge configuration",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				raw, err := yaml.Marshal(container.Config)
				if err != nil {
					return fmt.Errorf("marshal config: %w", err)
				}
				cmd.OutOrStdout().Write(raw)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Validate the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := appconfig.Validate(container.Config); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Configuration OK.")
				return nil
			},
		},
	)

	return configCmd
}
