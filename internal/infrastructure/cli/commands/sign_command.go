package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hikarudev/promptforge/internal/infrastructure/security"
)

// NewSignCommand creates the sign command with sign/verify subcommands.
func NewSignCommand() *cobra.Command {
	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Create or verify GPG signatures for build artifacts",
	}

	signCmd.AddCommand(
		newSignCreateCommand(),
		newSignVerifyCommand(),
	)

	return signCmd
}

func newSignCreateCommand() *cobra.Command {
	var keyID string

	cmd := &cobra.Command{
		Use:   "create [file]",
		Short: "Create a detached ASCII-armored signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sigPath, err := security.SignDetached(cmd.Context(), args[0], keyID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signature written to %s\n", sigPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyID, "key", "k", "", "GPG key id to sign with (default: gpg default key)")
	return cmd
}

func newSignVerifyCommand() *cobra.Command {
	var sigPath string

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Verify a detached signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := sigPath
			if sig == "" {
				sig = args[0] + security.SignatureSuffix
			}
			if err := security.VerifySignature(cmd.Context(), args[0], sig); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Good signature: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&sigPath, "signature", "s", "", "Signature path (default: <file>.asc)")
	return cmd
}
