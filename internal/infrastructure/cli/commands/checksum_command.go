package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hikarudev/promptforge/internal/infrastructure/security"
)

// NewChecksumCommand creates the checksum command with compute/verify
// subcommands.
func NewChecksumCommand() *cobra.Command {
	checksumCmd := &cobra.Command{
		Use:   "checksum",
		Short: "Compute or verify SHA-256 checksums of build artifacts",
	}

	checksumCmd.AddCommand(
		newChecksumComputeCommand(),
		newChecksumVerifyCommand(),
	)

	return checksumCmd
}

func newChecksumComputeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compute [file]",
		Short: "Compute SHA-256 of a file and write a .sha256 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, digest, err := security.WriteSHA256File(args[0], output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\nChecksum written to %s\n", digest, args[0], written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Path for the .sha256 file (default: <file>.sha256)")
	return cmd
}

func newChecksumVerifyCommand() *cobra.Command {
	var (
		expected     string
		checksumFile string
	)

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Verify a file against an expected hash or .sha256 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (expected == "") == (checksumFile == "") {
				return fmt.Errorf("provide exactly one of --hash or --checksum-file")
			}

			var (
				ok  bool
				err error
			)
			if expected != "" {
				ok, err = security.VerifySHA256(args[0], expected)
			} else {
				ok, err = security.VerifySHA256File(args[0], checksumFile)
			}
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("checksum mismatch for %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&expected, "hash", "", "Expected SHA-256 hash")
	cmd.Flags().StringVar(&checksumFile, "checksum-file", "", "Path to a .sha256 file with the expected hash")
	return cmd
}
