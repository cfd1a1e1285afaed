package security

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// SignatureSuffix names detached armor signatures.
const SignatureSuffix = ".asc"

const gpgProbeTimeout = 5 * time.Second

// ErrGPGUnavailable is returned when the gpg binary cannot be found or run.
var ErrGPGUnavailable = errors.New("gpg is not available; install GnuPG")

// GPGAvailable probes for a working gpg binary.
func GPGAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), gpgProbeTimeout)
	defer cancel()
	return exec.CommandContext(ctx, "gpg", "--version").Run() == nil
}

// SignDetached creates an ASCII-armored detached signature for a file and
// returns the signature path. keyID selects the signing key; empty uses the
// gpg default.
func SignDetached(ctx context.Context, path, keyID string) (string, error) {
	if !GPGAvailable() {
		return "", ErrGPGUnavailable
	}

	sigPath := path + SignatureSuffix
	args := []string{"--armor", "--detach-sign", "--yes", "--output", sigPath}
	if keyID != "" {
		args = append(args, "--local-user", keyID)
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, "gpg", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("gpg sign %s: %w: %s", path, err, stderr.String())
	}
	return sigPath, nil
}

// VerifySignature checks a detached signature against a file.
func VerifySignature(ctx context.Context, path, sigPath string) error {
	if !GPGAvailable() {
		return ErrGPGUnavailable
	}

	cmd := exec.CommandContext(ctx, "gpg", "--verify", sigPath, path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gpg verify %s: %w: %s", path, err, stderr.String())
	}
	return nil
}
