// Package security provides checksum and signing helpers for generated
// artifacts.
package security

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// ChecksumSuffix is appended to a file path to name its checksum file.
const ChecksumSuffix = ".sha256"

// ComputeSHA256 streams a file through SHA-256 and returns the hex digest.
func ComputeSHA256(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, bufio.NewReader(file)); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// VerifySHA256 compares a file's digest against an expected hex hash,
// case-insensitively.
func VerifySHA256(path, expected string) (bool, error) {
	actual, err := ComputeSHA256(path)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(actual, expected), nil
}

// VerifySHA256File checks a file against a .sha256 file. Both bare-hash and
// "hash  filename" formats are accepted.
func VerifySHA256File(path, checksumFile string) (bool, error) {
	data, err := os.ReadFile(checksumFile)
	if err != nil {
		return false, fmt.Errorf("read checksum file %s: %w", checksumFile, err)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return false, fmt.Errorf("checksum file %s is empty", checksumFile)
	}
	return VerifySHA256(path, fields[0])
}

// WriteSHA256File computes a file's digest and writes it to outputPath in
// "hash  filename" format. An empty outputPath defaults to path + ".sha256".
// Returns the path written and the digest, so callers displaying the hash do
// not stream the file a second time.
func WriteSHA256File(path, outputPath string) (string, string, error) {
	if outputPath == "" {
		outputPath = path + ChecksumSuffix
	}
	digest, err := ComputeSHA256(path)
	if err != nil {
		return "", "", err
	}
	line := fmt.Sprintf("%s  %s\n", digest, baseName(path))
	if err := os.WriteFile(outputPath, []byte(line), 0o644); err != nil {
		return "", "", fmt.Errorf("write checksum file %s: %w", outputPath, err)
	}
	return outputPath, digest, nil
}

func baseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
