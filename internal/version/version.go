// Package version carries build-time version metadata, injected via -ldflags.
package version

var (
	// Version is the semantic version of the binary.
	Version = "0.3.0"
	// Commit is the git revision the binary was built from.
	Commit = ""
	// BuildDate is the build timestamp.
	BuildDate = ""
)
