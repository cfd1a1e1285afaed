package domain

// ArtifactKind tags the content type of a generated file.
type ArtifactKind string

const (
	ArtifactSwift ArtifactKind = "swift"
	ArtifactPlist ArtifactKind = "plist"
)

// Artifact is one named unit of generated text output. Path is relative to the
// project source directory.
type Artifact struct {
	Path    string
	Content string
	Kind    ArtifactKind
}

// Project is the ordered artifact set produced by one generate call. Paths are
// unique within a project; ordering is deterministic and matters only for
// progress reporting. Ownership passes to the assembler, which treats the
// value as read-only.
type Project struct {
	Name     string
	Files    []Artifact
	Metadata map[string]string
}

// Project metadata keys echoed from requirements and configuration.
const (
	MetaFramework = "framework"
	MetaOSVersion = "ios_version"
)
