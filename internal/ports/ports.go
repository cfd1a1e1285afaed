// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like the filesystem cache, the SQLite history store, or the
// CLI framework.
package ports

import (
	"context"

	"github.com/hikarudev/promptforge/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.promptforge/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ParseOptions is the subset of configuration that affects extraction output.
// Every field here must be folded into the cache key.
type ParseOptions struct {
	Framework string
	Language  string
}

// Extractor turns raw prompt text into a requirements record. Implementations
// must be total and deterministic: every input string, including the empty
// string, yields a valid record with a non-empty feature list.
type Extractor interface {
	Extract(prompt string, opts ParseOptions) domain.Requirements
}

// Parser is the cached front of the extractor.
type Parser interface {
	Parse(prompt string, opts ParseOptions) (rec domain.Requirements, fromCache bool)
}

// KeyDeriver is implemented by caches whose keys are observable, used by the
// CLI to report where a given prompt would land.
type KeyDeriver interface {
	KeyFor(prompt string, opts ParseOptions) string
}

// RequirementsCache is the two-tier content-addressable store in front of the
// extractor. Key derivation over (prompt, framework, language) belongs to the
// implementation. Get reports absence rather than failure for corrupt entries;
// Put errors are advisory and must never fail a parse.
type RequirementsCache interface {
	Get(prompt string, opts ParseOptions) (domain.Requirements, bool)
	Put(prompt string, opts ParseOptions, rec domain.Requirements) error
	Dir() string
	Clear() error
	Keys() ([]string, error)
}

// Generator turns a requirements record into an ordered project artifact set.
// Identical records produce byte-identical artifact sets.
type Generator interface {
	Generate(req domain.Requirements) (domain.Project, error)
}

// Assembler writes a generated project to disk and fabricates the platform
// project manifest. It treats the project value as read-only.
type Assembler interface {
	Assemble(project domain.Project, outputDir string) (projectPath string, err error)
}

// Builder invokes the external build tool against an assembled project.
type Builder interface {
	Build(ctx context.Context, projectPath string) (appPath string, err error)
}

// HistoryStore persists one record per pipeline run.
type HistoryStore interface {
	Save(record domain.RunRecord) error
	Records(limit int, search string) ([]domain.RunRecord, error)
	Clear() error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
