package domain

import "context"

// BuildRequest captures one prompt-to-project run. Configuration overrides
// (framework, language, model, caching) are applied to the Config before the
// pipeline is constructed, so they do not appear here.
type BuildRequest struct {
	Context   context.Context
	Prompt    string
	OutputDir string
	DryRun    bool
}

// BuildResponse is the canonical response propagated back to the CLI.
type BuildResponse struct {
	Requirements Requirements
	Project      Project
	ProjectPath  string
	AppPath      string
	FromCache    bool
	Built        bool
	Timings      []StageTiming
}

// StageTiming records how long one pipeline stage took.
type StageTiming struct {
	Stage      string
	DurationMS int64
}

// Pipeline stage names used in timings and progress output.
const (
	StageParse    = "parse"
	StageGenerate = "generate"
	StageAssemble = "assemble"
	StageBuild    = "build"
)

// PipelineService exposes the use-case boundary for one prompt-to-project run.
type PipelineService interface {
	Run(BuildRequest) (BuildResponse, error)
}
