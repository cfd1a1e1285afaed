// Package pipeline orchestrates the prompt-to-project lifecycle:
// parse -> generate -> assemble -> build.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/ports"
)

// Service orchestrates one pipeline run end-to-end. Config is a validated
// snapshot with CLI overrides already applied; the parse options derived from
// it are the exact subset of configuration the cache key covers.
type Service struct {
	Config    domain.Config
	Parser    ports.Parser
	Generator ports.Generator
	Assembler ports.Assembler
	Builder   ports.Builder
	History   ports.HistoryStore
	Logger    ports.Logger
}

// Run processes a single prompt into an assembled (and optionally built)
// project. History and cache faults degrade gracefully; only assembly and
// build failures abort.
func (s *Service) Run(req domain.BuildRequest) (domain.BuildResponse, error) {
	if s.Parser == nil || s.Generator == nil || s.Assembler == nil || s.Logger == nil {
		return domain.BuildResponse{}, errors.New("pipeline.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	started := time.Now()
	var resp domain.BuildResponse

	opts := ports.ParseOptions{
		Framework: s.Config.EffectiveFramework(),
		Language:  s.Config.EffectiveLanguage(),
	}

	parseStart := time.Now()
	rec, fromCache := s.Parser.Parse(req.Prompt, opts)
	resp.Timings = append(resp.Timings, stage(domain.StageParse, parseStart))

	// The framework is stamped from configuration even on cache-restored
	// records; the cache key folds it in, so this is a no-op on hits.
	rec.UIFramework = opts.Framework
	resp.Requirements = rec
	resp.FromCache = fromCache

	s.Logger.Info("prompt parsed", map[string]interface{}{
		"app_name":   rec.AppName,
		"features":   len(rec.Features),
		"from_cache": fromCache,
	})

	generateStart := time.Now()
	project, err := s.Generator.Generate(rec)
	if err != nil {
		return resp, fmt.Errorf("generate code: %w", err)
	}
	resp.Project = project
	resp.Timings = append(resp.Timings, stage(domain.StageGenerate, generateStart))

	s.Logger.Info("code generated", map[string]interface{}{
		"files": len(project.Files),
	})

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = s.Config.EffectiveOutputDir()
	}

	assembleStart := time.Now()
	projectPath, err := s.Assembler.Assemble(project, outputDir)
	if err != nil {
		return resp, fmt.Errorf("assemble project: %w", err)
	}
	resp.ProjectPath = projectPath
	resp.Timings = append(resp.Timings, stage(domain.StageAssemble, assembleStart))

	if !req.DryRun {
		if s.Builder == nil {
			return resp, errors.New("pipeline.Service builder not configured")
		}
		buildStart := time.Now()
		appPath, err := s.Builder.Build(ctx, projectPath)
		if err != nil {
			s.record(req, resp, started)
			return resp, fmt.Errorf("build project: %w", err)
		}
		resp.AppPath = appPath
		resp.Built = true
		resp.Timings = append(resp.Timings, stage(domain.StageBuild, buildStart))
	}

	s.record(req, resp, started)
	return resp, nil
}

// record saves the run to history, best-effort.
func (s *Service) record(req domain.BuildRequest, resp domain.BuildResponse, started time.Time) {
	if s.History == nil {
		return
	}
	err := s.History.Save(domain.RunRecord{
		Timestamp:  started,
		Prompt:     req.Prompt,
		AppName:    resp.Requirements.AppName,
		Framework:  resp.Requirements.UIFramework,
		Language:   resp.Requirements.Metadata[domain.MetaLanguage],
		FromCache:  resp.FromCache,
		Built:      resp.Built,
		FileCount:  len(resp.Project.Files),
		DurationMS: time.Since(started).Milliseconds(),
	})
	if err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

func stage(name string, start time.Time) domain.StageTiming {
	return domain.StageTiming{Stage: name, DurationMS: time.Since(start).Milliseconds()}
}

var _ domain.PipelineService = (*Service)(nil)
