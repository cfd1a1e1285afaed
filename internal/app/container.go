package app

import (
	"context"

	appconfig "github.com/hikarudev/promptforge/internal/application/config"
	"github.com/hikarudev/promptforge/internal/application/pipeline"
	"github.com/hikarudev/promptforge/internal/codegen"
	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/infrastructure/assembler"
	"github.com/hikarudev/promptforge/internal/infrastructure/cache"
	"github.com/hikarudev/promptforge/internal/infrastructure/config"
	"github.com/hikarudev/promptforge/internal/infrastructure/history"
	"github.com/hikarudev/promptforge/internal/infrastructure/xcodebuild"
	"github.com/hikarudev/promptforge/internal/nlp"
	"github.com/hikarudev/promptforge/internal/pkg/logger"
	"github.com/hikarudev/promptforge/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Logger       ports.Logger
	Cache        ports.RequirementsCache
	History      ports.HistoryStore
}

// BuildContainer constructs the dependency graph. Configuration is loaded but
// not yet validated here, so inspection commands keep working against a
// broken config file; validation happens when a pipeline is constructed.
func BuildContainer(ctx context.Context, verbose bool, configPath string) (*Container, error) {
	cfgLoader := config.NewFileLoader(configPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Logger:       logger.NewStd(verbose),
		Cache:        cache.NewStore(cfg.Cache.Dir),
		History:      history.NewSQLiteStore(),
	}, nil
}

// NewPipeline validates cfg (fail fast, before any stage runs) and wires a
// pipeline service around it. cfg is a copy of the container config with CLI
// overrides already applied.
func (c *Container) NewPipeline(cfg domain.Config, noCache bool) (*pipeline.Service, error) {
	if err := appconfig.Validate(cfg); err != nil {
		return nil, err
	}

	store := c.Cache
	if cfg.Cache.Dir != c.Config.Cache.Dir {
		store = cache.NewStore(cfg.Cache.Dir)
	}

	parser := &nlp.Parser{
		Extractor: nlp.NewExtractor(),
		Cache:     store,
		Enabled:   cfg.IsCachingEnabled() && !noCache,
		Logger:    c.Logger,
	}

	return &pipeline.Service{
		Config:    cfg,
		Parser:    parser,
		Generator: codegen.NewGenerator(cfg),
		Assembler: assembler.NewWriter(cfg.Output.CleanBeforeBuild, c.Logger),
		Builder:   xcodebuild.NewRunner("", c.Logger),
		History:   c.History,
		Logger:    c.Logger,
	}, nil
}
