package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/pkg/filesystem"
	"github.com/hikarudev/promptforge/internal/ports"
)

// FileLoader loads YAML configuration from ~/.promptforge/config.yaml
// (overridable via PROMPTFORGE_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is seeded with
// defaults; environment overrides are applied after the file is read.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return applyEnvOverrides(cfg), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return applyEnvOverrides(hydrateDefaults(cfg)), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("PROMPTFORGE_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".promptforge", "config.yaml")
}

// Path reports where configuration is read from.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Model: domain.ModelSettings{
			Name:        domain.DefaultModelName,
			Provider:    domain.DefaultModelProvider,
			Temperature: domain.DefaultTemperature,
			MaxTokens:   domain.DefaultMaxTokens,
		},
		Build: domain.BuildSettings{
			Framework:       domain.FrameworkSwiftUI,
			Language:        domain.LanguageSwift,
			TargetOSVersion: domain.DefaultTargetOSVersion,
		},
		Output: domain.OutputSettings{
			Dir:              domain.DefaultOutputDir,
			CleanBeforeBuild: true,
		},
		Cache: domain.CacheSettings{
			Enabled: true,
			Dir:     filepath.Join(filesystem.UserHomeDir(), ".promptforge", "cache", "requirements"),
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Model.Name == "" {
		cfg.Model.Name = domain.DefaultModelName
	}
	if cfg.Model.Provider == "" {
		cfg.Model.Provider = domain.DefaultModelProvider
	}
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = domain.DefaultMaxTokens
	}
	if cfg.Build.Framework == "" {
		cfg.Build.Framework = domain.FrameworkSwiftUI
	}
	if cfg.Build.Language == "" {
		cfg.Build.Language = domain.LanguageSwift
	}
	if cfg.Build.TargetOSVersion == "" {
		cfg.Build.TargetOSVersion = domain.DefaultTargetOSVersion
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = domain.DefaultOutputDir
	}
	if cfg.Cache.Enabled && cfg.Cache.Dir == "" {
		cfg.Cache.Dir = filepath.Join(filesystem.UserHomeDir(), ".promptforge", "cache", "requirements")
	}
	return cfg
}

func applyEnvOverrides(cfg domain.Config) domain.Config {
	if model := os.Getenv("PROMPTFORGE_MODEL"); model != "" {
		cfg.Model.Name = model
	}
	if dir := os.Getenv("PROMPTFORGE_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
	if raw := os.Getenv("PROMPTFORGE_CACHE"); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			cfg.Cache.Enabled = enabled
		}
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
