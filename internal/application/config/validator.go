package config

import (
	"fmt"

	"github.com/hikarudev/promptforge/internal/domain"
)

// Validate ensures config structure is consistent. Validation failures are
// fatal and surfaced before any pipeline stage runs.
func Validate(cfg domain.Config) error {
	if err := validateBuild(cfg.Build); err != nil {
		return err
	}
	if err := validateModel(cfg.Model); err != nil {
		return err
	}
	if err := validateOutput(cfg.Output); err != nil {
		return err
	}
	return validateCache(cfg.Cache)
}

func validateBuild(build domain.BuildSettings) error {
	switch build.Framework {
	case domain.FrameworkSwiftUI, domain.FrameworkUIKit:
	default:
		return fmt.Errorf("build.default_framework must be %s|%s, got %q",
			domain.FrameworkSwiftUI, domain.FrameworkUIKit, build.Framework)
	}
	switch build.Language {
	case domain.LanguageSwift, domain.LanguageObjC:
	default:
		return fmt.Errorf("build.default_language must be %s|%s, got %q",
			domain.LanguageSwift, domain.LanguageObjC, build.Language)
	}
	if build.TargetOSVersion == "" {
		return fmt.Errorf("build.target_ios_version must be set")
	}
	return nil
}

func validateModel(model domain.ModelSettings) error {
	if model.Temperature < domain.MinTemperature || model.Temperature > domain.MaxTemperature {
		return fmt.Errorf("model.temperature must be between %.1f and %.1f, got %g",
			domain.MinTemperature, domain.MaxTemperature, model.Temperature)
	}
	if model.MaxTokens <= 0 {
		return fmt.Errorf("model.max_tokens must be > 0, got %d", model.MaxTokens)
	}
	return nil
}

func validateOutput(output domain.OutputSettings) error {
	if output.Dir == "" {
		return fmt.Errorf("output.default_dir must be set")
	}
	return nil
}

func validateCache(cache domain.CacheSettings) error {
	if cache.Enabled && cache.Dir == "" {
		return fmt.Errorf("cache.dir must be set when caching is enabled")
	}
	return nil
}
