package domain

// Rich domain model: behavior that belongs to the configuration value itself
// rather than to the loader or validator.

// IsCachingEnabled reports whether the parsed-requirements cache should be
// consulted at all.
func (c *Config) IsCachingEnabled() bool {
	return c.Cache.Enabled && c.Cache.Dir != ""
}

// EffectiveFramework returns the configured dialect with the default fallback.
func (c *Config) EffectiveFramework() string {
	if c.Build.Framework == "" {
		return FrameworkSwiftUI
	}
	return c.Build.Framework
}

// EffectiveLanguage returns the configured language with the default fallback.
func (c *Config) EffectiveLanguage() string {
	if c.Build.Language == "" {
		return LanguageSwift
	}
	return c.Build.Language
}

// EffectiveTargetOSVersion returns the target OS version with the default fallback.
func (c *Config) EffectiveTargetOSVersion() string {
	if c.Build.TargetOSVersion == "" {
		return DefaultTargetOSVersion
	}
	return c.Build.TargetOSVersion
}

// EffectiveOutputDir returns the output directory with the default fallback.
func (c *Config) EffectiveOutputDir() string {
	if c.Output.Dir == "" {
		return DefaultOutputDir
	}
	return c.Output.Dir
}
