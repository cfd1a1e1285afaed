package domain

// Config mirrors ~/.promptforge/config.yaml.
type Config struct {
	ConfigFormatVersion string         `yaml:"config_format_version"`
	Model               ModelSettings  `yaml:"model"`
	Build               BuildSettings  `yaml:"build"`
	Output              OutputSettings `yaml:"output"`
	Cache               CacheSettings  `yaml:"cache"`
}

// ModelSettings describe the model the parser is nominally tuned for. The
// bundled extractor is deterministic, but the tuning values are validated and
// folded into provenance metadata so a future hosted provider slots in.
type ModelSettings struct {
	Name        string  `yaml:"name"`
	Provider    string  `yaml:"provider"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// BuildSettings select the emitted dialect and target platform.
type BuildSettings struct {
	Framework       string `yaml:"default_framework"`
	Language        string `yaml:"default_language"`
	TargetOSVersion string `yaml:"target_ios_version"`
}

// OutputSettings control where assembled projects land.
type OutputSettings struct {
	Dir              string `yaml:"default_dir"`
	CleanBeforeBuild bool   `yaml:"clean_before_build"`
}

// CacheSettings configure the parsed-requirements cache.
type CacheSettings struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}
