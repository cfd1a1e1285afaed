package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the default permission for generated files (rw-r--r--)
	FilePermissions = 0o644
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// UI framework dialects the generator can emit.
const (
	FrameworkSwiftUI = "swiftui"
	FrameworkUIKit   = "uikit"
)

// Target source languages.
const (
	LanguageSwift = "swift"
	LanguageObjC  = "objective-c"
)

// Model tuning bounds enforced by config validation.
const (
	MinTemperature = 0.0
	MaxTemperature = 1.0
)

// Defaults applied when the config file omits a value.
const (
	DefaultModelName       = "gpt-4"
	DefaultModelProvider   = "openai"
	DefaultTemperature     = 0.7
	DefaultMaxTokens       = 2000
	DefaultTargetOSVersion = "15.0"
	DefaultOutputDir       = "./output"
)

// DefaultHistoryLimit is the default number of history records to display.
const DefaultHistoryLimit = 20
