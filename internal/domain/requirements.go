// Package domain defines core business entities and value objects for promptforge.
//
// The domain layer is independent of infrastructure concerns and represents pure
// business logic and data structures.
package domain

// Feature is a named capability bundle detected in a prompt: the UI elements it
// needs and the functionality tags it implies. Immutable once constructed.
type Feature struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	UIElements    []string `json:"ui_elements"`
	Functionality []string `json:"functionality"`
}

// Requirements is the structured description of an application derived from a
// natural-language prompt. Features is never empty: extraction substitutes a
// generic placeholder when no marker matches. The record is created once per
// parse (or restored field-for-field from cache) and not mutated afterwards,
// except that the pipeline stamps UIFramework from configuration.
type Requirements struct {
	AppName     string            `json:"app_name"`
	Description string            `json:"description"`
	Features    []Feature         `json:"features"`
	UIFramework string            `json:"ui_framework"`
	Metadata    map[string]string `json:"metadata"`
}

// Metadata keys recorded on every Requirements value.
const (
	MetaOriginalPrompt = "original_prompt"
	MetaLanguage       = "language"
)
