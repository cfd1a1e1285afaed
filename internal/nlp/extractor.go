// Package nlp derives structured application requirements from natural-language
// prompt text.
//
// Extraction is a deterministic rules engine over the static marker catalog,
// not learned inference: the priority and fallback behavior stay auditable and
// unit-testable. The cached parser in this package fronts the extractor with
// the content-addressable requirements cache.
package nlp

import (
	"strings"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/ports"
)

// Extractor converts prompt text into a requirements record using the marker
// catalog. Extraction is a pure function of its inputs; the parse cache
// depends on that.
type Extractor struct{}

// NewExtractor builds a new extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements ports.Extractor. It is total: any prompt, including the
// empty string, yields a record with a non-empty name and feature list.
func (e *Extractor) Extract(prompt string, opts ports.ParseOptions) domain.Requirements {
	lowered := strings.ToLower(prompt)
	return domain.Requirements{
		AppName:     deriveAppName(lowered),
		Description: prompt,
		Features:    deriveFeatures(lowered),
		UIFramework: opts.Framework,
		Metadata: map[string]string{
			domain.MetaOriginalPrompt: prompt,
			domain.MetaLanguage:       opts.Language,
		},
	}
}

// deriveAppName scans markers in priority order; the first marker with any
// trigger present names the app, independent of occurrence order in the text.
func deriveAppName(lowered string) string {
	for _, marker := range nameMarkers {
		if containsAny(lowered, marker.triggers) {
			return marker.appName
		}
	}
	return DefaultAppName
}

// deriveFeatures tests every category independently, so a prompt mentioning
// both "counter" and "weather" carries both features in catalog order.
func deriveFeatures(lowered string) []domain.Feature {
	var features []domain.Feature
	for _, category := range featureCatalog {
		if containsAny(lowered, category.triggers) {
			features = append(features, category.feature)
		}
	}
	if len(features) == 0 {
		features = append(features, genericFeature)
	}
	return features
}

func containsAny(text string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(text, trigger) {
			return true
		}
	}
	return false
}

var _ ports.Extractor = (*Extractor)(nil)
