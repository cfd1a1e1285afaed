package nlp

import (
	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/ports"
)

// Parser fronts the extractor with the requirements cache. The cache is an
// injected dependency rather than ambient state so the extractor stays
// testable in isolation, and so cache faults can never fail a parse: a Put
// error is logged and swallowed, a corrupt entry surfaces as a plain miss.
type Parser struct {
	Extractor ports.Extractor
	Cache     ports.RequirementsCache
	Enabled   bool
	Logger    ports.Logger
}

// Parse returns the requirements for a prompt, consulting the cache first when
// caching is enabled. The second return value reports whether the record was
// served from cache.
func (p *Parser) Parse(prompt string, opts ports.ParseOptions) (domain.Requirements, bool) {
	if !p.Enabled || p.Cache == nil {
		return p.Extractor.Extract(prompt, opts), false
	}

	if rec, ok := p.Cache.Get(prompt, opts); ok {
		return rec, true
	}

	rec := p.Extractor.Extract(prompt, opts)
	if err := p.Cache.Put(prompt, opts, rec); err != nil && p.Logger != nil {
		p.Logger.Warn("requirements cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return rec, false
}

var _ ports.Parser = (*Parser)(nil)
