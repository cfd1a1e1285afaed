package nlp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/ports"
)

type countingExtractor struct {
	inner *Extractor
	calls int
}

func (c *countingExtractor) Extract(prompt string, opts ports.ParseOptions) domain.Requirements {
	c.calls++
	return c.inner.Extract(prompt, opts)
}

type mapCache struct {
	entries map[string]domain.Requirements
	putErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]domain.Requirements)}
}

func (m *mapCache) key(prompt string, opts ports.ParseOptions) string {
	return prompt + "|" + opts.Framework + "|" + opts.Language
}

func (m *mapCache) Get(prompt string, opts ports.ParseOptions) (domain.Requirements, bool) {
	rec, ok := m.entries[m.key(prompt, opts)]
	return rec, ok
}

func (m *mapCache) Put(prompt string, opts ports.ParseOptions, rec domain.Requirements) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[m.key(prompt, opts)] = rec
	return nil
}

func (m *mapCache) Dir() string { return "" }

func (m *mapCache) Clear() error {
	m.entries = map[string]domain.Requirements{}
	return nil
}

func (m *mapCache) Keys() ([]string, error) { return nil, nil }

func TestParseCacheTransparency(t *testing.T) {
	extractor := &countingExtractor{inner: NewExtractor()}
	parser := &Parser{Extractor: extractor, Cache: newMapCache(), Enabled: true}

	first, fromCache := parser.Parse("counter app", testOpts)
	if fromCache {
		t.Fatal("first parse unexpectedly served from cache")
	}
	second, fromCache := parser.Parse("counter app", testOpts)
	if !fromCache {
		t.Fatal("second parse did not hit the cache")
	}
	if extractor.calls != 1 {
		t.Fatalf("extractor called %d times, want 1", extractor.calls)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cached record differs from derived record:\n%s", diff)
	}
}

func TestParseKeySensitivity(t *testing.T) {
	extractor := &countingExtractor{inner: NewExtractor()}
	parser := &Parser{Extractor: extractor, Cache: newMapCache(), Enabled: true}

	parser.Parse("make an app", ports.ParseOptions{Framework: domain.FrameworkSwiftUI, Language: domain.LanguageSwift})
	_, fromCache := parser.Parse("make an app", ports.ParseOptions{Framework: domain.FrameworkUIKit, Language: domain.LanguageSwift})

	if fromCache {
		t.Fatal("different framework must not share a cache entry")
	}
	if extractor.calls != 2 {
		t.Fatalf("extractor called %d times, want 2", extractor.calls)
	}
}

func TestParseDisabledSkipsCache(t *testing.T) {
	extractor := &countingExtractor{inner: NewExtractor()}
	store := newMapCache()
	parser := &Parser{Extractor: extractor, Cache: store, Enabled: false}

	parser.Parse("counter app", testOpts)
	parser.Parse("counter app", testOpts)

	if extractor.calls != 2 {
		t.Fatalf("extractor called %d times, want 2 with caching disabled", extractor.calls)
	}
	if len(store.entries) != 0 {
		t.Fatalf("cache written despite being disabled: %d entries", len(store.entries))
	}
}

func TestParseSwallowsCacheWriteFailure(t *testing.T) {
	store := newMapCache()
	store.putErr = errors.New("disk full")
	parser := &Parser{Extractor: NewExtractor(), Cache: store, Enabled: true}

	rec, fromCache := parser.Parse("counter app", testOpts)
	if fromCache {
		t.Fatal("unexpected cache hit")
	}
	if rec.AppName != "CounterApp" {
		t.Fatalf("AppName = %q; cache write failure must not fail the parse", rec.AppName)
	}
}
