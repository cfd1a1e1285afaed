// Package cache implements the two-tier parsed-requirements cache: an
// in-process map in front of one JSON file per key.
//
// The cache is a pure optimization layer. Every failure mode on the read path
// degrades to a miss and every failure on the write path is advisory, so a
// broken cache can never turn a working parse into a failing one. Entries are
// never expired or evicted; the key covers every input that affects extraction
// output, which is the whole correctness story.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/pkg/filesystem"
	"github.com/hikarudev/promptforge/internal/ports"
)

const entrySuffix = ".json"

// keySeparator delimits (prompt, framework, language) in the hash preimage.
// The prompt is arbitrary text and may itself contain NUL, but framework and
// language come from validated NUL-free enumerations, so the two trailing
// segments always parse unambiguously and distinct inputs cannot collide.
const keySeparator = "\x00"

// Store is the two-tier requirements cache rooted at a directory.
type Store struct {
	dir string
	mu  sync.Mutex
	mem map[string]domain.Requirements
}

// NewStore returns a cache rooted at dir, or under
// ~/.promptforge/cache/requirements when dir is empty.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{
		dir: dir,
		mem: make(map[string]domain.Requirements),
	}
}

// DefaultDir returns the default persisted-cache location.
func DefaultDir() string {
	return filepath.Join(filesystem.UserHomeDir(), ".promptforge", "cache", "requirements")
}

// Key computes the content address for a prompt under a parse configuration.
// Every configuration field that influences extraction output is folded in;
// omitting one would be a stale-result bug, not a performance issue.
func Key(prompt, framework, language string) string {
	sum := sha256.Sum256([]byte(prompt + keySeparator + framework + keySeparator + language))
	return hex.EncodeToString(sum[:])
}

// KeyFor implements ports.KeyDeriver.
func (s *Store) KeyFor(prompt string, opts ports.ParseOptions) string {
	return Key(prompt, opts.Framework, opts.Language)
}

// Get retrieves a cached record. The in-process tier is checked first; on a
// persisted hit the record is promoted into memory so deserialization cost is
// paid at most once per key per process.
func (s *Store) Get(prompt string, opts ports.ParseOptions) (domain.Requirements, bool) {
	key := Key(prompt, opts.Framework, opts.Language)

	s.mu.Lock()
	rec, ok := s.mem[key]
	s.mu.Unlock()
	if ok {
		return rec, true
	}

	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		return domain.Requirements{}, false
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Requirements{}, false
	}
	if rec.AppName == "" || len(rec.Features) == 0 {
		// Truncated or hand-edited entry; re-derive instead of trusting it.
		return domain.Requirements{}, false
	}

	s.mu.Lock()
	s.mem[key] = rec
	s.mu.Unlock()
	return rec, true
}

// Put writes the record through both tiers. The memory tier always succeeds;
// a persisted-tier failure is returned for logging but callers treat it as
// advisory.
func (s *Store) Put(prompt string, opts ports.ParseOptions, rec domain.Requirements) error {
	key := Key(prompt, opts.Framework, opts.Language)

	s.mu.Lock()
	s.mem[key] = rec
	s.mu.Unlock()

	if err := os.MkdirAll(s.dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.pathFor(key), data, domain.FilePermissions)
}

// Dir exposes the persisted-tier directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Clear drops both tiers.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.mem = make(map[string]domain.Requirements)
	s.mu.Unlock()
	return os.RemoveAll(s.dir)
}

// Keys lists the persisted cache keys (best-effort).
func (s *Store) Keys() ([]string, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var keys []string
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), entrySuffix) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(f.Name(), entrySuffix))
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) pathFor(key string) string {
	return filepath.Join(s.dir, key+entrySuffix)
}

var _ ports.RequirementsCache = (*Store)(nil)
var _ ports.KeyDeriver = (*Store)(nil)
