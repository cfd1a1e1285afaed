package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/pkg/filesystem"
	"github.com/hikarudev/promptforge/internal/ports"
)

// SQLiteStore persists generation history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.promptforge/history/runs.db
// database. On any open or init failure the store degrades to the JSONL
// file tier.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(filesystem.UserHomeDir(), ".promptforge", "history", "runs.db")
	return NewSQLiteStoreAt(path)
}

// NewSQLiteStoreAt opens a store at an explicit path.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		prompt TEXT,
		app_name TEXT,
		framework TEXT,
		language TEXT,
		from_cache INTEGER,
		built INTEGER,
		file_count INTEGER,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new run record, assigning a ULID when the record has no id.
func (s *SQLiteStore) Save(record domain.RunRecord) error {
	if record.ID == "" {
		record.ID = ulid.Make().String()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if s.db == nil {
		return (&FileStore{path: s.fallbackPath()}).Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO runs
		(id, timestamp, prompt, app_name, framework, language, from_cache, built, file_count, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(time.RFC3339),
		record.Prompt,
		record.AppName,
		record.Framework,
		record.Language,
		boolToInt(record.FromCache),
		boolToInt(record.Built),
		record.FileCount,
		record.DurationMS,
	)
	return err
}

// Records returns history entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.RunRecord, error) {
	if s.db == nil {
		return (&FileStore{path: s.fallbackPath()}).Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, prompt, app_name, framework, language, from_cache, built, file_count, duration_ms FROM runs")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE prompt LIKE ? OR app_name LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var ts string
		var fromCache, built int
		if err := rows.Scan(&rec.ID, &ts, &rec.Prompt, &rec.AppName, &rec.Framework, &rec.Language, &fromCache, &built, &rec.FileCount, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.FromCache = fromCache == 1
		rec.Built = built == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return (&FileStore{path: s.fallbackPath()}).Clear()
	}
	_, err := s.db.Exec("DELETE FROM runs")
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) fallbackPath() string {
	return strings.TrimSuffix(s.path, filepath.Ext(s.path)) + ".jsonl"
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
