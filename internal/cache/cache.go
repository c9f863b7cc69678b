// Package cache persists successful AI extractions in a local SQLite database
// so repeated runs over the same spreadsheet do not re-issue API calls for
// unchanged rows. The deterministic table strategy is never cached; it is
// cheaper than the lookup.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/untoldecay/FloraSheet/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS extractions (
	key        TEXT PRIMARY KEY,
	country    TEXT NOT NULL,
	varieties  TEXT NOT NULL,
	model      TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);`

// Entry is one cached extraction.
type Entry struct {
	Country   string
	Varieties []types.VarietyEntry
	Model     string
}

// Store is a read/write handle on the cache database. Safe for concurrent use;
// SQLite serializes writers internally.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Key derives the cache key for one record's extraction inputs.
func Key(address, description string) string {
	h := sha256.Sum256([]byte(address + "\x1f" + description))
	return hex.EncodeToString(h[:])
}

// Get returns the cached entry for key, or ok=false on a miss. Corrupt rows
// count as misses rather than errors; the caller just re-extracts.
func (s *Store) Get(ctx context.Context, key string) (*Entry, bool, error) {
	var country, varietiesJSON, model string
	err := s.db.QueryRowContext(ctx,
		`SELECT country, varieties, model FROM extractions WHERE key = ?`, key).
		Scan(&country, &varietiesJSON, &model)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup failed: %w", err)
	}

	var varieties []types.VarietyEntry
	if err := json.Unmarshal([]byte(varietiesJSON), &varieties); err != nil {
		return nil, false, nil
	}
	if varieties == nil {
		varieties = []types.VarietyEntry{}
	}
	return &Entry{Country: country, Varieties: varieties, Model: model}, true, nil
}

// Put stores an entry, replacing any previous value for key.
func (s *Store) Put(ctx context.Context, key string, e *Entry) error {
	varietiesJSON, err := json.Marshal(e.Varieties)
	if err != nil {
		return fmt.Errorf("failed to encode varieties: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO extractions (key, country, varieties, model, created_at) VALUES (?, ?, ?, ?, ?)`,
		key, e.Country, string(varietiesJSON), e.Model, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}

// Len returns the number of cached extractions, for reporting.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM extractions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("cache count failed: %w", err)
	}
	return n, nil
}
