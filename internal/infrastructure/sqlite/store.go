// Package sqlite persists options, theme mods and post meta between runs.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/alexisbeaulieu97/themecore/internal/logger"
)

const (
	scopeOption   = "option"
	scopeThemeMod = "theme_mod"

	defaultExpiration = 10 * time.Minute
	cleanupInterval   = 30 * time.Minute
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	scope      TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (scope, key)
)`

// Store is a ports.Options backed by a SQLite file with a read-through cache.
// Values are stored as YAML so integers, strings and nested maps keep their
// shape across runs.
type Store struct {
	db    *sql.DB
	cache *gocache.Cache
	log   *logger.Logger
	mu    sync.Mutex
}

// Open opens or creates the database at path. ":memory:" is accepted.
func Open(ctx context.Context, path string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}
	// a single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	pragmas := []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{
		db:    db,
		cache: gocache.New(defaultExpiration, cleanupInterval),
		log:   log.WithFields(map[string]any{"store": path}),
	}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetOption implements ports.Options.
func (s *Store) GetOption(ctx context.Context, name string) (any, bool, error) {
	return s.get(ctx, scopeOption, name)
}

// UpdateOption implements ports.Options.
func (s *Store) UpdateOption(ctx context.Context, name string, value any) error {
	return s.put(ctx, scopeOption, name, value)
}

// GetThemeMod implements ports.Options.
func (s *Store) GetThemeMod(ctx context.Context, name string) (any, bool, error) {
	return s.get(ctx, scopeThemeMod, name)
}

// SetThemeMod implements ports.Options.
func (s *Store) SetThemeMod(ctx context.Context, name string, value any) error {
	return s.put(ctx, scopeThemeMod, name, value)
}

// GetPostMeta implements ports.Options.
func (s *Store) GetPostMeta(ctx context.Context, postID int, key string) (any, bool, error) {
	return s.get(ctx, postScope(postID), key)
}

// UpdatePostMeta implements ports.Options.
func (s *Store) UpdatePostMeta(ctx context.Context, postID int, key string, value any) error {
	return s.put(ctx, postScope(postID), key, value)
}

// Keys lists the keys stored under a scope.
func (s *Store) Keys(ctx context.Context, scope string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv WHERE scope = ? ORDER BY key`, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *Store) get(ctx context.Context, scope, key string) (any, bool, error) {
	cacheKey := scope + "\x00" + key
	if v, ok := s.cache.Get(cacheKey); ok {
		return v, true, nil
	}

	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE scope = ? AND key = ?`, scope, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s %q: %w", scope, key, err)
	}

	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, false, fmt.Errorf("decode %s %q: %w", scope, key, err)
	}
	s.cache.Set(cacheKey, value, gocache.DefaultExpiration)
	return value, true, nil
}

func (s *Store) put(ctx context.Context, scope, key string, value any) error {
	raw, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s %q: %w", scope, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (scope, key, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		scope, key, string(raw))
	if err != nil {
		return fmt.Errorf("write %s %q: %w", scope, key, err)
	}
	s.cache.Delete(scope + "\x00" + key)
	s.log.WithFields(map[string]any{"scope": scope, "key": key}).Debug("stored value")
	return nil
}

func postScope(postID int) string {
	return "post:" + strconv.Itoa(postID)
}
