package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	_ "github.com/lib/pq"

	"eventlist/internal/domain"
)

//go:embed migration/*.sql
var migrationFS embed.FS

// Store manages a single shared database handle with lazy initialization.
// The first call to Get dials, verifies the connection, and bootstraps the
// schema; the handle is then cached for the process lifetime. A failed attempt
// is never cached, so the next call dials fresh instead of reusing a dead
// connection. Concurrent callers share the handle and rely on database/sql's
// own pooling.
type Store struct {
	dsn  string
	open func(dsn string) (*sql.DB, error)

	mu sync.Mutex
	db *sql.DB
}

// NewStore returns a Store for the given postgres DSN. No connection is made
// until the first Get call.
func NewStore(dsn string) *Store {
	return &Store{
		dsn: dsn,
		open: func(dsn string) (*sql.DB, error) {
			return sql.Open("postgres", dsn)
		},
	}
}

// NewStoreWithDB returns a Store wrapping an already-open handle. Used by tests
// and callers that manage the connection themselves; no migration is run.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the shared database handle, dialing and migrating on first use.
// Connection failures are reported as domain.ErrStoreUnavailable.
func (s *Store) Get(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}

	db, err := s.open(s.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.db = db
	return s.db, nil
}

// Close closes the cached handle, if any.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// migrate applies the embedded migration files in lexical order, tracking
// applied names in a migrations table so each file runs once.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("cannot create migrations table: %w", err)
	}

	names, err := fs.Glob(migrationFS, "migration/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		if err := migrateFile(ctx, db, name); err != nil {
			return fmt.Errorf("migration %q: %w", name, err)
		}
	}
	return nil
}

func migrateFile(ctx context.Context, db *sql.DB, name string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM migrations WHERE name = $1`, name).Scan(&n); err != nil {
		return err
	}
	if n != 0 {
		return tx.Commit()
	}

	buf, err := fs.ReadFile(migrationFS, name)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, string(buf)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO migrations (name) VALUES ($1)`, name); err != nil {
		return err
	}
	return tx.Commit()
}
