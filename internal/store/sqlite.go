// apps/go-solver/internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Blocklist load/save and session records.

package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLite is a Store on a single SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at dsn and migrates it.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// openDB opens the database file, creating its parent directory for
// relative paths like ./data/motus.db.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies every *.sql file in fsys in lexical order, once.
// Applied names are tracked in _migrations.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

/* ------------------------------ blocklists ------------------------------ */

func (s *SQLite) LoadBlocklist(ctx context.Context, key string) mapset.Set[string] {
	out := mapset.NewThreadUnsafeSet[string]()
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM blocklist WHERE key=?`, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("load blocklist")
		return out
	}
	defer rows.Close()
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("scan blocklist")
			return mapset.NewThreadUnsafeSet[string]()
		}
		out.Add(w)
	}
	if err := rows.Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("load blocklist")
		return mapset.NewThreadUnsafeSet[string]()
	}
	return out
}

// SaveBlocklist replaces the words stored under key in one transaction.
func (s *SQLite) SaveBlocklist(ctx context.Context, key string, words mapset.Set[string]) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM blocklist WHERE key=?`, key); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO blocklist(key, word) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	list := words.ToSlice()
	sort.Strings(list)
	for _, w := range list {
		if _, err := stmt.ExecContext(ctx, key, w); err != nil {
			return fmt.Errorf("insert %s/%s: %w", key, w, err)
		}
	}
	return tx.Commit()
}

/* ------------------------------- sessions ------------------------------- */

func (s *SQLite) RecordSession(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO sessions
            (id, length, outcome, attempts, solution, guesses, started_at, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Length, r.Outcome, r.Attempts, r.Solution,
		strings.Join(r.Guesses, ","), r.StartedAt.UTC().Format(time.RFC3339), r.Elapsed.Milliseconds(),
	)
	return err
}

func (s *SQLite) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(outcome = 'won'), 0),
               COALESCE(SUM(outcome = 'lost'), 0),
               COALESCE(SUM(outcome = 'exhausted'), 0),
               AVG(CASE WHEN outcome = 'won' THEN attempts END)
        FROM sessions`,
	).Scan(&out.Sessions, &out.Won, &out.Lost, &out.Exhausted, &avg)
	if err != nil {
		return Summary{}, err
	}
	if avg.Valid {
		out.AvgAttempts = avg.Float64
	}
	return out, nil
}

// Recent returns the latest finished sessions, newest first.
func (s *SQLite) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, length, outcome, attempts, solution, guesses, started_at, elapsed_ms
        FROM sessions
        ORDER BY started_at DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		var (
			r         Record
			guesses   string
			started   string
			elapsedMs int64
		)
		if err := rows.Scan(&r.ID, &r.Length, &r.Outcome, &r.Attempts, &r.Solution, &guesses, &started, &elapsedMs); err != nil {
			return nil, err
		}
		if guesses != "" {
			r.Guesses = strings.Split(guesses, ",")
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error { return s.db.Close() }
