package store

import (
	"database/sql"
	"fmt"
	"time"

	"envelope/internal/ledger"
	_ "modernc.org/sqlite"
)

// SQLite persists snapshots in a local SQLite database. The ledger is tiny
// and single-writer, so Save simply rewrites the snapshot inside one
// transaction rather than diffing rows.
type SQLite struct {
	db *sql.DB
}

func OpenSQLite(dbPath string) (*SQLite, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var version int
	if err := tx.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version < 1 {
		stmts := []string{
			`CREATE TABLE IF NOT EXISTS categories (
				name     TEXT PRIMARY KEY,
				position INTEGER NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS entries (
				seq         INTEGER PRIMARY KEY AUTOINCREMENT,
				id          TEXT NOT NULL,
				category    TEXT NOT NULL,
				amount      REAL NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				date        TEXT NOT NULL,
				type        TEXT NOT NULL CHECK (type IN ('deposit','withdraw','transfer_out','transfer_in'))
			)`,
			`CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category)`,
			`INSERT INTO schema_version (version) VALUES (1)`,
		}
		for _, stmt := range stmts {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("migration v1: %w", err)
			}
		}
	}

	return tx.Commit()
}

// Load rebuilds the snapshot. A category's ledger is exactly the global
// entries tagged with its name, in insertion order, so only the global list
// is stored.
func (s *SQLite) Load() (ledger.Snapshot, error) {
	var snap ledger.Snapshot

	rows, err := s.db.Query(`SELECT name FROM categories ORDER BY position`)
	if err != nil {
		return snap, fmt.Errorf("load categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return snap, fmt.Errorf("scan category: %w", err)
		}
		snap.Categories = append(snap.Categories, ledger.CategoryState{Name: name})
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}

	entryRows, err := s.db.Query(`SELECT id, category, amount, description, date, type FROM entries ORDER BY seq`)
	if err != nil {
		return snap, fmt.Errorf("load entries: %w", err)
	}
	defer entryRows.Close()

	byCategory := make(map[string][]ledger.Transaction)
	for entryRows.Next() {
		var t ledger.Transaction
		var date string
		if err := entryRows.Scan(&t.ID, &t.Category, &t.Amount, &t.Description, &date, &t.Type); err != nil {
			return snap, fmt.Errorf("scan entry: %w", err)
		}
		t.Date, err = time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return snap, fmt.Errorf("%w: bad entry date %q: %v", ledger.ErrCorruptState, date, err)
		}
		t.Date = t.Date.Local()
		byCategory[t.Category] = append(byCategory[t.Category], t)
		snap.Transactions = append(snap.Transactions, t)
	}
	if err := entryRows.Err(); err != nil {
		return snap, err
	}

	for i := range snap.Categories {
		snap.Categories[i].Ledger = byCategory[snap.Categories[i].Name]
	}
	return snap, nil
}

// Save rewrites the snapshot in one transaction.
func (s *SQLite) Save(snap ledger.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	for i, c := range snap.Categories {
		if _, err := tx.Exec(`INSERT INTO categories (name, position) VALUES (?, ?)`, c.Name, i); err != nil {
			return fmt.Errorf("insert category %s: %w", c.Name, err)
		}
	}
	for _, t := range snap.Transactions {
		_, err := tx.Exec(
			`INSERT INTO entries (id, category, amount, description, date, type) VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Category, t.Amount, t.Description, t.Date.Format(time.RFC3339Nano), string(t.Type),
		)
		if err != nil {
			return fmt.Errorf("insert entry %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}
