// Package store persists a small corpus of known fumen strings in a
// single embedded SQLite database, trimmed down from an earlier multi-driver
// connection-pool/transaction manager down to the one store this module
// actually needs.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one corpus row.
type Record struct {
	Hash      string
	Fumen     string
	PageCount int
	AddedAt   time.Time
}

// Store wraps a single SQLite connection holding the corpus table.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens the corpus database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open corpus store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping corpus store: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS fumens (
	hash       TEXT PRIMARY KEY,
	fumen      TEXT NOT NULL,
	page_count INTEGER NOT NULL,
	added_at   DATETIME NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create corpus table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Hash returns the content-addressed key a fumen string is stored under.
func Hash(fumen string) string {
	sum := sha256.Sum256([]byte(fumen))
	return hex.EncodeToString(sum[:])
}

// Add inserts fumen into the corpus, keyed by its hash; re-adding an
// already-known fumen is a no-op.
func (s *Store) Add(fumen string, pageCount int) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO fumens (hash, fumen, page_count, added_at) VALUES (?, ?, ?, ?)`,
		Hash(fumen), fumen, pageCount, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("add fumen: %w", err)
	}
	return nil
}

// All returns every stored record, oldest first.
func (s *Store) All() ([]Record, error) {
	rows, err := s.db.Query(`SELECT hash, fumen, page_count, added_at FROM fumens ORDER BY added_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list fumens: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Hash, &r.Fumen, &r.PageCount, &r.AddedAt); err != nil {
			return nil, fmt.Errorf("scan fumen row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM fumens`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count fumens: %w", err)
	}
	return n, nil
}
