// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: store/store.go
// Summary: SQLite snapshots of style documents.
//
// A snapshot holds one complete document. Saving replaces the previous
// snapshot in a single transaction, so readers never see a partial table.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/surfacestyle/registry"
	"github.com/framegrace/surfacestyle/style"
)

const schema = `
CREATE TABLE IF NOT EXISTS styles (
    name TEXT PRIMARY KEY,
    diffuse_r REAL,
    diffuse_g REAL,
    diffuse_b REAL,
    specular_r REAL,
    specular_g REAL,
    specular_b REAL,
    specular_roughness REAL,
    transparency REAL
);

CREATE TABLE IF NOT EXISTS snapshot (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    saved_at INTEGER NOT NULL,      -- UnixNano
    style_count INTEGER NOT NULL
);
`

// Store persists style documents in a SQLite database.
type Store struct {
	path string
	db   *sql.DB
}

// Open opens or creates the snapshot database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{path: path, db: db}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored snapshot with doc.
func (s *Store) Save(doc registry.Document) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM styles"); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO styles
		(name, diffuse_r, diffuse_g, diffuse_b, specular_r, specular_g, specular_b, specular_roughness, transparency)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for name, e := range doc {
		diffuse, err := colorColumns(e.Diffuse)
		if err != nil {
			return fmt.Errorf("style %q diffuse: %w", name, err)
		}
		specular, err := colorColumns(e.Specular)
		if err != nil {
			return fmt.Errorf("style %q specular: %w", name, err)
		}
		if _, err := stmt.Exec(name,
			diffuse[0], diffuse[1], diffuse[2],
			specular[0], specular[1], specular[2],
			nullable(e.SpecularRoughness), nullable(e.Transparency)); err != nil {
			return fmt.Errorf("insert style %q: %w", name, err)
		}
	}

	if _, err = tx.Exec("INSERT OR REPLACE INTO snapshot (id, saved_at, style_count) VALUES (1, ?, ?)",
		time.Now().UnixNano(), len(doc)); err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	log.Printf("Store: Saved %d styles to %s", len(doc), s.path)
	return nil
}

// Load returns the stored snapshot. An empty database yields an empty document.
func (s *Store) Load() (registry.Document, error) {
	rows, err := s.db.Query(`SELECT name, diffuse_r, diffuse_g, diffuse_b,
		specular_r, specular_g, specular_b, specular_roughness, transparency FROM styles`)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	doc := make(registry.Document)
	for rows.Next() {
		var (
			name                   string
			dr, dg, db, sr, sg, sb sql.NullFloat64
			roughness, transparent sql.NullFloat64
		)
		if err := rows.Scan(&name, &dr, &dg, &db, &sr, &sg, &sb, &roughness, &transparent); err != nil {
			return nil, fmt.Errorf("scan style: %w", err)
		}
		doc[name] = registry.Entry{
			Diffuse:           colorValues(dr, dg, db),
			Specular:          colorValues(sr, sg, sb),
			SpecularRoughness: floatPtr(roughness),
			Transparency:      floatPtr(transparent),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return doc, nil
}

// SavedAt returns when the snapshot was last saved and how many styles it holds.
// A database that was never saved to returns the zero time.
func (s *Store) SavedAt() (time.Time, int, error) {
	var nanos int64
	var count int
	err := s.db.QueryRow("SELECT saved_at, style_count FROM snapshot WHERE id = 1").Scan(&nanos, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, 0, nil
	}
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("query snapshot time: %w", err)
	}
	return time.Unix(0, nanos), count, nil
}

func colorColumns(values []float64) ([3]any, error) {
	c, ok, err := style.ParseColor(values)
	if err != nil || !ok {
		return [3]any{}, err
	}
	return [3]any{c.R, c.G, c.B}, nil
}

func colorValues(r, g, b sql.NullFloat64) []float64 {
	if !r.Valid || !g.Valid || !b.Valid {
		return nil
	}
	return []float64{r.Float64, g.Float64, b.Float64}
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
