package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"svw.info/puzzlebook/internal/domain"
)

// SQLite keeps records in a single-file database. Records are stored as
// JSON alongside the columns the listing queries need.
type SQLite struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id         TEXT PRIMARY KEY,
	family     TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	record     TEXT NOT NULL
);`

// OpenSQLite opens (creating if needed) a puzzle store at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database handle.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("invalid puzzle: missing ID")
	}
	record, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, family, difficulty, created_at, record)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			family = excluded.family,
			difficulty = excluded.difficulty,
			created_at = excluded.created_at,
			record = excluded.record`,
		p.ID, p.Family.String(), p.Difficulty.String(), p.CreatedAt, string(record))
	if err != nil {
		return fmt.Errorf("save puzzle %s: %w", p.ID, err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var record string
	err := s.db.QueryRowContext(ctx, `SELECT record FROM puzzles WHERE id = ?`, id).Scan(&record)
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	var p domain.Puzzle
	if err := json.Unmarshal([]byte(record), &p); err != nil {
		return nil, fmt.Errorf("decode puzzle %s: %w", id, err)
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, family, difficulty, created_at FROM puzzles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()
	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		var family, diff string
		if err := rows.Scan(&m.ID, &family, &diff, &m.CreatedAt); err != nil {
			return nil, err
		}
		if m.Family, err = domain.ParseFamily(family); err != nil {
			return nil, err
		}
		if m.Difficulty, err = domain.ParseDifficulty(diff); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLite) All(ctx context.Context) ([]*domain.Puzzle, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record FROM puzzles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("read puzzles: %w", err)
	}
	defer rows.Close()
	var out []*domain.Puzzle
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, err
		}
		var p domain.Puzzle
		if err := json.Unmarshal([]byte(record), &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
