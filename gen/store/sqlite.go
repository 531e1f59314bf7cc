package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/df-mc/biomegen/gen"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id      TEXT PRIMARY KEY,
		created INTEGER NOT NULL,
		config  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		job  TEXT NOT NULL,
		seed INTEGER NOT NULL,
		PRIMARY KEY (job, seed)
	)`,
	`CREATE TABLE IF NOT EXISTS snapshots (
		job  TEXT NOT NULL,
		seed INTEGER NOT NULL,
		data BLOB NOT NULL,
		PRIMARY KEY (job, seed)
	)`,
}

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens or creates the SQLite database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// A single connection serialises writers, which SQLite requires anyway.
	db.SetMaxOpenConns(1)
	for _, stmt := range append([]string{"PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL"}, schema...) {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init sqlite store: %w", err)
		}
	}
	return &SQLite{db: db}, nil
}

// CreateJob ...
func (s *SQLite) CreateJob(j Job) error {
	b, err := json.Marshal(j.Config)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO jobs (id, created, config) VALUES (?, ?, ?)`,
		j.ID.String(), j.Created.UnixMilli(), string(b))
	if err != nil {
		return fmt.Errorf("store job %v: %w", j.ID, err)
	}
	return nil
}

// Job ...
func (s *SQLite) Job(id uuid.UUID) (Job, error) {
	var (
		created int64
		config  string
	)
	err := s.db.QueryRow(`SELECT created, config FROM jobs WHERE id = ?`, id.String()).Scan(&created, &config)
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, fmt.Errorf("job %v: %w", id, ErrNotFound)
	} else if err != nil {
		return Job{}, fmt.Errorf("read job %v: %w", id, err)
	}
	j := Job{ID: id, Created: time.UnixMilli(created).UTC()}
	if err := json.Unmarshal([]byte(config), &j.Config); err != nil {
		return Job{}, fmt.Errorf("decode job %v: %w", id, err)
	}
	return j, nil
}

func (s *SQLite) checkJob(id uuid.UUID) error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM jobs WHERE id = ?`, id.String()).Scan(&n); err != nil {
		return fmt.Errorf("read job %v: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("job %v: %w", id, ErrNotFound)
	}
	return nil
}

// PutMatch ...
func (s *SQLite) PutMatch(id uuid.UUID, seed int64) error {
	if err := s.checkJob(id); err != nil {
		return err
	}
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO matches (job, seed) VALUES (?, ?)`, id.String(), seed); err != nil {
		return fmt.Errorf("store match %d: %w", seed, err)
	}
	return nil
}

// Matches streams the seeds from the database. The query holds the only
// connection, so the loop body must not use the store.
func (s *SQLite) Matches(id uuid.UUID) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		rows, err := s.db.Query(`SELECT seed FROM matches WHERE job = ? ORDER BY seed`, id.String())
		if err != nil {
			yield(0, fmt.Errorf("query matches: %w", err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			var seed int64
			if err := rows.Scan(&seed); err != nil {
				yield(0, fmt.Errorf("scan match: %w", err))
				return
			}
			if !yield(seed, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(0, fmt.Errorf("iterate matches: %w", err))
		}
	}
}

// PutSnapshot ...
func (s *SQLite) PutSnapshot(id uuid.UUID, seed int64, g gen.Grid) error {
	if err := s.checkJob(id); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO snapshots (job, seed, data) VALUES (?, ?, ?)`,
		id.String(), seed, encodeGrid(g))
	if err != nil {
		return fmt.Errorf("store snapshot of %d: %w", seed, err)
	}
	return nil
}

// Snapshot ...
func (s *SQLite) Snapshot(id uuid.UUID, seed int64) (gen.Grid, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snapshots WHERE job = ? AND seed = ?`, id.String(), seed).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return gen.Grid{}, fmt.Errorf("snapshot of %d: %w", seed, ErrNotFound)
	} else if err != nil {
		return gen.Grid{}, fmt.Errorf("read snapshot of %d: %w", seed, err)
	}
	return decodeGrid(data)
}

// Close ...
func (s *SQLite) Close() error {
	return s.db.Close()
}
