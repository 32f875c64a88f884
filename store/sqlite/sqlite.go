// Package sqlite persists campaign run history. The engine itself never
// touches storage; completed summaries are written here by the API layer so
// a player can review past runs.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mdilm/manufacturing-game/sim"
)

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("run not found")

// RunRecord is one persisted campaign run.
type RunRecord struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Seed      int64                `json:"seed"`
	Summary   *sim.CampaignSummary `json:"summary"`
}

// Store is a SQLite-backed run-history store. Opened in WAL mode; schema is
// auto-migrated on New. Use ":memory:" for tests.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at dbPath and migrates the schema.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		summary_json TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun persists a completed campaign summary and returns its record.
func (s *Store) SaveRun(seed int64, summary *sim.CampaignSummary) (*RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &RunRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Seed:      seed,
		Summary:   summary,
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO runs (id, created_at, seed, summary_json) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.Format(time.RFC3339Nano), rec.Seed, string(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}

// ListRuns returns all persisted runs, newest first.
func (s *Store) ListRuns() ([]*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, created_at, seed, summary_json FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []*RunRecord
	for rows.Next() {
		rec, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetRun returns one persisted run by ID.
func (s *Store) GetRun(id string) (*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		`SELECT id, created_at, seed, summary_json FROM runs WHERE id = ?`, id)
	rec, err := scanRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func scanRun(scan func(...any) error) (*RunRecord, error) {
	var (
		rec       RunRecord
		createdAt string
		payload   string
	)
	if err := scan(&rec.ID, &createdAt, &rec.Seed, &payload); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	rec.CreatedAt = ts
	if err := json.Unmarshal([]byte(payload), &rec.Summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &rec, nil
}
