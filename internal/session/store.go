// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/seekspot/pkg/types"
)

// NewStore builds the store selected by cfg.
func NewStore(cfg types.SessionConfig) (Store, error) {
	switch cfg.Backend {
	case types.SessionFile, "":
		return &FileStore{Path: cfg.Path}, nil
	case types.SessionSQLite:
		return OpenSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

// MemoryStore keeps state in memory. Useful for tests and one-shot runs.
type MemoryStore struct {
	State State
}

// Load returns the held state.
func (m *MemoryStore) Load() (State, error) { return m.State.clone(), nil }

// Save replaces the held state.
func (m *MemoryStore) Save(s State) error {
	m.State = s.clone()
	return nil
}

// FileStore persists state as a JSON document.
type FileStore struct {
	Path string
}

// Load reads the file. A missing file is an empty state.
func (f *FileStore) Load() (State, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("reading session file: %w", err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("parsing session file %s: %w", f.Path, err)
	}
	return s, nil
}

// Save writes the file atomically through a temporary sibling.
func (f *FileStore) Save(s State) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}

// SQLiteStore persists state in a SQLite database: one row for the session
// and one row per email that has used a trial.
type SQLiteStore struct {
	db *sqlx.DB
}

type sessionRow struct {
	TrialActive       bool   `db:"trial_active"`
	Premium           bool   `db:"premium"`
	TrialEndDate      string `db:"trial_end_date"`
	TrialEmail        string `db:"trial_email"`
	SearchesRemaining int    `db:"searches_remaining"`
}

// OpenSQLiteStore opens or creates the database at path and its schema.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating session directory: %w", err)
		}
	}
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			trial_active INTEGER NOT NULL DEFAULT 0,
			premium INTEGER NOT NULL DEFAULT 0,
			trial_end_date TEXT NOT NULL DEFAULT '',
			trial_email TEXT NOT NULL DEFAULT '',
			searches_remaining INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS used_trial_emails (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Load reads the session row and used emails. An empty database is an
// empty state.
func (s *SQLiteStore) Load() (State, error) {
	var row sessionRow
	err := s.db.Get(&row, `SELECT trial_active, premium, trial_end_date, trial_email, searches_remaining
		FROM session WHERE id = 1`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return State{}, fmt.Errorf("loading session row: %w", err)
	}

	state := State{
		TrialActive:       row.TrialActive,
		Premium:           row.Premium,
		TrialEmail:        row.TrialEmail,
		SearchesRemaining: row.SearchesRemaining,
	}
	if row.TrialEndDate != "" {
		t, err := time.Parse(time.RFC3339Nano, row.TrialEndDate)
		if err != nil {
			return State{}, fmt.Errorf("parsing trial end date %q: %w", row.TrialEndDate, err)
		}
		state.TrialEndDate = t
	}

	if err := s.db.Select(&state.UsedTrialEmails, `SELECT email FROM used_trial_emails ORDER BY seq`); err != nil {
		return State{}, fmt.Errorf("loading used trial emails: %w", err)
	}
	return state, nil
}

// Save replaces the session row and records any new used emails in one
// transaction.
func (s *SQLiteStore) Save(state State) error {
	row := sessionRow{
		TrialActive:       state.TrialActive,
		Premium:           state.Premium,
		TrialEmail:        state.TrialEmail,
		SearchesRemaining: state.SearchesRemaining,
	}
	if !state.TrialEndDate.IsZero() {
		row.TrialEndDate = state.TrialEndDate.UTC().Format(time.RFC3339Nano)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExec(`INSERT INTO session (id, trial_active, premium, trial_end_date, trial_email, searches_remaining)
		VALUES (1, :trial_active, :premium, :trial_end_date, :trial_email, :searches_remaining)
		ON CONFLICT(id) DO UPDATE SET
			trial_active = excluded.trial_active,
			premium = excluded.premium,
			trial_end_date = excluded.trial_end_date,
			trial_email = excluded.trial_email,
			searches_remaining = excluded.searches_remaining`, row); err != nil {
		return fmt.Errorf("saving session row: %w", err)
	}
	for _, email := range state.UsedTrialEmails {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO used_trial_emails (email) VALUES (?)`, email); err != nil {
			return fmt.Errorf("recording used trial email: %w", err)
		}
	}
	return tx.Commit()
}
