// Package storage provides SQLite-based persistence for gameplay replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A replay is a seed plus the per-tick input script; because the simulation
// is deterministic, that is enough to reproduce a whole run bit for bit.
// Nothing here is a leaderboard - the recorded final score exists only to
// verify playback.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/spacerocks/spacerocks/internal/core"
)

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// RunMeta describes a recorded run.
type RunMeta struct {
	ID         int64
	GameID     string
	Seed       int64
	TickRate   int
	Difficulty string
	ConfigPath string
	Frames     uint64
	FinalScore int
	CreatedAt  time.Time
}

// InputRecord is one tick's worth of recorded gameplay actions.
// Ticks with no actions are not stored.
type InputRecord struct {
	Tick    uint64
	Actions uint32
}

// Gameplay action bits of the stored input encoding. The encoding is part
// of the on-disk format; append new bits, never renumber.
const (
	bitTurnLeft uint32 = 1 << iota
	bitTurnRight
	bitThrust
	bitFire
	bitRestart
)

// EncodeActions packs the gameplay actions of an input frame into the
// stored bitmask. Platform-level actions (pause, quit, menu) are not part
// of a replay.
func EncodeActions(in core.InputFrame) uint32 {
	var bits uint32
	if in.Has(core.ActionTurnLeft) {
		bits |= bitTurnLeft
	}
	if in.Has(core.ActionTurnRight) {
		bits |= bitTurnRight
	}
	if in.Has(core.ActionThrust) {
		bits |= bitThrust
	}
	if in.Has(core.ActionFire) {
		bits |= bitFire
	}
	if in.Has(core.ActionRestart) {
		bits |= bitRestart
	}
	return bits
}

// DecodeActions unpacks a stored bitmask into an input frame.
func DecodeActions(bits uint32) core.InputFrame {
	in := core.NewInputFrame()
	if bits&bitTurnLeft != 0 {
		in.Set(core.ActionTurnLeft)
	}
	if bits&bitTurnRight != 0 {
		in.Set(core.ActionTurnRight)
	}
	if bits&bitThrust != 0 {
		in.Set(core.ActionThrust)
	}
	if bits&bitFire != 0 {
		in.Set(core.ActionFire)
	}
	if bits&bitRestart != 0 {
		in.Set(core.ActionRestart)
	}
	return in
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			config_path TEXT NOT NULL DEFAULT '',
			frames INTEGER NOT NULL,
			final_score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);

		CREATE TABLE IF NOT EXISTS run_inputs (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			actions INTEGER NOT NULL,
			PRIMARY KEY (run_id, tick)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a completed run and its input script in one transaction.
// Returns the ID of the new run.
func (s *Store) SaveRun(meta RunMeta, inputs []InputRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	res, err := tx.Exec(
		`INSERT INTO runs (game_id, seed, tick_rate, difficulty, config_path, frames, final_score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.GameID, meta.Seed, meta.TickRate, meta.Difficulty, meta.ConfigPath, meta.Frames, meta.FinalScore,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read run id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO run_inputs (run_id, tick, actions) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare input insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range inputs {
		if _, err := stmt.Exec(id, rec.Tick, rec.Actions); err != nil {
			return 0, fmt.Errorf("storage: cannot insert input at tick %d: %w", rec.Tick, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// LoadRun fetches a recorded run and its input script.
func (s *Store) LoadRun(id int64) (RunMeta, []InputRecord, error) {
	var meta RunMeta
	err := s.db.QueryRow(
		`SELECT id, game_id, seed, tick_rate, difficulty, config_path, frames, final_score, created_at
		 FROM runs WHERE id = ?`, id,
	).Scan(&meta.ID, &meta.GameID, &meta.Seed, &meta.TickRate, &meta.Difficulty,
		&meta.ConfigPath, &meta.Frames, &meta.FinalScore, &meta.CreatedAt)
	if err != nil {
		return RunMeta{}, nil, fmt.Errorf("storage: cannot load run %d: %w", id, err)
	}

	rows, err := s.db.Query(
		`SELECT tick, actions FROM run_inputs WHERE run_id = ? ORDER BY tick`, id,
	)
	if err != nil {
		return RunMeta{}, nil, fmt.Errorf("storage: cannot load inputs for run %d: %w", id, err)
	}
	defer rows.Close()

	var inputs []InputRecord
	for rows.Next() {
		var rec InputRecord
		if err := rows.Scan(&rec.Tick, &rec.Actions); err != nil {
			return RunMeta{}, nil, fmt.Errorf("storage: cannot scan input row: %w", err)
		}
		inputs = append(inputs, rec)
	}
	if err := rows.Err(); err != nil {
		return RunMeta{}, nil, fmt.Errorf("storage: input rows: %w", err)
	}

	return meta, inputs, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunMeta, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, tick_rate, difficulty, config_path, frames, final_score, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunMeta
	for rows.Next() {
		var meta RunMeta
		if err := rows.Scan(&meta.ID, &meta.GameID, &meta.Seed, &meta.TickRate,
			&meta.Difficulty, &meta.ConfigPath, &meta.Frames, &meta.FinalScore, &meta.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run row: %w", err)
		}
		runs = append(runs, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: run rows: %w", err)
	}

	return runs, nil
}
