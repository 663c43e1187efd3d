// apps/go-solver/history.go
//
// Solve-history persistence for the solver CLI.
// Responsibilities:
//   - Opening a SQLite database with safe defaults (WAL, busy timeout).
//   - Creating the solve_results schema idempotently.
//   - Recording finished sessions and recalling recent results + aggregates.
//
// History is opt-in: it is only wired up when HISTORY_DB is set.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS solve_results (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT    NOT NULL,
	played_at  TEXT    NOT NULL,
	rounds     INTEGER NOT NULL,
	solved     INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	answer     TEXT    NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_solve_results_played_at ON solve_results(played_at);
`

// openHistory opens (and creates if missing) the history database.
//
// - Ensures the parent directory exists for relative DSNs (e.g. ./data/solves.db).
// - Configures busy timeout and WAL journaling mode.
// - Applies the schema idempotently.
func openHistory(dsn string) (*sql.DB, error) {
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
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// SolveResult is one finished session as recorded in history.
type SolveResult struct {
	SessionID string `json:"sessionId"`
	PlayedAt  string `json:"playedAt"` // YYYY-MM-DD, UTC
	Rounds    int    `json:"rounds"`
	Solved    bool   `json:"solved"`
	ElapsedMs int64  `json:"elapsedMs"`
	Answer    string `json:"answer"` // final word if solved, else ""
}

// HistoryStore records and recalls solve results.
type HistoryStore struct{ db *sql.DB }

// NewHistoryStore wraps an opened history database.
func NewHistoryStore(db *sql.DB) *HistoryStore { return &HistoryStore{db: db} }

// Insert records one finished session.
func (h *HistoryStore) Insert(ctx context.Context, r SolveResult) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO solve_results(session_id, played_at, rounds, solved, elapsed_ms, answer)
		 VALUES(?,?,?,?,?,?)`,
		r.SessionID, r.PlayedAt, r.Rounds, boolToInt(r.Solved), r.ElapsedMs, r.Answer,
	)
	return err
}

// Recent returns the most recent results, newest first.
func (h *HistoryStore) Recent(ctx context.Context, limit int) ([]SolveResult, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT session_id, played_at, rounds, solved, elapsed_ms, answer
		 FROM solve_results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SolveResult
	for rows.Next() {
		var r SolveResult
		var solved int
		if err := rows.Scan(&r.SessionID, &r.PlayedAt, &r.Rounds, &solved, &r.ElapsedMs, &r.Answer); err != nil {
			return nil, err
		}
		r.Solved = solved != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary reports aggregate stats: total sessions, solved count, and the
// average round count of solved sessions (0 when none solved).
func (h *HistoryStore) Summary(ctx context.Context) (total, solved int, avgRounds float64, err error) {
	err = h.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
		        COALESCE(SUM(solved), 0),
		        COALESCE(AVG(CASE WHEN solved = 1 THEN rounds END), 0)
		 FROM solve_results`,
	).Scan(&total, &solved, &avgRounds)
	return
}

// dateKey returns YYYY-MM-DD in UTC.
func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
