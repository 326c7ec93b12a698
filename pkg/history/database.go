// Package history persists boot-test outcomes in a local SQLite database
// so regressions across image builds can be spotted without keeping raw
// transcripts around.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustica-os/boottest/pkg/boottest"
)

const schema = `
CREATE TABLE IF NOT EXISTS boot_runs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	target        TEXT NOT NULL,
	indeterminate INTEGER NOT NULL DEFAULT 0,
	passed        INTEGER NOT NULL DEFAULT 0,
	total         INTEGER NOT NULL DEFAULT 0,
	success       INTEGER NOT NULL DEFAULT 0,
	checks        TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_boot_runs_target ON boot_runs(target);
`

// Run is one recorded classification outcome.
type Run struct {
	ID            int
	RecordedAt    time.Time
	Target        boottest.Target
	Indeterminate bool
	Passed        int
	Total         int
	Success       bool
	Checks        []boottest.CheckResult
}

// DefaultPath returns the database location, honoring the
// RUSTICA_BOOTTEST_DB override.
func DefaultPath() string {
	if path := os.Getenv("RUSTICA_BOOTTEST_DB"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".rustica", "boottest.db")
}

// Open opens the database at path, creating the file and schema on first
// use.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Record inserts one outcome. Indeterminate outcomes are stored with zero
// counts and the flag set, never as failed verdicts.
func Record(db *sql.DB, out boottest.Outcome) error {
	checks := out.Verdict.Checks
	if checks == nil {
		checks = []boottest.CheckResult{}
	}
	detail, err := json.Marshal(checks)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO boot_runs (target, indeterminate, passed, total, success, checks)
		VALUES (?, ?, ?, ?, ?, ?)
	`, string(out.Target), out.Indeterminate,
		out.Verdict.Passed, out.Verdict.Total, out.Verdict.Success, string(detail))
	if err != nil {
		return fmt.Errorf("failed to record run for %s: %w", out.Target, err)
	}
	return nil
}

// RecordAll inserts every outcome in one transaction so a report run is
// either fully recorded or not at all.
func RecordAll(db *sql.DB, outcomes []boottest.Outcome) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, out := range outcomes {
		checks := out.Verdict.Checks
		if checks == nil {
			checks = []boottest.CheckResult{}
		}
		detail, err := json.Marshal(checks)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO boot_runs (target, indeterminate, passed, total, success, checks)
			VALUES (?, ?, ?, ?, ?, ?)
		`, string(out.Target), out.Indeterminate,
			out.Verdict.Passed, out.Verdict.Total, out.Verdict.Success, string(detail))
		if err != nil {
			return fmt.Errorf("failed to record run for %s: %w", out.Target, err)
		}
	}

	return tx.Commit()
}

// List returns the most recent runs, newest first.
func List(db *sql.DB, limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT id, recorded_at, target, indeterminate, passed, total, success, checks
		FROM boot_runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var target, detail string
		if err := rows.Scan(&run.ID, &run.RecordedAt, &target,
			&run.Indeterminate, &run.Passed, &run.Total, &run.Success, &detail); err != nil {
			return nil, err
		}
		run.Target = boottest.Target(target)
		if err := json.Unmarshal([]byte(detail), &run.Checks); err != nil {
			return nil, fmt.Errorf("corrupt check detail for run %d: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
