package session

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"slate/internal/log"
)

// historySchema holds completed runs. The single table is created
// inline on open.
const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	file_path TEXT NOT NULL,
	exit_code INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	output_bytes INTEGER NOT NULL,
	started_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// RunRecord is one completed run.
type RunRecord struct {
	ID          string
	FilePath    string
	ExitCode    int
	Duration    time.Duration
	OutputBytes int64
	StartedAt   time.Time
}

// History is the SQLite-backed run history repository.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if needed) the run history database at
// path.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	log.Debug(log.CatSession, "Run history opened", "path", path)
	return &History{db: db}, nil
}

// Record inserts a completed run. A zero ID gets a fresh UUID, which
// is written back to rec.
func (h *History) Record(rec *RunRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := h.db.Exec(
		`INSERT INTO runs (id, file_path, exit_code, duration_ms, output_bytes, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.FilePath, rec.ExitCode, rec.Duration.Milliseconds(),
		rec.OutputBytes, rec.StartedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}
	return nil
}

// Recent returns the newest runs first, at most limit of them.
func (h *History) Recent(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.Query(
		`SELECT id, file_path, exit_code, duration_ms, output_bytes, started_at
		 FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var durationMs int64
		if err := rows.Scan(&rec.ID, &rec.FilePath, &rec.ExitCode,
			&durationMs, &rec.OutputBytes, &rec.StartedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", err)
	}
	return records, nil
}

// Close releases the underlying database handle.
func (h *History) Close() error {
	return h.db.Close()
}
