// Package sqlite provides a SQLite-backed implementation of the
// storage.Archive interface using Go's standard database/sql package.
//
// Each snapshot is one row: a UUID, the time it was taken, how many
// students it holds, and the student list itself as a JSON document.
// Students are opaque records, so the JSON column is the only schema that
// fits them.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/students-board/internal/config"
	"github.com/aanand-mishra/students-board/internal/storage"
	"github.com/aanand-mishra/students-board/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Archive.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB

	now func() time.Time
}

var _ storage.Archive = (*SQLite)(nil)

// New opens the SQLite database at cfg.StoragePath, creates the
// snapshots table if it does not already exist, and returns a
// ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Schema:
	//   id       — UUID v4 string
	//   taken_at — unix nanoseconds
	//   count    — number of students in the payload
	//   payload  — the student list as a JSON array
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id       TEXT    PRIMARY KEY,
			taken_at INTEGER NOT NULL,
			count    INTEGER NOT NULL,
			payload  TEXT    NOT NULL
		)
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db, now: time.Now}, nil
}

// SaveSnapshot inserts students as a new snapshot row.
func (s *SQLite) SaveSnapshot(students []types.Student) (storage.Snapshot, error) {
	if students == nil {
		students = []types.Student{}
	}

	payload, err := json.Marshal(students)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("SaveSnapshot: encode: %w", err)
	}

	snap := storage.Snapshot{
		ID:      uuid.NewString(),
		TakenAt: s.now().UTC(),
		Count:   len(students),
	}

	stmt, err := s.Db.Prepare(
		"INSERT INTO snapshots (id, taken_at, count, payload) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return storage.Snapshot{}, fmt.Errorf("SaveSnapshot: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(snap.ID, snap.TakenAt.UnixNano(), snap.Count, string(payload)); err != nil {
		return storage.Snapshot{}, fmt.Errorf("SaveSnapshot: exec: %w", err)
	}

	return snap, nil
}

// Snapshots lists snapshot metadata, newest first.
func (s *SQLite) Snapshots(limit int) ([]storage.Snapshot, error) {
	if limit <= 0 {
		// SQLite treats a negative LIMIT as "no limit"
		limit = -1
	}

	stmt, err := s.Db.Prepare(
		"SELECT id, taken_at, count FROM snapshots ORDER BY taken_at DESC, rowid DESC LIMIT ?",
	)
	if err != nil {
		return nil, fmt.Errorf("Snapshots: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(limit)
	if err != nil {
		return nil, fmt.Errorf("Snapshots: query: %w", err)
	}
	defer rows.Close()

	snaps := make([]storage.Snapshot, 0)

	for rows.Next() {
		var (
			snap    storage.Snapshot
			takenAt int64
		)
		if err := rows.Scan(&snap.ID, &takenAt, &snap.Count); err != nil {
			return nil, fmt.Errorf("Snapshots: scan row: %w", err)
		}
		snap.TakenAt = time.Unix(0, takenAt).UTC()

		snaps = append(snaps, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Snapshots: rows iteration: %w", err)
	}

	return snaps, nil
}

// SnapshotByID fetches one snapshot and decodes its students.
func (s *SQLite) SnapshotByID(id string) (storage.Snapshot, []types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, taken_at, count, payload FROM snapshots WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return storage.Snapshot{}, nil, fmt.Errorf("SnapshotByID: prepare: %w", err)
	}
	defer stmt.Close()

	var (
		snap    storage.Snapshot
		takenAt int64
		payload string
	)
	err = stmt.QueryRow(id).Scan(&snap.ID, &takenAt, &snap.Count, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Snapshot{}, nil, fmt.Errorf("%w: %s", storage.ErrSnapshotNotFound, id)
		}
		return storage.Snapshot{}, nil, fmt.Errorf("SnapshotByID: scan: %w", err)
	}
	snap.TakenAt = time.Unix(0, takenAt).UTC()

	students := make([]types.Student, 0, snap.Count)
	if err := json.Unmarshal([]byte(payload), &students); err != nil {
		return storage.Snapshot{}, nil, fmt.Errorf("SnapshotByID: decode: %w", err)
	}

	return snap, students, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
