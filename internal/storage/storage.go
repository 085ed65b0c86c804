// Package storage defines the snapshot archive: a history of every student
// list the loader published.
//
// The archive is write-mostly history. Nothing reads it back into the
// student store; a failed load leaves the store empty no matter what the
// archive holds.
package storage

import (
	"errors"
	"log/slog"
	"time"

	"github.com/aanand-mishra/students-board/internal/types"
)

// ErrSnapshotNotFound is returned when no snapshot has the requested ID.
var ErrSnapshotNotFound = errors.New("storage: snapshot not found")

// Snapshot describes one archived student list.
type Snapshot struct {
	ID      string    `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Count   int       `json:"count"`
}

// Archive is the storage contract.
// Any concrete type that implements ALL of these methods satisfies it; the
// CLI only ever talks to this interface.
type Archive interface {
	// SaveSnapshot stores students as a new snapshot and returns its
	// metadata.
	SaveSnapshot(students []types.Student) (Snapshot, error)

	// Snapshots returns up to limit snapshots, newest first. A limit of
	// zero or less means no limit. Returns an empty slice (not nil) when
	// the archive is empty.
	Snapshots(limit int) ([]Snapshot, error)

	// SnapshotByID returns one snapshot and the students it holds, or
	// ErrSnapshotNotFound.
	SnapshotByID(id string) (Snapshot, []types.Student, error)

	// Close releases the underlying database.
	Close() error
}

// Recorder returns a store subscriber that archives every published
// student list.
//
// The store calls a new subscriber immediately with its current value;
// that first call is skipped so only real replacements are recorded.
// Archive failures are logged and otherwise ignored. The store never
// calls one subscriber from two goroutines at once, so the skip flag needs
// no lock.
func Recorder(archive Archive, logger *slog.Logger) func([]types.Student) {
	if logger == nil {
		logger = slog.Default()
	}

	first := true
	return func(students []types.Student) {
		if first {
			first = false
			return
		}

		snap, err := archive.SaveSnapshot(students)
		if err != nil {
			logger.Error("failed to archive students",
				slog.String("error", err.Error()))
			return
		}

		logger.Info("students archived",
			slog.String("snapshot", snap.ID),
			slog.Int("count", snap.Count))
	}
}
