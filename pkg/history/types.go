package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vitae-hq/vitae/pkg/report"
)

// Record is the stored outcome of one validation run.
type Record struct {
	// ID uniquely identifies the run.
	ID string

	// Source is the document that was validated (file path, or "inline"
	// for programmatic input).
	Source string

	// Valid is the structural outcome of the run.
	Valid bool

	// Errors, Warnings and UnknownFields are the message counts.
	Errors        int
	Warnings      int
	UnknownFields int

	// CreatedAt is when the run finished, in UTC.
	CreatedAt time.Time
}

// NewRecord builds a history record from a validation result.
func NewRecord(source string, result *report.Result) *Record {
	return &Record{
		ID:            uuid.NewString(),
		Source:        source,
		Valid:         result.Valid,
		Errors:        len(result.Errors()),
		Warnings:      len(result.Warnings()),
		UnknownFields: len(result.UnknownFields),
		CreatedAt:     time.Now().UTC(),
	}
}

// Store persists validation run records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save persists a record. Returns an error on failure.
	Save(ctx context.Context, record *Record) error

	// List returns the most recent records, newest first, up to limit.
	// A limit <= 0 returns all records.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Prune removes records older than the given time.
	// It returns the number of records removed.
	Prune(ctx context.Context, olderThan time.Time) (int, error)

	// Close releases any resources held by the store.
	// The store should not be used after calling Close.
	Close() error
}
