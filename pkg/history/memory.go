package history

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore implements Store using in-memory storage. This is the default
// store; all records are lost when the process exits.
//
// MemoryStore is thread-safe and supports concurrent access.
type MemoryStore struct {
	// records holds runs in insertion order (oldest first).
	records []*Record

	// mu protects access to records.
	mu sync.RWMutex

	// maxRecords caps the number of retained records; oldest are evicted.
	maxRecords int
}

// MemoryStoreConfig configures the memory store.
type MemoryStoreConfig struct {
	// MaxRecords is the maximum number of records to retain.
	// Default: 10,000
	MaxRecords int
}

// NewMemoryStore creates an in-memory history store with default settings.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithConfig(MemoryStoreConfig{})
}

// NewMemoryStoreWithConfig creates an in-memory store with custom configuration.
func NewMemoryStoreWithConfig(cfg MemoryStoreConfig) *MemoryStore {
	if cfg.MaxRecords <= 0 {
		cfg.MaxRecords = 10000
	}
	return &MemoryStore{
		records:    make([]*Record, 0),
		maxRecords: cfg.MaxRecords,
	}
}

// Save persists a record.
func (m *MemoryStore) Save(ctx context.Context, record *Record) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if record.ID == "" {
		return fmt.Errorf("record ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.records) >= m.maxRecords {
		// Evict the oldest record
		m.records = m.records[1:]
	}

	stored := *record
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	m.records = append(m.records, &stored)

	return nil
}

// List returns the most recent records, newest first.
func (m *MemoryStore) List(ctx context.Context, limit int) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.records)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]*Record, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		copied := *m.records[i]
		out = append(out, &copied)
	}
	return out, nil
}

// Prune removes records older than the given time.
func (m *MemoryStore) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.records[:0]
	removed := 0
	for _, record := range m.records {
		if record.CreatedAt.Before(olderThan) {
			removed++
			continue
		}
		kept = append(kept, record)
	}
	m.records = kept

	return removed, nil
}

// Close releases resources. It is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
