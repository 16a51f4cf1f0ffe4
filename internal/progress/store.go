// Package progress holds the single source of truth for job state: a
// concurrency-safe map from job ID to the latest JobRecord. One worker
// writes per job; any number of polling requests read.
package progress

import (
	"sync"

	"github.com/ytget/ytfetch/internal/model"
)

// Store is a concurrency-safe job record table. Records are replaced
// wholesale on every update, never merged, so readers always observe a
// complete snapshot.
type Store struct {
	mu      sync.RWMutex
	records map[string]model.JobRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]model.JobRecord),
	}
}

// Put replaces the record for id. Once a terminal record is stored, later
// writes for the same id are dropped; the terminal write is the last write
// the store ever accepts for a job.
func (s *Store) Put(id string, rec model.JobRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[id]; ok && existing.Status.IsTerminal() {
		return
	}
	s.records[id] = rec
}

// Get returns the current record for id, or the unknown sentinel if the
// store has never seen it. Polling never fails.
func (s *Store) Get(id string) model.JobRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return model.UnknownRecord()
	}
	return rec
}

// Len returns the number of tracked jobs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
