package store

import (
	"context"
	"sync"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/models"
)

// MemoryStore is an in-memory implementation of RecordStore. It backs the
// "memory" store type and doubles as the test fake: injected failures let
// callers exercise the same error paths a managed store produces.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*models.Submission

	putErr  error
	readErr error
}

// NewMemoryStore creates a new MemoryStore instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*models.Submission),
	}
}

// Put implements RecordStore.Put
func (m *MemoryStore) Put(ctx context.Context, sub *models.Submission) error {
	if sub == nil || sub.ID == "" {
		return NewStoreError("Put", "", ErrInvalidRecord)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.putErr != nil {
		return NewStoreError("Put", sub.ID, m.putErr)
	}

	copied := *sub
	m.records[sub.ID] = &copied
	return nil
}

// Get implements RecordStore.Get
func (m *MemoryStore) Get(ctx context.Context, id string) (*models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.readErr != nil {
		return nil, NewStoreError("Get", id, m.readErr)
	}

	sub, exists := m.records[id]
	if !exists {
		return nil, nil
	}

	// Return a copy so callers cannot mutate stored state
	copied := *sub
	return &copied, nil
}

// ScanAll implements RecordStore.ScanAll
func (m *MemoryStore) ScanAll(ctx context.Context) ([]*models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.readErr != nil {
		return nil, NewStoreError("ScanAll", "", m.readErr)
	}

	subs := make([]*models.Submission, 0, len(m.records))
	for _, sub := range m.records {
		copied := *sub
		subs = append(subs, &copied)
	}
	return subs, nil
}

// Close implements RecordStore.Close
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make(map[string]*models.Submission)
	return nil
}

// Additional methods for testing

// FailPuts makes every subsequent Put fail with the given cause
func (m *MemoryStore) FailPuts(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putErr = err
}

// FailReads makes every subsequent Get and ScanAll fail with the given cause
func (m *MemoryStore) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// Reset clears all stored records and injected failures
func (m *MemoryStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]*models.Submission)
	m.putErr = nil
	m.readErr = nil
}

// Count returns the number of stored records
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Has checks if a record exists (without error handling)
func (m *MemoryStore) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.records[id]
	return exists
}
