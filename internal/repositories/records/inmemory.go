package records

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pokemon-5e/internal/errors"
	"github.com/KirkDiggler/pokemon-5e/internal/pkg/clock"
)

// InMemoryRepository implements Repository with a process-local map.
// Used when no Redis address is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Record
}

// NewInMemory creates a new in-memory repository. A nil clock uses wall time.
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a cached record by URL
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateURL(input.URL); err != nil {
		return nil, err
	}

	r.mu.RLock()
	record, exists := r.store[input.URL]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFound("record not found").WithMeta("url", input.URL)
	}

	if r.clock.Now().After(record.ExpiresAt) {
		r.mu.Lock()
		// another writer may have refreshed it meanwhile
		if current, ok := r.store[input.URL]; ok && current == record {
			delete(r.store, input.URL)
		}
		r.mu.Unlock()
		return nil, errors.NotFound("record has expired").WithMeta("url", input.URL)
	}

	return &GetOutput{Record: copyRecord(record)}, nil
}

// Put stores a record
func (r *InMemoryRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	record, _, err := newRecord(input, r.clock.Now())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.store[input.URL] = record
	r.mu.Unlock()

	return &PutOutput{Record: copyRecord(record)}, nil
}

// Delete removes a record
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateURL(input.URL); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.URL]
	delete(r.store, input.URL)

	return &DeleteOutput{Deleted: exists}, nil
}

// Len reports the number of entries, expired ones included.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}

// copyRecord returns a copy so callers cannot modify cached bytes
func copyRecord(record *Record) *Record {
	out := *record
	out.Body = append([]byte(nil), record.Body...)
	return &out
}
