package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/domain"
)

// Memory is the default collection store: a mutex-guarded slice holding
// records in insertion order. It matches the source system, where every
// collection lives in page-local memory for the lifetime of the session.
type Memory[T ipoboard.Record] struct {
	mu      sync.RWMutex
	records []T
}

func NewMemory[T ipoboard.Record](seed ...T) *Memory[T] {
	return &Memory[T]{records: slices.Clone(seed)}
}

func (r *Memory[T]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.records), nil
}

func (r *Memory[T]) Get(ctx context.Context, id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.records {
		if record.RecordID() == id {
			return record, nil
		}
	}
	var zero T
	return zero, domain.NotFoundError{Resource: "record"}
}

func (r *Memory[T]) Create(ctx context.Context, record T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *Memory[T]) Update(ctx context.Context, record T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.records {
		if existing.RecordID() == record.RecordID() {
			r.records[i] = record
			return nil
		}
	}
	return domain.NotFoundError{Resource: "record"}
}

func (r *Memory[T]) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.records {
		if existing.RecordID() == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "record"}
}
