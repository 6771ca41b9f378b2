package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/domain"
)

// Definition parameterizes a Collection with everything that differs
// between the five record types: the collection name, the status
// enumeration (first entry is the draft default), a default-value factory
// and an id setter.
type Definition[T ipoboard.Record] struct {
	Name     string
	Statuses []string
	Defaults func() T
	WithID   func(T, int) T
	StatusOf func(T) string
}

// Collection manages one typed list of records plus the pending-delete
// selection needed to make deletion a two-step confirmation.
type Collection[T ipoboard.Record] struct {
	def    Definition[T]
	repo   CollectionRepository[T]
	signal Publisher

	mu            sync.Mutex
	pendingDelete *int
}

func NewCollection[T ipoboard.Record](def Definition[T], repo CollectionRepository[T], signal Publisher) *Collection[T] {
	return &Collection[T]{def: def, repo: repo, signal: signal}
}

// Name returns the collection's route/event name.
func (uc *Collection[T]) Name() string { return uc.def.Name }

// Statuses returns the valid status values for this record type.
func (uc *Collection[T]) Statuses() []string { return slices.Clone(uc.def.Statuses) }

// NewDraft resets the edit buffer to type defaults: zero fields and the
// first enumerated status, with no record selected (id 0).
func (uc *Collection[T]) NewDraft() T {
	return uc.def.Defaults()
}

// SetID rewrites the draft's identifier. Submit treats id 0 as create
// mode and anything else as edit mode.
func (uc *Collection[T]) SetID(draft T, id int) T {
	return uc.def.WithID(draft, id)
}

// DraftFrom copies the selected record's fields into an edit buffer
// verbatim.
func (uc *Collection[T]) DraftFrom(record T) T {
	return record
}

// List returns a snapshot of the collection in insertion order.
func (uc *Collection[T]) List(ctx context.Context) ([]T, error) {
	return uc.repo.List(ctx)
}

// Get is the read-only projection of one record.
func (uc *Collection[T]) Get(ctx context.Context, id int) (T, error) {
	return uc.repo.Get(ctx, id)
}

// Submit stores the draft. A draft carrying an id replaces that record's
// fields in place (id immutable, order unchanged); a draft without one is
// assigned 1 + max(existing ids) and appended. An edit whose target has
// disappeared is a silent no-op.
func (uc *Collection[T]) Submit(ctx context.Context, draft T) (T, error) {
	if status := uc.def.StatusOf(draft); !slices.Contains(uc.def.Statuses, status) {
		return draft, domain.InvalidStatusError{Status: status}
	}

	if id := draft.RecordID(); id != 0 {
		err := uc.repo.Update(ctx, draft)
		if errors.Is(err, domain.ErrNotFound) {
			return draft, nil
		}
		if err != nil {
			return draft, err
		}
		uc.publish(ctx, "update", id)
		return draft, nil
	}

	id, err := uc.nextID(ctx)
	if err != nil {
		return draft, err
	}
	draft = uc.def.WithID(draft, id)
	if err := uc.repo.Create(ctx, draft); err != nil {
		return draft, err
	}
	uc.publish(ctx, "create", id)
	return draft, nil
}

// StageDelete captures the record a confirmation dialog is being shown
// for. Deletion only ever happens through ConfirmDelete.
func (uc *Collection[T]) StageDelete(record T) {
	id := record.RecordID()
	uc.mu.Lock()
	uc.pendingDelete = &id
	uc.mu.Unlock()
}

// ConfirmDelete removes the record captured by StageDelete. With no
// pending target it is a no-op, as is a target already removed. The
// returned bool reports whether a delete was attempted.
func (uc *Collection[T]) ConfirmDelete(ctx context.Context) (bool, error) {
	uc.mu.Lock()
	pending := uc.pendingDelete
	uc.pendingDelete = nil
	uc.mu.Unlock()

	if pending == nil {
		return false, nil
	}

	err := uc.repo.Delete(ctx, *pending)
	if errors.Is(err, domain.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return true, err
	}
	uc.publish(ctx, "delete", *pending)
	return true, nil
}

// Delete stages and confirms in one call; the REST surface has no
// separate dialog round-trip, the client's confirmation precedes the
// request.
func (uc *Collection[T]) Delete(ctx context.Context, id int) error {
	err := uc.repo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	uc.publish(ctx, "delete", id)
	return nil
}

func (uc *Collection[T]) nextID(ctx context.Context) (int, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, r := range records {
		if r.RecordID() > max {
			max = r.RecordID()
		}
	}
	return max + 1, nil
}

func (uc *Collection[T]) publish(ctx context.Context, action string, id int) {
	if uc.signal == nil {
		return
	}
	event := ipoboard.Event{Collection: uc.def.Name, Action: action, ID: id}
	if err := uc.signal.Publish(ctx, uc.def.Name, event); err != nil {
		slog.WarnContext(ctx, "failed to publish collection event",
			slog.String("collection", uc.def.Name),
			slog.String("error", err.Error()),
		)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
