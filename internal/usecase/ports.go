package usecase

import (
	"context"
	"time"

	"github.com/bluestock/ipoboard"
)

// SessionRepository persists session payloads to durable storage. The
// stored payload is the only signal that a requester is authenticated;
// absence means logged out.
type SessionRepository interface {
	Save(ctx context.Context, session ipoboard.Session, ttl time.Duration) error
	Load(ctx context.Context, id string) (ipoboard.Session, error)
	Delete(ctx context.Context, id string) error
}

// CollectionRepository stores one typed list of records in insertion
// order.
type CollectionRepository[T ipoboard.Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, record T) error
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, id int) error
}

// Publisher fans collection change events out to realtime subscribers.
type Publisher interface {
	Publish(ctx context.Context, channel string, event ipoboard.Event) error
}
