package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionRepository keeps session payloads in redis, the server-side
// analogue of the browser's durable storage entry. Absence of the key
// means logged out.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Save(ctx context.Context, session ipoboard.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}
	err = r.rdb.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl).Err()
	return errors.Wrap(err, "failed to store session")
}

func (r *SessionRepository) Load(ctx context.Context, id string) (ipoboard.Session, error) {
	payload, err := r.rdb.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return ipoboard.Session{}, domain.NotFoundError{Resource: "session"}
	}
	if err != nil {
		return ipoboard.Session{}, errors.Wrap(err, "failed to load session")
	}

	var session ipoboard.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return ipoboard.Session{}, errors.Wrap(err, "failed to decode session")
	}
	return session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	err := r.rdb.Del(ctx, sessionKeyPrefix+id).Err()
	return errors.Wrap(err, "failed to delete session")
}
