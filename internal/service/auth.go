package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/usecase"
)

var tracer = otel.Tracer("auth")

const tokenSubject = "ipoboard"

// AuthService mints and validates the session tokens that stand between
// the route guard and durable session storage. Validated sessions are
// held in a short in-process cache so the guard does not hit storage on
// every request.
type AuthService struct {
	secret   []byte
	ttl      time.Duration
	sessions *usecase.SessionUsecase
	cache    *cache.Cache
}

func NewAuthService(secret string, ttl time.Duration, sessions *usecase.SessionUsecase) *AuthService {
	return &AuthService{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: sessions,
		cache:    cache.New(time.Minute, 5*time.Minute),
	}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// IssueToken returns a signed token carrying the session id.
func (s *AuthService) IssueToken(session ipoboard.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tokenSubject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		SessionID: session.ID,
	})
	return token.SignedString(s.secret)
}

// Authenticate resolves a token to its stored session. A token whose
// session payload has been removed from storage (logout, expiry) is
// rejected even if the signature is still valid.
func (s *AuthService) Authenticate(ctx context.Context, token string) (ipoboard.Session, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Authenticate")
	defer span.End()

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		span.RecordError(errors.Wrap(err, "token validation failed"))
		return ipoboard.Session{}, err
	}
	if !parsed.Valid || claims.Subject != tokenSubject {
		err := fmt.Errorf("invalid token")
		span.RecordError(err)
		return ipoboard.Session{}, err
	}

	if cached, ok := s.cache.Get(claims.SessionID); ok {
		return cached.(ipoboard.Session), nil
	}

	session, err := s.sessions.Current(ctx, claims.SessionID)
	if err != nil {
		span.RecordError(errors.Wrap(err, "session lookup failed"))
		return ipoboard.Session{}, err
	}

	s.cache.SetDefault(claims.SessionID, session)
	return session, nil
}

// Invalidate drops a session from the local cache; called on logout so a
// revoked token stops authenticating immediately on this instance.
func (s *AuthService) Invalidate(sessionID string) {
	s.cache.Delete(sessionID)
}

// SessionID extracts the session id from a token without consulting
// storage.
func (s *AuthService) SessionID(token string) (string, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.SessionID, nil
}
