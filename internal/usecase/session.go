package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bluestock/ipoboard"
)

// SessionUsecase is the single source of truth for "who is logged in".
//
// Authentication is deliberately a placeholder: any non-empty credentials
// establish a session and no password is ever verified against a stored
// credential. All failures are soft booleans; no error is returned for a
// rejected login.
type SessionUsecase struct {
	repo SessionRepository
	ttl  time.Duration
}

func NewSessionUsecase(repo SessionRepository, ttl time.Duration) *SessionUsecase {
	return &SessionUsecase{repo: repo, ttl: ttl}
}

// Login establishes a session whenever both email and password are
// non-empty. The display name is derived from the email's local part.
func (uc *SessionUsecase) Login(ctx context.Context, email, password string) (ipoboard.Session, bool, error) {
	if email == "" || password == "" {
		return ipoboard.Session{}, false, nil
	}

	session := ipoboard.Session{
		ID:    uuid.NewString(),
		Email: email,
		Name:  localPart(email),
	}
	if err := uc.repo.Save(ctx, session, uc.ttl); err != nil {
		return ipoboard.Session{}, false, err
	}
	return session, true, nil
}

// Signup establishes a session whenever name, email and password are all
// non-empty. Its effect is identical to Login.
func (uc *SessionUsecase) Signup(ctx context.Context, name, email, password string) (ipoboard.Session, bool, error) {
	if name == "" || email == "" || password == "" {
		return ipoboard.Session{}, false, nil
	}

	session := ipoboard.Session{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
	if err := uc.repo.Save(ctx, session, uc.ttl); err != nil {
		return ipoboard.Session{}, false, err
	}
	return session, true, nil
}

// ResetPassword acknowledges any non-empty email. No reset is performed.
func (uc *SessionUsecase) ResetPassword(ctx context.Context, email string) bool {
	return email != ""
}

// Logout destroys the session unconditionally. Logging out an unknown or
// already-cleared session is not an error.
func (uc *SessionUsecase) Logout(ctx context.Context, id string) error {
	err := uc.repo.Delete(ctx, id)
	if err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

// Current rehydrates a session from durable storage. A stored payload is
// trusted as-is; credentials are not re-validated.
func (uc *SessionUsecase) Current(ctx context.Context, id string) (ipoboard.Session, error) {
	return uc.repo.Load(ctx, id)
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
