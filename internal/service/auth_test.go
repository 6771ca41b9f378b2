package service

import (
	"context"
	"testing"
	"time"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/domain"
	"github.com/bluestock/ipoboard/internal/usecase"
)

type mapSessionRepo struct {
	sessions map[string]ipoboard.Session
}

func (m *mapSessionRepo) Save(ctx context.Context, s ipoboard.Session, ttl time.Duration) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *mapSessionRepo) Load(ctx context.Context, id string) (ipoboard.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return ipoboard.Session{}, domain.NotFoundError{Resource: "session"}
	}
	return s, nil
}

func (m *mapSessionRepo) Delete(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func newAuthFixture() (*AuthService, *usecase.SessionUsecase, *mapSessionRepo) {
	repo := &mapSessionRepo{sessions: map[string]ipoboard.Session{}}
	sessions := usecase.NewSessionUsecase(repo, time.Hour)
	auth := NewAuthService("test-secret", time.Hour, sessions)
	return auth, sessions, repo
}

func TestIssueAndAuthenticate(t *testing.T) {
	auth, sessions, _ := newAuthFixture()
	ctx := context.Background()

	session, ok, err := sessions.Login(ctx, "admin@bluestock.com", "pw")
	if !ok || err != nil {
		t.Fatalf("login: ok=%v err=%v", ok, err)
	}

	token, err := auth.IssueToken(session)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	got, err := auth.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.Email != "admin@bluestock.com" {
		t.Errorf("authenticated email = %q", got.Email)
	}
}

func TestAuthenticateGarbageToken(t *testing.T) {
	auth, _, _ := newAuthFixture()
	if _, err := auth.Authenticate(context.Background(), "not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestAuthenticateWrongSecret(t *testing.T) {
	auth, sessions, _ := newAuthFixture()
	ctx := context.Background()

	session, _, _ := sessions.Login(ctx, "admin@bluestock.com", "pw")
	token, _ := auth.IssueToken(session)

	other := NewAuthService("different-secret", time.Hour, sessions)
	if _, err := other.Authenticate(ctx, token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestAuthenticateAfterLogout(t *testing.T) {
	auth, sessions, _ := newAuthFixture()
	ctx := context.Background()

	session, _, _ := sessions.Login(ctx, "admin@bluestock.com", "pw")
	token, _ := auth.IssueToken(session)

	if err := sessions.Logout(ctx, session.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	auth.Invalidate(session.ID)

	if _, err := auth.Authenticate(ctx, token); err == nil {
		t.Fatal("token still authenticates after logout")
	}
}

func TestSessionID(t *testing.T) {
	auth, sessions, _ := newAuthFixture()
	ctx := context.Background()

	session, _, _ := sessions.Login(ctx, "admin@bluestock.com", "pw")
	token, _ := auth.IssueToken(session)

	sid, err := auth.SessionID(token)
	if err != nil {
		t.Fatalf("session id: %v", err)
	}
	if sid != session.ID {
		t.Errorf("sid = %q, want %q", sid, session.ID)
	}
}
