package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/domain"
	"github.com/bluestock/ipoboard/internal/service"
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

func newFixture(t *testing.T) (*AuthMiddleware, string) {
	t.Helper()

	sessions := usecase.NewSessionUsecase(&mapSessionRepo{sessions: map[string]ipoboard.Session{}}, time.Hour)
	auth := service.NewAuthService("test-secret", time.Hour, sessions)

	session, ok, err := sessions.Login(context.Background(), "user@example.com", "pw")
	if err != nil || !ok {
		t.Fatalf("login failed: ok = %v, err = %v", ok, err)
	}
	token, err := auth.IssueToken(session)
	if err != nil {
		t.Fatal(err)
	}
	return NewAuthMiddleware(auth), token
}

func invoke(mw echo.MiddlewareFunc, next echo.HandlerFunc, header string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, c
}

func TestIdentifyIdentityWithValidToken(t *testing.T) {
	authmw, token := newFixture(t)

	var requesterID, requesterEmail any
	next := func(c echo.Context) error {
		ctx := c.Request().Context()
		requesterID = ctx.Value(domain.RequesterIdCtxKey)
		requesterEmail = ctx.Value(domain.RequesterEmailCtxKey)
		return c.NoContent(http.StatusOK)
	}

	rec, _ := invoke(authmw.IdentifyIdentity, next, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if requesterID == nil {
		t.Fatal("requester id not set")
	}
	if requesterEmail != "user@example.com" {
		t.Errorf("requester email = %v", requesterEmail)
	}
}

func TestIdentifyIdentityPassesThroughBadTokens(t *testing.T) {
	authmw, _ := newFixture(t)

	headers := []string{
		"",
		"Bearer not-a-jwt",
		"Basic dXNlcjpwdw==",
		"Bearer",
	}

	for _, header := range headers {
		var requesterID any
		next := func(c echo.Context) error {
			requesterID = c.Request().Context().Value(domain.RequesterIdCtxKey)
			return c.NoContent(http.StatusOK)
		}

		rec, _ := invoke(authmw.IdentifyIdentity, next, header)
		if rec.Code != http.StatusOK {
			t.Errorf("header %q: status = %d, identity resolution must not reject", header, rec.Code)
		}
		if requesterID != nil {
			t.Errorf("header %q: requester id unexpectedly set", header)
		}
	}
}

func TestGuardBlocksDashboardWithoutIdentity(t *testing.T) {
	authmw, _ := newFixture(t)

	next := func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	}

	rec, _ := invoke(authmw.Guard(domain.RouteDashboard), next, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGuardAdmitsDashboardWithIdentity(t *testing.T) {
	authmw, token := newFixture(t)

	handled := false
	next := func(c echo.Context) error {
		handled = true
		return c.NoContent(http.StatusOK)
	}

	chained := authmw.IdentifyIdentity(authmw.Guard(domain.RouteDashboard)(next))
	rec, _ := invoke(func(n echo.HandlerFunc) echo.HandlerFunc { return chained }, next, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !handled {
		t.Fatal("handler did not run")
	}
}

func TestGuardBouncesAuthenticatedFromAuthRoutes(t *testing.T) {
	authmw, token := newFixture(t)

	for _, route := range []string{domain.RouteLogin, domain.RouteSignup, domain.RouteForgotPassword} {
		next := func(c echo.Context) error {
			t.Fatalf("handler must not run for %s", route)
			return nil
		}

		chained := authmw.IdentifyIdentity(authmw.Guard(route)(next))
		rec, _ := invoke(func(n echo.HandlerFunc) echo.HandlerFunc { return chained }, next, "Bearer "+token)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("route %s: status = %d, want 303", route, rec.Code)
		}
	}
}

func TestGuardAdmitsAnonymousToAuthRoutes(t *testing.T) {
	authmw, _ := newFixture(t)

	handled := false
	next := func(c echo.Context) error {
		handled = true
		return c.NoContent(http.StatusOK)
	}

	rec, _ := invoke(authmw.Guard(domain.RouteLogin), next, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !handled {
		t.Fatal("handler did not run")
	}
}
