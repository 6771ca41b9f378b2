package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bluestock/ipoboard/internal/domain"
	"github.com/bluestock/ipoboard/internal/present/rest/presenter"
	"github.com/bluestock/ipoboard/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// IdentifyIdentity resolves the bearer token, if any, into the requester
// identity and stores it on the request context. It never rejects; route
// gating is Guard's job.
func (m *AuthMiddleware) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyIdentity")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skipCheckAuthorization
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skipCheckAuthorization
			}

			session, err := m.auth.Authenticate(ctx, token)
			if err != nil {
				span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifyIdentity: authentication failed"))
				goto skipCheckAuthorization
			}

			ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, session.ID)
			ctx = context.WithValue(ctx, domain.RequesterEmailCtxKey, session.Email)
			ctx = context.WithValue(ctx, domain.SessionTokenCtxKey, token)
			span.SetAttributes(attribute.String("RequesterId", session.ID))
		}

	skipCheckAuthorization:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Guard applies the route-guard decision for the given logical route:
// unauthenticated requests to the dashboard subtree are bounced to the
// login route, authenticated requests to the auth forms are bounced to
// the dashboard. It must run after IdentifyIdentity.
func (m *AuthMiddleware) Guard(route string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.Guard")
			defer span.End()
			c.SetRequest(c.Request().WithContext(ctx))

			authenticated := ctx.Value(domain.RequesterIdCtxKey) != nil
			decision := domain.ResolveRoute(authenticated, route)
			span.SetAttributes(
				attribute.String("route", route),
				attribute.String("decision", decision.String()),
			)

			switch decision {
			case domain.RedirectLogin:
				return presenter.Unauthorized(c, decision.Target(route))
			case domain.RedirectDashboard:
				return presenter.SeeOther(c, decision.Target(route))
			}
			return next(c)
		}
	}
}
