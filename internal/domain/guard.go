package domain

import "strings"

// RouteDecision is the outcome of evaluating a navigation attempt.
type RouteDecision int

const (
	// RenderRequested lets the requested route through unchanged.
	RenderRequested RouteDecision = iota
	// RedirectLogin sends an unauthenticated requester to the login route.
	RedirectLogin
	// RedirectDashboard sends an already-authenticated requester away from
	// the auth forms, preventing re-authentication loops.
	RedirectDashboard
)

func (d RouteDecision) String() string {
	switch d {
	case RenderRequested:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectDashboard:
		return "redirect-dashboard"
	default:
		return "unknown"
	}
}

// Target returns the route the decision resolves to, given the requested
// path.
func (d RouteDecision) Target(path string) string {
	switch d {
	case RedirectLogin:
		return RouteLogin
	case RedirectDashboard:
		return RouteDashboard
	default:
		return path
	}
}

// ResolveRoute gates navigation. It is a pure function of the
// authenticated flag and the requested path and is re-evaluated on every
// navigation; it holds no state.
func ResolveRoute(authenticated bool, path string) RouteDecision {
	if isProtectedRoute(path) && !authenticated {
		return RedirectLogin
	}
	if isAuthRoute(path) && authenticated {
		return RedirectDashboard
	}
	return RenderRequested
}

func isProtectedRoute(path string) bool {
	return path == RouteDashboard || strings.HasPrefix(path, RouteDashboard+"/")
}

func isAuthRoute(path string) bool {
	switch path {
	case RouteLogin, RouteSignup, RouteForgotPassword:
		return true
	}
	return false
}
